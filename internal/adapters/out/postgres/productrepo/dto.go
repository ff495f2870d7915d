// Package productrepo implements catalog product persistence with GORM.
package productrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre             string    `gorm:"index"`
	Descripcion        string
	Precio             decimal.Decimal `gorm:"type:numeric(12,2)"`
	ImagenURL          string
	Categoria          string `gorm:"index"`
	Disponible         bool
	FechaCreacion      time.Time
	FechaActualizacion time.Time
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:                 aggregate.ID().Bytes(),
		Nombre:             aggregate.Nombre(),
		Descripcion:        aggregate.Descripcion(),
		Precio:             aggregate.Precio(),
		ImagenURL:          aggregate.ImagenURL(),
		Categoria:          aggregate.Categoria(),
		Disponible:         aggregate.Disponible(),
		FechaCreacion:      aggregate.FechaCreacion(),
		FechaActualizacion: aggregate.FechaActualizacion(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Nombre,
		dto.Descripcion,
		dto.Precio,
		dto.ImagenURL,
		dto.Categoria,
		dto.Disponible,
		dto.FechaCreacion,
		dto.FechaActualizacion,
	)
}
