package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pasteleria/internal/core/domain/model/kernel"
)

// ProductResponse represents a catalog product for presentation.
type ProductResponse struct {
	ID                 kernel.UUID
	Nombre             string
	Descripcion        string
	Precio             decimal.Decimal
	ImagenURL          string
	Categoria          string
	Disponible         bool
	FechaCreacion      time.Time
	FechaActualizacion time.Time
}

// fetchProducts loads products matching the WHERE clause, ordered by name.
func fetchProducts(ctx context.Context, db *gorm.DB, where string, args ...any) ([]ProductResponse, error) {
	products := make([]ProductResponse, 0)

	query := `
		SELECT
			id,
			nombre,
			descripcion,
			precio,
			imagen_url,
			categoria,
			disponible,
			fecha_creacion,
			fecha_actualizacion
		FROM products
	`
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY nombre"

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                 uuid.UUID
			resp               ProductResponse
			fechaCreacion      time.Time
			fechaActualizacion time.Time
		)

		err = rows.Scan(
			&id,
			&resp.Nombre,
			&resp.Descripcion,
			&resp.Precio,
			&resp.ImagenURL,
			&resp.Categoria,
			&resp.Disponible,
			&fechaCreacion,
			&fechaActualizacion,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = productID
		resp.FechaCreacion = fechaCreacion
		resp.FechaActualizacion = fechaActualizacion
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
