// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column backs optimistic concurrency control on updates.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID `gorm:"type:uuid;index"`
	Fecha            time.Time
	Estado           string `gorm:"type:varchar(20);index"`
	DireccionEntrega string
	Notas            string
	Total            decimal.Decimal `gorm:"type:numeric(12,2)"`
	Version          int
	Items            []ItemDTO      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Assignment       *AssignmentDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. Lines are immutable after creation;
// name and price are snapshots of the catalog at ordering time.
type ItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	ProductID      uuid.UUID `gorm:"type:uuid"`
	NombreProducto string
	Cantidad       int
	PrecioUnitario decimal.Decimal `gorm:"type:numeric(12,2)"`
	Subtotal       decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// AssignmentDTO represents the delivery assignment snapshot of an order.
// One row per order at most.
type AssignmentDTO struct {
	OrderID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID       uuid.UUID `gorm:"type:uuid;index"`
	NombreDelivery   string
	TelefonoDelivery string
	FechaAsignacion  time.Time
	FechaEntrega     *time.Time
}

// TableName specifies the database table name for delivery assignments.
func (AssignmentDTO) TableName() string {
	return "delivery_assignments"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:             item.ID().Bytes(),
			OrderID:        aggregate.ID().Bytes(),
			ProductID:      item.ProductID().Bytes(),
			NombreProducto: item.NombreProducto(),
			Cantidad:       item.Cantidad(),
			PrecioUnitario: item.PrecioUnitario(),
			Subtotal:       item.Subtotal(),
		})
	}

	dto := OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		Fecha:            aggregate.Fecha(),
		Estado:           aggregate.Status().String(),
		DireccionEntrega: aggregate.DireccionEntrega(),
		Notas:            aggregate.Notas(),
		Total:            aggregate.Total(),
		Version:          aggregate.Version(),
		Items:            items,
	}

	if assignment := aggregate.Assignment(); assignment != nil {
		dto.Assignment = &AssignmentDTO{
			OrderID:          aggregate.ID().Bytes(),
			DeliveryID:       assignment.DeliveryID().Bytes(),
			NombreDelivery:   assignment.NombreDelivery(),
			TelefonoDelivery: assignment.TelefonoDelivery(),
			FechaAsignacion:  assignment.FechaAsignacion(),
			FechaEntrega:     assignment.FechaEntrega(),
		}
	}

	return dto
}

// toDomain reconstructs the complete aggregate from a database row using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	estado, err := order.StatusFromString(dto.Estado)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var assignment *order.Assignment
	if dto.Assignment != nil {
		deliveryID, assignErr := kernel.UUIDFromBytes(dto.Assignment.DeliveryID[:])
		if assignErr != nil {
			return nil, assignErr
		}
		restored, assignErr := order.RestoreAssignment(
			deliveryID,
			dto.Assignment.NombreDelivery,
			dto.Assignment.TelefonoDelivery,
			dto.Assignment.FechaAsignacion,
			dto.Assignment.FechaEntrega,
		)
		if assignErr != nil {
			return nil, assignErr
		}
		assignment = &restored
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.Fecha,
		estado,
		dto.DireccionEntrega,
		dto.Notas,
		items,
		dto.Total,
		assignment,
		dto.Version,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(
		id,
		productID,
		dto.NombreProducto,
		dto.Cantidad,
		dto.PrecioUnitario,
		dto.Subtotal,
	)
}
