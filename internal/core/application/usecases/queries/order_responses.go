// Package queries contains read-only operations for retrieving system state.
// Query handlers bypass the domain model and read directly from the database,
// returning flat response structures shaped for presentation.
package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pasteleria/internal/core/domain/model/kernel"
)

// OrderItemResponse is one order line as stored, snapshot prices included.
type OrderItemResponse struct {
	ID             kernel.UUID
	ProductID      kernel.UUID
	NombreProducto string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

// DeliveryInfoResponse is the delivery assignment snapshot of an order.
type DeliveryInfoResponse struct {
	DeliveryID       kernel.UUID
	NombreDelivery   string
	TelefonoDelivery string
	FechaAsignacion  time.Time
	FechaEntrega     *time.Time
}

// OrderResponse represents a complete order for presentation.
// Delivery is nil until delivery personnel has been assigned.
type OrderResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	Fecha            time.Time
	Estado           string
	DireccionEntrega string
	Notas            string
	Total            decimal.Decimal
	Items            []OrderItemResponse
	Delivery         *DeliveryInfoResponse
}

// fetchOrders loads orders matching the WHERE clause together with their
// items and assignment snapshot, newest first. The clause must reference
// order columns through the "o" alias.
func fetchOrders(ctx context.Context, db *gorm.DB, where string, args ...any) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	query := `
		SELECT
			o.id,
			o.customer_id,
			o.fecha,
			o.estado,
			o.direccion_entrega,
			o.notas,
			o.total,
			a.delivery_id,
			a.nombre_delivery,
			a.telefono_delivery,
			a.fecha_asignacion,
			a.fecha_entrega
		FROM orders o
		LEFT JOIN delivery_assignments a ON a.order_id = o.id
	`
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY o.fecha DESC"

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderIDs := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			id, customerID   uuid.UUID
			fecha            time.Time
			estado           string
			direccionEntrega string
			notas            sql.NullString
			total            decimal.Decimal
			deliveryID       uuid.NullUUID
			nombreDelivery   sql.NullString
			telefonoDelivery sql.NullString
			fechaAsignacion  sql.NullTime
			fechaEntrega     sql.NullTime
		)

		err = rows.Scan(
			&id,
			&customerID,
			&fecha,
			&estado,
			&direccionEntrega,
			&notas,
			&total,
			&deliveryID,
			&nombreDelivery,
			&telefonoDelivery,
			&fechaAsignacion,
			&fechaEntrega,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := OrderResponse{
			ID:               orderID,
			CustomerID:       custID,
			Fecha:            fecha,
			Estado:           estado,
			DireccionEntrega: direccionEntrega,
			Notas:            notas.String,
			Total:            total,
			Items:            make([]OrderItemResponse, 0),
		}

		if deliveryID.Valid {
			dID, idErr := kernel.UUIDFromBytes(deliveryID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			delivery := &DeliveryInfoResponse{
				DeliveryID:       dID,
				NombreDelivery:   nombreDelivery.String,
				TelefonoDelivery: telefonoDelivery.String,
				FechaAsignacion:  fechaAsignacion.Time,
			}
			if fechaEntrega.Valid {
				entrega := fechaEntrega.Time
				delivery.FechaEntrega = &entrega
			}
			resp.Delivery = delivery
		}

		orders = append(orders, resp)
		orderIDs = append(orderIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	if err = attachItems(ctx, db, orders, orderIDs); err != nil {
		return nil, err
	}

	return orders, nil
}

func attachItems(ctx context.Context, db *gorm.DB, orders []OrderResponse, orderIDs []uuid.UUID) error {
	byOrder := make(map[uuid.UUID]int, len(orders))
	for i, id := range orderIDs {
		byOrder[id] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			nombre_producto,
			cantidad,
			precio_unitario,
			subtotal
		FROM order_items
		WHERE order_id IN ?
		ORDER BY nombre_producto
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, orderID, productID uuid.UUID
			nombreProducto         string
			cantidad               int
			precioUnitario         decimal.Decimal
			subtotal               decimal.Decimal
		)

		err = rows.Scan(
			&id,
			&orderID,
			&productID,
			&nombreProducto,
			&cantidad,
			&precioUnitario,
			&subtotal,
		)
		if err != nil {
			return err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		prodID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return idErr
		}

		idx, ok := byOrder[orderID]
		if !ok {
			continue
		}
		orders[idx].Items = append(orders[idx].Items, OrderItemResponse{
			ID:             itemID,
			ProductID:      prodID,
			NombreProducto: nombreProducto,
			Cantidad:       cantidad,
			PrecioUnitario: precioUnitario,
			Subtotal:       subtotal,
		})
	}

	return rows.Err()
}
