package http

import (
	"time"

	"github.com/shopspring/decimal"

	"pasteleria/internal/core/application/usecases/queries"
	"pasteleria/internal/core/domain/model/order"
	"pasteleria/internal/core/domain/model/product"
	"pasteleria/internal/core/domain/model/user"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type registerRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono,omitempty"`
	Rol           string    `json:"rol"`
	Activo        bool      `json:"activo"`
	FechaRegistro time.Time `json:"fechaRegistro"`
}

type createOrderRequest struct {
	DireccionEntrega string             `json:"direccionEntrega"`
	Notas            string             `json:"notas"`
	Items            []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	ProductID string `json:"productId"`
	Cantidad  int    `json:"cantidad"`
}

type updateStatusRequest struct {
	Estado string `json:"estado"`
}

type productRequest struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	ImagenURL   string          `json:"imagenUrl"`
	Categoria   string          `json:"categoria"`
	Disponible  *bool           `json:"disponible,omitempty"`
}

type productResponse struct {
	ID                 string          `json:"id"`
	Nombre             string          `json:"nombre"`
	Descripcion        string          `json:"descripcion,omitempty"`
	Precio             decimal.Decimal `json:"precio"`
	ImagenURL          string          `json:"imagenUrl,omitempty"`
	Categoria          string          `json:"categoria"`
	Disponible         bool            `json:"disponible"`
	FechaCreacion      time.Time       `json:"fechaCreacion"`
	FechaActualizacion time.Time       `json:"fechaActualizacion"`
}

type orderResponse struct {
	ID               string              `json:"id"`
	CustomerID       string              `json:"customerId"`
	Fecha            time.Time           `json:"fecha"`
	Estado           string              `json:"estado"`
	DireccionEntrega string              `json:"direccionEntrega"`
	Notas            string              `json:"notas,omitempty"`
	Total            decimal.Decimal     `json:"total"`
	Items            []orderItemResponse `json:"items"`
	Delivery         *deliveryInfo       `json:"delivery,omitempty"`
}

type orderItemResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"productId"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type deliveryInfo struct {
	DeliveryID       string     `json:"deliveryId"`
	NombreDelivery   string     `json:"nombreDelivery"`
	TelefonoDelivery string     `json:"telefonoDelivery,omitempty"`
	FechaAsignacion  time.Time  `json:"fechaAsignacion"`
	FechaEntrega     *time.Time `json:"fechaEntrega,omitempty"`
}

func toUserResponse(u queries.UserResponse) userResponse {
	return userResponse{
		ID:            u.ID.String(),
		Nombre:        u.Nombre,
		Email:         u.Email,
		Telefono:      u.Telefono,
		Rol:           u.Rol,
		Activo:        u.Activo,
		FechaRegistro: u.FechaRegistro,
	}
}

func userAggregateToResponse(u *user.User) userResponse {
	return userResponse{
		ID:            u.ID().String(),
		Nombre:        u.Nombre(),
		Email:         u.Email(),
		Telefono:      u.Telefono(),
		Rol:           u.Rol().String(),
		Activo:        u.Activo(),
		FechaRegistro: u.FechaRegistro(),
	}
}

func toProductResponse(p queries.ProductResponse) productResponse {
	return productResponse{
		ID:                 p.ID.String(),
		Nombre:             p.Nombre,
		Descripcion:        p.Descripcion,
		Precio:             p.Precio,
		ImagenURL:          p.ImagenURL,
		Categoria:          p.Categoria,
		Disponible:         p.Disponible,
		FechaCreacion:      p.FechaCreacion,
		FechaActualizacion: p.FechaActualizacion,
	}
}

func productAggregateToResponse(p *product.Product) productResponse {
	return productResponse{
		ID:                 p.ID().String(),
		Nombre:             p.Nombre(),
		Descripcion:        p.Descripcion(),
		Precio:             p.Precio(),
		ImagenURL:          p.ImagenURL(),
		Categoria:          p.Categoria(),
		Disponible:         p.Disponible(),
		FechaCreacion:      p.FechaCreacion(),
		FechaActualizacion: p.FechaActualizacion(),
	}
}

func toProductResponses(products []queries.ProductResponse) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

func toOrderResponse(o queries.OrderResponse) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemResponse{
			ID:             item.ID.String(),
			ProductID:      item.ProductID.String(),
			NombreProducto: item.NombreProducto,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.Subtotal,
		}
	}

	resp := orderResponse{
		ID:               o.ID.String(),
		CustomerID:       o.CustomerID.String(),
		Fecha:            o.Fecha,
		Estado:           o.Estado,
		DireccionEntrega: o.DireccionEntrega,
		Notas:            o.Notas,
		Total:            o.Total,
		Items:            items,
	}
	if o.Delivery != nil {
		resp.Delivery = &deliveryInfo{
			DeliveryID:       o.Delivery.DeliveryID.String(),
			NombreDelivery:   o.Delivery.NombreDelivery,
			TelefonoDelivery: o.Delivery.TelefonoDelivery,
			FechaAsignacion:  o.Delivery.FechaAsignacion,
			FechaEntrega:     o.Delivery.FechaEntrega,
		}
	}
	return resp
}

func toOrderResponses(orders []queries.OrderResponse) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}

func orderAggregateToResponse(o *order.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = orderItemResponse{
			ID:             item.ID().String(),
			ProductID:      item.ProductID().String(),
			NombreProducto: item.NombreProducto(),
			Cantidad:       item.Cantidad(),
			PrecioUnitario: item.PrecioUnitario(),
			Subtotal:       item.Subtotal(),
		}
	}

	resp := orderResponse{
		ID:               o.ID().String(),
		CustomerID:       o.CustomerID().String(),
		Fecha:            o.Fecha(),
		Estado:           o.Status().String(),
		DireccionEntrega: o.DireccionEntrega(),
		Notas:            o.Notas(),
		Total:            o.Total(),
		Items:            items,
	}
	if assignment := o.Assignment(); assignment != nil {
		resp.Delivery = &deliveryInfo{
			DeliveryID:       assignment.DeliveryID().String(),
			NombreDelivery:   assignment.NombreDelivery(),
			TelefonoDelivery: assignment.TelefonoDelivery(),
			FechaAsignacion:  assignment.FechaAsignacion(),
			FechaEntrega:     assignment.FechaEntrega(),
		}
	}
	return resp
}
