// Package http exposes the REST API. It coordinates between HTTP handlers
// and application use cases; all business rules live in the command and
// query handlers.
package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"pasteleria/internal/core/application/usecases/commands"
	"pasteleria/internal/core/application/usecases/queries"
	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/order"
	"pasteleria/internal/core/domain/model/user"
	"pasteleria/internal/pkg/token"
)

// Query contracts the server dispatches to. The gorm-backed handlers in the
// queries package satisfy them; tests substitute in-memory fakes.
type (
	AuthenticateUserHandler interface {
		Handle(ctx context.Context, query queries.AuthenticateUserQuery) (queries.UserResponse, error)
	}
	GetUserHandler interface {
		Handle(ctx context.Context, query queries.GetUserQuery) (queries.UserResponse, error)
	}
	GetUsersHandler interface {
		Handle(ctx context.Context, query queries.GetUsersQuery) ([]queries.UserResponse, error)
	}
	GetCustomerOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerOrdersQuery) ([]queries.OrderResponse, error)
	}
	GetAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderResponse, error)
	}
	GetDeliveryOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetDeliveryOrdersQuery) ([]queries.OrderResponse, error)
	}
	GetAssignedOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAssignedOrdersQuery) ([]queries.OrderResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}
	GetProductsHandler interface {
		Handle(ctx context.Context, query queries.GetProductsQuery) ([]queries.ProductResponse, error)
	}
	GetProductHandler interface {
		Handle(ctx context.Context, query queries.GetProductQuery) (queries.ProductResponse, error)
	}
	GetDeliveryPersonnelHandler interface {
		Handle(ctx context.Context, query queries.GetDeliveryPersonnelQuery) ([]queries.UserResponse, error)
	}
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	RegisterUser      commands.RegisterUserCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	AssignDelivery    commands.AssignDeliveryCommandHandler
	CreateProduct     commands.CreateProductCommandHandler
	UpdateProduct     commands.UpdateProductCommandHandler
	ToggleProduct     commands.ToggleProductAvailabilityCommandHandler
	DeleteProduct     commands.DeleteProductCommandHandler

	AuthenticateUser     AuthenticateUserHandler
	GetUser              GetUserHandler
	GetUsers             GetUsersHandler
	GetCustomerOrders    GetCustomerOrdersHandler
	GetAllOrders         GetAllOrdersHandler
	GetDeliveryOrders    GetDeliveryOrdersHandler
	GetAssignedOrders    GetAssignedOrdersHandler
	GetOrder             GetOrderHandler
	GetProducts          GetProductsHandler
	GetProduct           GetProductHandler
	GetDeliveryPersonnel GetDeliveryPersonnelHandler
}

// Server handles the REST API for the bakery ordering system.
type Server struct {
	handlers Handlers
	issuer   token.Issuer
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers, issuer token.Issuer) *Server {
	return &Server{
		handlers: handlers,
		issuer:   issuer,
	}
}

// RegisterRoutes mounts all API routes on the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	auth := authenticate(s.issuer)

	api.GET("/auth/ping", s.Ping)
	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/auth/me", s.Me, auth)

	api.GET("/products/public/all", s.GetAvailableProducts)
	api.GET("/products/public/search", s.SearchProducts)
	api.GET("/products/public/category/:categoria", s.GetProductsByCategory)
	api.GET("/products/public/:id", s.GetProduct)

	adminProducts := api.Group("/products/admin", auth, requireRole(user.Admin))
	adminProducts.GET("/all", s.GetAllProducts)
	adminProducts.POST("", s.CreateProduct)
	adminProducts.PUT("/:id", s.UpdateProduct)
	adminProducts.DELETE("/:id", s.DeleteProduct)
	adminProducts.PATCH("/:id/toggle-availability", s.ToggleProductAvailability)

	api.POST("/orders", s.CreateOrder, auth, requireRole(user.Cliente))
	api.GET("/orders/my-orders", s.GetMyOrders, auth, requireRole(user.Cliente))
	api.GET("/orders/admin/all", s.GetAllOrders, auth, requireRole(user.Admin))
	api.PATCH("/orders/admin/:id/status", s.ChangeOrderStatus, auth, requireRole(user.Admin))
	api.GET("/orders/:id", s.GetOrder, auth)

	adminUsers := api.Group("/users/admin", auth, requireRole(user.Admin))
	adminUsers.GET("/all", s.GetAllUsers)
	adminUsers.GET("/rol/:rol", s.GetUsersByRole)
	adminUsers.GET("/:id", s.GetUserByID)

	api.GET("/delivery/my-orders", s.GetDeliveryOrders, auth, requireRole(user.Delivery))
	api.PATCH("/delivery/orders/:id/status", s.ChangeOrderStatus, auth, requireRole(user.Delivery))

	adminDelivery := api.Group("/delivery/admin", auth, requireRole(user.Admin))
	adminDelivery.GET("/personnel", s.GetDeliveryPersonnel)
	adminDelivery.GET("/all-assignments", s.GetAllAssignments)
	adminDelivery.POST("/create-user", s.CreateDeliveryUser)
	adminDelivery.POST("/assign", s.AssignDelivery)
}

// Ping handles GET /api/auth/ping. Liveness check, no auth required.
func (s *Server) Ping(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Register handles POST /api/auth/register. Public self-registration,
// always with the CLIENTE role.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(
		req.Nombre, req.Email, req.Telefono, req.Password, user.Cliente)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	signed, err := s.issuer.Issue(created.ID().String(), created.Rol().String())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, authResponse{
		Token: signed,
		User:  userAggregateToResponse(created),
	})
}

// Login handles POST /api/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewAuthenticateUserQuery(req.Email, req.Password)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	account, err := s.handlers.AuthenticateUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	signed, err := s.issuer.Issue(account.ID.String(), account.Rol)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, authResponse{
		Token: signed,
		User:  toUserResponse(account),
	})
}

// Me handles GET /api/auth/me. Returns the caller's own profile.
func (s *Server) Me(ctx echo.Context) error {
	query, err := queries.NewGetUserQuery(callerID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	account, err := s.handlers.GetUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(account))
}

// GetAvailableProducts handles GET /api/products/public/all.
func (s *Server) GetAvailableProducts(ctx echo.Context) error {
	return s.listProducts(ctx, queries.NewAvailableProductsQuery())
}

// GetAllProducts handles GET /api/products/admin/all. Includes unavailable
// products.
func (s *Server) GetAllProducts(ctx echo.Context) error {
	return s.listProducts(ctx, queries.NewAllProductsQuery())
}

// GetProductsByCategory handles GET /api/products/public/category/:categoria.
func (s *Server) GetProductsByCategory(ctx echo.Context) error {
	query, err := queries.NewProductsByCategoryQuery(ctx.Param("categoria"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return s.listProducts(ctx, query)
}

// SearchProducts handles GET /api/products/public/search?q=term.
func (s *Server) SearchProducts(ctx echo.Context) error {
	query, err := queries.NewSearchProductsQuery(ctx.QueryParam("q"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return s.listProducts(ctx, query)
}

func (s *Server) listProducts(ctx echo.Context, query queries.GetProductsQuery) error {
	products, err := s.handlers.GetProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProductResponses(products))
}

// GetProduct handles GET /api/products/public/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(found))
}

// CreateProduct handles POST /api/products/admin.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req productRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(
		req.Nombre, req.Descripcion, req.Precio, req.ImagenURL, req.Categoria)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productAggregateToResponse(created))
}

// UpdateProduct handles PUT /api/products/admin/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	var req productRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	disponible := true
	if req.Disponible != nil {
		disponible = *req.Disponible
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, req.Nombre, req.Descripcion, req.Precio,
		req.ImagenURL, req.Categoria, disponible)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productAggregateToResponse(updated))
}

// ToggleProductAvailability handles PATCH /api/products/admin/:id/toggle-availability.
func (s *Server) ToggleProductAvailability(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewToggleProductAvailabilityCommand(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	toggled, err := s.handlers.ToggleProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productAggregateToResponse(toggled))
}

// DeleteProduct handles DELETE /api/products/admin/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/orders. Customers place orders for
// themselves; names and prices are snapshotted from the catalog.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	items := make([]commands.ItemData, 0, len(req.Items))
	for _, line := range req.Items {
		productID, err := kernel.UUIDFromString(line.ProductID)
		if err != nil {
			return badRequest(ctx, "invalid product id: "+line.ProductID)
		}
		items = append(items, commands.ItemData{
			ProductID: productID,
			Cantidad:  line.Cantidad,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		callerID(ctx), req.DireccionEntrega, req.Notas, items)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderAggregateToResponse(created))
}

// GetMyOrders handles GET /api/orders/my-orders.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(callerID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetAllOrders handles GET /api/orders/admin/all?estado=POR_ENTREGAR.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQueryUnfiltered()
	if estadoParam := ctx.QueryParam("estado"); estadoParam != "" {
		estado, err := order.StatusFromString(estadoParam)
		if err != nil {
			return badRequest(ctx, "invalid estado: "+estadoParam)
		}
		query, err = queries.NewGetAllOrdersQuery(estado)
		if err != nil {
			return writeError(ctx, err)
		}
	}

	orders, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetDeliveryOrders handles GET /api/delivery/my-orders.
func (s *Server) GetDeliveryOrders(ctx echo.Context) error {
	query, err := queries.NewGetDeliveryOrdersQuery(callerID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.handlers.GetDeliveryOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrder handles GET /api/orders/:id. Visibility depends on the caller's
// role.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, callerID(ctx), callerRole(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(found))
}

// ChangeOrderStatus handles PATCH /api/orders/admin/:id/status and
// PATCH /api/delivery/orders/:id/status. Role-specific rules are enforced
// by the command handler.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	estado, err := order.StatusFromString(req.Estado)
	if err != nil {
		return badRequest(ctx, "invalid estado: "+req.Estado)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, estado, callerID(ctx), callerRole(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderAggregateToResponse(updated))
}

// GetAllUsers handles GET /api/users/admin/all.
func (s *Server) GetAllUsers(ctx echo.Context) error {
	return s.listUsers(ctx, queries.NewAllUsersQuery())
}

// GetUsersByRole handles GET /api/users/admin/rol/:rol.
func (s *Server) GetUsersByRole(ctx echo.Context) error {
	rol, err := user.RoleFromString(ctx.Param("rol"))
	if err != nil {
		return badRequest(ctx, "invalid rol: "+ctx.Param("rol"))
	}

	query, err := queries.NewUsersByRoleQuery(rol)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.listUsers(ctx, query)
}

func (s *Server) listUsers(ctx echo.Context, query queries.GetUsersQuery) error {
	accounts, err := s.handlers.GetUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	out := make([]userResponse, len(accounts))
	for i, u := range accounts {
		out[i] = toUserResponse(u)
	}
	return ctx.JSON(http.StatusOK, out)
}

// GetUserByID handles GET /api/users/admin/:id.
func (s *Server) GetUserByID(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	account, err := s.handlers.GetUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(account))
}

// GetAllAssignments handles GET /api/delivery/admin/all-assignments.
func (s *Server) GetAllAssignments(ctx echo.Context) error {
	orders, err := s.handlers.GetAssignedOrders.Handle(
		ctx.Request().Context(), queries.NewGetAssignedOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetDeliveryPersonnel handles GET /api/delivery/admin/personnel.
func (s *Server) GetDeliveryPersonnel(ctx echo.Context) error {
	personnel, err := s.handlers.GetDeliveryPersonnel.Handle(
		ctx.Request().Context(), queries.NewGetDeliveryPersonnelQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	out := make([]userResponse, len(personnel))
	for i, u := range personnel {
		out[i] = toUserResponse(u)
	}
	return ctx.JSON(http.StatusOK, out)
}

// CreateDeliveryUser handles POST /api/delivery/admin/create-user.
// Admin-only registration of DELIVERY accounts.
func (s *Server) CreateDeliveryUser(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(
		req.Nombre, req.Email, req.Telefono, req.Password, user.Delivery)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userAggregateToResponse(created))
}

// AssignDelivery handles POST /api/delivery/admin/assign?orderId=&deliveryId=.
// Assigning never changes the order's status.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.QueryParam("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}
	deliveryID, err := kernel.UUIDFromString(ctx.QueryParam("deliveryId"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	cmd, err := commands.NewAssignDeliveryCommand(orderID, deliveryID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.AssignDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderAggregateToResponse(updated))
}
