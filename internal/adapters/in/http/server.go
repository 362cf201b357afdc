// Package http exposes the webshop over a JSON API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"webshop/internal/core/application/usecases/commands"
	"webshop/internal/core/application/usecases/queries"
	"webshop/internal/core/domain/model/order"
	"webshop/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP surface of the shop: placing orders, reading
// orders back and browsing the catalog.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler

	// Query handlers
	getAllOrdersHandler    queries.GetAllOrdersQueryHandler
	getOrderByIDHandler    queries.GetOrderByIDQueryHandler
	getAllProductsHandler  queries.GetAllProductsQueryHandler
	getProductsByIDHandler queries.GetProductsByIDQueryHandler

	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getAllProductsHandler queries.GetAllProductsQueryHandler,
	getProductsByIDHandler queries.GetProductsByIDQueryHandler,
	m *metrics.Metrics,
	log *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		getAllOrdersHandler:    getAllOrdersHandler,
		getOrderByIDHandler:    getOrderByIDHandler,
		getAllProductsHandler:  getAllProductsHandler,
		getProductsByIDHandler: getProductsByIDHandler,
		metrics:                m,
		log:                    log,
	}
}

// RegisterRoutes binds the API endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.GET("/orders/:id", s.GetOrderByID)
	e.GET("/products", s.GetProducts)
	e.GET("/products/:id", s.GetProductsByID)
	e.GET("/health", s.Health)
}

// LineItemRequest is one requested position of a new order.
// Quantity is a pointer: the engine distinguishes a missing quantity from
// an explicit zero.
type LineItemRequest struct {
	ProductID int  `json:"productId"`
	Quantity  *int `json:"quantity"`
}

// LineItemResponse is one stored position of an order.
type LineItemResponse struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// OrderJSON is the wire representation of a placed order.
type OrderJSON struct {
	ID           int                `json:"id"`
	Timestamp    time.Time          `json:"timestamp"`
	LineItems    []LineItemResponse `json:"lineItems"`
	OrderCost    *float64           `json:"orderCost"`
	DeliveryCost int                `json:"deliveryCost"`
	DeliveryTime int                `json:"deliveryTime"`
}

// ProductJSON is the wire representation of one catalog stock record.
type ProductJSON struct {
	ProductID int      `json:"productId"`
	Location  string   `json:"location"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price"`
	Quantity  int      `json:"quantity"`
}

// CreateOrder handles POST /orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var items []LineItemRequest
	if err := ctx.Bind(&items); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	basket := make([]commands.BasketItem, 0, len(items))
	for _, item := range items {
		basket = append(basket, commands.BasketItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(basket)
	if err != nil {
		s.metrics.OrderFailures.WithLabelValues(metrics.ReasonInvalidRequest).Inc()
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		status := statusFromError(err)
		s.metrics.OrderFailures.WithLabelValues(failureReason(err)).Inc()
		s.log.Warn("order placement rejected",
			slog.Int("status", status),
			slog.String("error", err.Error()))
		return ctx.JSON(status, ErrorResponse{
			Code:    status,
			Message: err.Error(),
		})
	}

	s.metrics.OrdersCreated.Inc()
	if cost := placed.OrderCost(); cost != nil {
		s.metrics.OrderCost.Observe(*cost)
	}
	s.log.Info("order placed",
		slog.Int("orderId", placed.ID()),
		slog.Int("lineItems", len(placed.LineItems())))

	return ctx.JSON(http.StatusOK, orderToJSON(queryResponseFromOrder(placed)))
}

// GetOrders handles GET /orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderJSON, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderToJSON(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /orders/:id - retrieves one order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	id, ok := intParam(ctx, "id")
	if !ok {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Order id must be a positive integer",
		})
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	o, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		status := statusFromError(err)
		return ctx.JSON(status, ErrorResponse{
			Code:    status,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, orderToJSON(o))
}

// GetProducts handles GET /products - retrieves the whole catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetAllProductsQuery()

	products, err := s.getAllProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve products",
		})
	}

	response := make([]ProductJSON, 0, len(products))
	for _, p := range products {
		response = append(response, productToJSON(p))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProductsByID handles GET /products/:id - retrieves one product's
// stock records across locations.
func (s *Server) GetProductsByID(ctx echo.Context) error {
	id, ok := intParam(ctx, "id")
	if !ok {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Product id must be a positive integer",
		})
	}

	query, err := queries.NewGetProductsByIDQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	products, err := s.getProductsByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		status := statusFromError(err)
		return ctx.JSON(status, ErrorResponse{
			Code:    status,
			Message: err.Error(),
		})
	}

	response := make([]ProductJSON, 0, len(products))
	for _, p := range products {
		response = append(response, productToJSON(p))
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func intParam(ctx echo.Context, name string) (int, bool) {
	var value int
	if err := echo.PathParamsBinder(ctx).Int(name, &value).BindError(); err != nil {
		return 0, false
	}
	return value, true
}

// queryResponseFromOrder shapes a freshly placed aggregate like the read
// model, so POST /orders returns the same document as GET /orders/:id.
func queryResponseFromOrder(o *order.Order) queries.OrderResponse {
	items := make([]queries.OrderLineItemResponse, 0, len(o.LineItems()))
	for _, li := range o.LineItems() {
		items = append(items, queries.OrderLineItemResponse{
			ProductID: li.ProductID(),
			Quantity:  li.Quantity(),
		})
	}

	return queries.OrderResponse{
		ID:           o.ID(),
		Timestamp:    o.Timestamp(),
		LineItems:    items,
		OrderCost:    o.OrderCost(),
		DeliveryCost: o.DeliveryCost(),
		DeliveryTime: o.DeliveryTime(),
	}
}

func orderToJSON(o queries.OrderResponse) OrderJSON {
	items := make([]LineItemResponse, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		items = append(items, LineItemResponse{
			ProductID: li.ProductID,
			Quantity:  li.Quantity,
		})
	}

	return OrderJSON{
		ID:           o.ID,
		Timestamp:    o.Timestamp,
		LineItems:    items,
		OrderCost:    o.OrderCost,
		DeliveryCost: o.DeliveryCost,
		DeliveryTime: o.DeliveryTime,
	}
}

func productToJSON(p queries.ProductResponse) ProductJSON {
	return ProductJSON{
		ProductID: p.ID,
		Location:  p.Location,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  p.Quantity,
	}
}
