// Package http implements the inbound HTTP API on top of echo.
// It translates HTTP requests into commands and queries and maps domain
// error kinds onto status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"storefront/internal/adapters/in/http/auth"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const defaultPageLimit = 20

// Error is the JSON error body returned by every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItem is one line item in an order payload.
type OrderItem struct {
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
	ProductName string `json:"productName,omitempty"`
	Unavailable bool   `json:"unavailable,omitempty"`
}

// Order is the customer-facing order payload.
type Order struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	TotalAmount int64       `json:"totalAmount"`
	CreatedAt   time.Time   `json:"createdAt"`
	Items       []OrderItem `json:"items"`
	CanCancel   bool        `json:"canCancel"`
	CanDelete   bool        `json:"canDelete"`
}

// OrderPage is a paginated order listing.
type OrderPage struct {
	Items      []Order `json:"items"`
	TotalCount int64   `json:"totalCount"`
}

// OrderSummary is one row in the admin order listing.
type OrderSummary struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customerId"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"totalAmount"`
	ItemCount   int       `json:"itemCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OrderSummaryPage is a paginated admin order listing.
type OrderSummaryPage struct {
	Items      []OrderSummary `json:"items"`
	TotalCount int64          `json:"totalCount"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	Items []NewOrderItem `json:"items"`
}

// NewOrderItem is one requested line item.
type NewOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// StatusChange is the request body for the admin status update.
type StatusChange struct {
	Status string `json:"status"`
}

// NewProduct is the request body for adding a catalog product.
type NewProduct struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	InStock  bool   `json:"inStock"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category,omitempty"`
}

// OrderStats is the per-status order count payload.
type OrderStats struct {
	CountByStatus map[string]int64 `json:"countByStatus"`
	TotalCount    int64            `json:"totalCount"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	removeProductHandler     commands.RemoveProductCommandHandler

	// Query handlers
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getOrderStatsHandler     queries.GetOrderStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	removeProductHandler commands.RemoveProductCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		createProductHandler:     createProductHandler,
		removeProductHandler:     removeProductHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrderStatsHandler:     getOrderStatsHandler,
	}
}

// RegisterRoutes wires the API routes onto the echo instance. The token
// middleware must already resolve actors for the /api/v1 group.
func (s *Server) RegisterRoutes(api *echo.Group) {
	api.GET("/orders", s.GetMyOrders)
	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	admin := api.Group("/admin", auth.RequireAdmin())
	admin.GET("/orders", s.GetAllOrders)
	admin.GET("/orders/stats", s.GetOrderStats)
	admin.PUT("/orders/:id/status", s.ChangeOrderStatus)
	admin.DELETE("/orders/:id", s.DeleteOrder)
	admin.POST("/products", s.CreateProduct)
	admin.DELETE("/products/:id", s.RemoveProduct)
}

// GetMyOrders handles GET /api/v1/orders - the customer's own order page.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	a, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	limit, offset, err := pagination(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetCustomerOrdersQuery(a, limit, offset)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	items := make([]Order, 0, len(result.Orders))
	for _, o := range result.Orders {
		orderItems := make([]OrderItem, 0, len(o.Items))
		for _, item := range o.Items {
			orderItems = append(orderItems, OrderItem{
				ProductID:   item.ProductID.String(),
				Quantity:    item.Quantity,
				ProductName: item.ProductName,
				Unavailable: item.Unavailable,
			})
		}

		items = append(items, Order{
			ID:          o.ID.String(),
			Status:      o.Status.String(),
			TotalAmount: o.TotalAmount,
			CreatedAt:   o.CreatedAt,
			Items:       orderItems,
			CanCancel:   o.CanCancel,
			CanDelete:   o.CanDelete,
		})
	}

	return ctx.JSON(http.StatusOK, OrderPage{
		Items:      items,
		TotalCount: result.TotalCount,
	})
}

// PlaceOrder handles POST /api/v1/orders - places a new order for the
// requesting customer.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	a, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	var body NewOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	items := make([]order.LineItem, 0, len(body.Items))
	for _, reqItem := range body.Items {
		productID, idErr := kernel.UUIDFromString(reqItem.ProductID)
		if idErr != nil {
			return badRequest(ctx, "invalid product id: "+reqItem.ProductID)
		}

		item, itemErr := order.NewLineItem(productID, reqItem.Quantity)
		if itemErr != nil {
			return badRequest(ctx, itemErr.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, a.ID(), items)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - the customer cancels
// their own pending order. Admins may use it too; for them it is one case of
// the unrestricted status change.
func (s *Server) CancelOrder(ctx echo.Context) error {
	a, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(a, orderID, order.Cancelled)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"id":     result.OrderID.String(),
		"status": result.Status.String(),
	})
}

// ChangeOrderStatus handles PUT /api/v1/admin/orders/:id/status - the
// console sets any of the five statuses.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	a, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body StatusChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	requested, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "invalid status: "+body.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(a, orderID, requested)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"id":     result.OrderID.String(),
		"status": result.Status.String(),
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:id and
// DELETE /api/v1/admin/orders/:id - permanent removal under the role's
// deletion rule.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	a, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(a, orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAllOrders handles GET /api/v1/admin/orders - paginated listing over
// every customer's orders.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	limit, offset, err := pagination(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetAllOrdersQuery(limit, offset)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	items := make([]OrderSummary, 0, len(result.Orders))
	for _, o := range result.Orders {
		items = append(items, OrderSummary{
			ID:          o.ID.String(),
			CustomerID:  o.CustomerID.String(),
			Status:      o.Status.String(),
			TotalAmount: o.TotalAmount,
			ItemCount:   o.ItemCount,
			CreatedAt:   o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, OrderSummaryPage{
		Items:      items,
		TotalCount: result.TotalCount,
	})
}

// GetOrderStats handles GET /api/v1/admin/orders/stats - per-status counts.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	result, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	countByStatus := make(map[string]int64, len(result.CountByStatus))
	for status, count := range result.CountByStatus {
		countByStatus[status.String()] = count
	}

	return ctx.JSON(http.StatusOK, OrderStats{
		CountByStatus: countByStatus,
		TotalCount:    result.TotalCount,
	})
}

// CreateProduct handles POST /api/v1/admin/products - adds a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID,
		body.Name,
		body.Price,
		body.InStock,
		body.Image,
		body.Category,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": productID.String()})
}

// RemoveProduct handles DELETE /api/v1/admin/products/:id - removes a
// product from the catalog. Existing orders keep their line items.
func (s *Server) RemoveProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewRemoveProductCommand(productID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.removeProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// pagination reads the limit/offset query parameters with defaults.
func pagination(ctx echo.Context) (int, int, error) {
	limit := defaultPageLimit
	offset := 0

	if raw := ctx.QueryParam("limit"); raw != "" {
		if err := echo.QueryParamsBinder(ctx).Int("limit", &limit).BindError(); err != nil {
			return 0, 0, errors.New("limit must be an integer")
		}
	}

	if raw := ctx.QueryParam("offset"); raw != "" {
		if err := echo.QueryParamsBinder(ctx).Int("offset", &offset).BindError(); err != nil {
			return 0, 0, errors.New("offset must be an integer")
		}
	}

	return limit, offset, nil
}

// domainError maps domain error kinds onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrOperationForbidden):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
