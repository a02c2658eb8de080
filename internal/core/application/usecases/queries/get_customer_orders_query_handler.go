package queries

import (
	"context"
	"database/sql"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's order page from the
// database. Each order's line items are resolved against the catalog so the
// response can mark references to removed products, and the lifecycle
// service computes the cancel/delete eligibility flags the storefront uses
// to decide which actions to render.
type GetCustomerOrdersQueryHandler struct {
	db        *gorm.DB
	lifecycle services.OrderLifecycle
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order pages.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{
		db:        db,
		lifecycle: services.NewOrderLifecycle(),
	}
}

// Handle executes the query. Orders are returned newest first; TotalCount
// covers the whole history, not just this page.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) (GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerOrdersQueryResponse{}, err
	}

	customerID := query.Actor().ID()

	var totalCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE customer_id = ?
	`, customerID.Bytes()).Scan(&totalCount).Error
	if err != nil {
		return GetCustomerOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			total_amount,
			status,
			created_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, customerID.Bytes(), query.Limit(), query.Offset()).Rows()
	if err != nil {
		return GetCustomerOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]CustomerOrderResponse, 0)

	for rows.Next() {
		var id uuid.UUID
		var totalAmount int64
		var status int
		var createdAt time.Time

		if err = rows.Scan(&id, &totalAmount, &status, &createdAt); err != nil {
			return GetCustomerOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetCustomerOrdersQueryResponse{}, idErr
		}

		orders = append(orders, CustomerOrderResponse{
			ID:          orderID,
			Status:      order.Status(status),
			TotalAmount: totalAmount,
			CreatedAt:   createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return GetCustomerOrdersQueryResponse{}, err
	}

	for i := range orders {
		if err = h.resolveOrder(ctx, query, &orders[i]); err != nil {
			return GetCustomerOrdersQueryResponse{}, err
		}
	}

	return GetCustomerOrdersQueryResponse{
		Orders:     orders,
		TotalCount: totalCount,
	}, nil
}

// resolveOrder loads the order's line items with their catalog state and
// fills in the eligibility flags.
func (h GetCustomerOrdersQueryHandler) resolveOrder(
	ctx context.Context,
	query GetCustomerOrdersQuery,
	resp *CustomerOrderResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.product_id,
			oi.quantity,
			p.name
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ?
		ORDER BY oi.product_id
	`, resp.ID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	items := make([]CustomerOrderItemResponse, 0)
	lineItems := make([]order.LineItem, 0)
	hasUnresolvableItem := false

	for rows.Next() {
		var productID uuid.UUID
		var quantity int
		var name sql.NullString

		if err = rows.Scan(&productID, &quantity, &name); err != nil {
			return err
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return idErr
		}

		lineItem, itemErr := order.NewLineItem(itemProductID, quantity)
		if itemErr != nil {
			return itemErr
		}
		lineItems = append(lineItems, lineItem)

		unavailable := !name.Valid
		if unavailable {
			hasUnresolvableItem = true
		}

		items = append(items, CustomerOrderItemResponse{
			ProductID:   itemProductID,
			Quantity:    quantity,
			ProductName: name.String,
			Unavailable: unavailable,
		})
	}

	if err = rows.Err(); err != nil {
		return err
	}

	aggregate, err := order.RestoreOrder(
		resp.ID,
		query.Actor().ID(),
		lineItems,
		resp.TotalAmount,
		resp.Status,
		resp.CreatedAt,
	)
	if err != nil {
		return err
	}

	resp.Items = items
	resp.CanCancel = h.lifecycle.CanCancel(query.Actor(), aggregate)
	resp.CanDelete = h.lifecycle.CanDelete(query.Actor(), aggregate, hasUnresolvableItem)
	return nil
}
