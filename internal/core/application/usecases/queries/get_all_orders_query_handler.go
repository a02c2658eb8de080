package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads a page of every customer's orders for the
// management console listing.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for console order listings.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest first with a line
// item count per order; TotalCount covers all orders in the store.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) (GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	var totalCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
	`).Scan(&totalCount).Error
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.total_amount,
			o.status,
			o.created_at,
			COUNT(oi.order_id) AS item_count
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		GROUP BY o.id, o.customer_id, o.total_amount, o.status, o.created_at
		ORDER BY o.created_at DESC, o.id
		LIMIT ? OFFSET ?
	`, query.Limit(), query.Offset()).Rows()
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var id, customerID uuid.UUID
		var totalAmount int64
		var status, itemCount int
		var createdAt time.Time

		if err = rows.Scan(&id, &customerID, &totalAmount, &status, &createdAt, &itemCount); err != nil {
			return GetAllOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetAllOrdersQueryResponse{}, idErr
		}

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return GetAllOrdersQueryResponse{}, idErr
		}

		orders = append(orders, OrderSummaryResponse{
			ID:          orderID,
			CustomerID:  ownerID,
			Status:      order.Status(status),
			TotalAmount: totalAmount,
			ItemCount:   itemCount,
			CreatedAt:   createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	return GetAllOrdersQueryResponse{
		Orders:     orders,
		TotalCount: totalCount,
	}, nil
}
