package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves a page of every customer's orders for the
// management console. Authorization happens at the transport layer; the
// query itself carries no actor.
type GetAllOrdersQuery struct { //nolint:recvcheck //using for validation
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for a page of all orders.
func NewGetAllOrdersQuery(limit, offset int) (GetAllOrdersQuery, error) {
	q := GetAllOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setLimit(limit),
		q.setOffset(offset),
	); err != nil {
		return GetAllOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Limit returns the page size.
func (q GetAllOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of orders skipped before the page starts.
func (q GetAllOrdersQuery) Offset() int {
	return q.offset
}

func (q *GetAllOrdersQuery) setLimit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, MinLimit, MaxLimit)
	}

	q.limit = limit
	return nil
}

func (q *GetAllOrdersQuery) setOffset(offset int) error {
	if offset < 0 {
		return errs.NewValueIsInvalidError("offset")
	}

	q.offset = offset
	return nil
}

// OrderSummaryResponse is one order row in the console listing.
type OrderSummaryResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	Status      order.Status
	TotalAmount int64
	ItemCount   int
	CreatedAt   time.Time
}

// GetAllOrdersQueryResponse is a page of order summaries plus the total
// order count across all pages.
type GetAllOrdersQueryResponse struct {
	Orders     []OrderSummaryResponse
	TotalCount int64
}
