// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture. Queries bypass domain
// repositories and read the database directly, returning response types
// shaped for the caller instead of full aggregates.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// Pagination bounds shared by the listing queries.
const (
	MinLimit = 1
	MaxLimit = 100
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery retrieves a page of the requesting customer's own
// orders. The customer identity comes from the actor, never from request
// parameters, so one customer cannot page through another's history.
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	actor  actor.Actor
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the actor's own order page.
func NewGetCustomerOrdersQuery(a actor.Actor, limit, offset int) (GetCustomerOrdersQuery, error) {
	q := GetCustomerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setActor(a),
		q.setLimit(limit),
		q.setOffset(offset),
	); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// Actor returns the customer requesting their order page.
func (q GetCustomerOrdersQuery) Actor() actor.Actor {
	return q.actor
}

// Limit returns the page size.
func (q GetCustomerOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of orders skipped before the page starts.
func (q GetCustomerOrdersQuery) Offset() int {
	return q.offset
}

func (q *GetCustomerOrdersQuery) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	q.actor = a
	return nil
}

func (q *GetCustomerOrdersQuery) setLimit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, MinLimit, MaxLimit)
	}

	q.limit = limit
	return nil
}

func (q *GetCustomerOrdersQuery) setOffset(offset int) error {
	if offset < 0 {
		return errs.NewValueIsInvalidError("offset")
	}

	q.offset = offset
	return nil
}

// CustomerOrderItemResponse is one line item within a customer's order view.
// ProductName is empty and Unavailable true when the referenced product has
// been removed from the catalog.
type CustomerOrderItemResponse struct {
	ProductID   kernel.UUID
	Quantity    int
	ProductName string
	Unavailable bool
}

// CustomerOrderResponse is one order within the customer's page, including
// the read-side eligibility flags for the cancel and delete actions.
type CustomerOrderResponse struct {
	ID          kernel.UUID
	Status      order.Status
	TotalAmount int64
	CreatedAt   time.Time
	Items       []CustomerOrderItemResponse
	CanCancel   bool
	CanDelete   bool
}

// GetCustomerOrdersQueryResponse is a page of orders plus the total count of
// the customer's orders across all pages.
type GetCustomerOrdersQueryResponse struct {
	Orders     []CustomerOrderResponse
	TotalCount int64
}
