// Package ports defines repository interfaces for the storefront domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All operations are atomic at single-order granularity; conflicting writes
// to the same order resolve last-write-wins.
type OrderRepository interface {
	// Add persists a newly placed order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns an error if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves a page of the customer's orders, newest first,
	// along with the total count of orders owned by that customer.
	GetByCustomer(ctx context.Context, customerID kernel.UUID, limit, offset int) ([]*order.Order, int64, error)

	// GetAll retrieves a page of all orders across customers, newest first,
	// along with the total order count. Serves the admin listing.
	GetAll(ctx context.Context, limit, offset int) ([]*order.Order, int64, error)

	// Delete removes an order permanently. There is no soft delete or
	// archival tier; a subsequent Get fails with ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error
}
