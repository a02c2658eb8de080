package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer's purchase record. It is the aggregate root
// for the order lifecycle: placed once in pending status, mutated only
// through status changes gated by the lifecycle rules, and destroyed only
// through the deletion rules.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a valid owning customer
//   - Must hold at least one line item; items are immutable after creation
//   - Total amount is computed at placement time and never recomputed
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// items is the fixed set of (product reference, quantity) pairs
	items []LineItem

	// totalAmount is the order total in minor currency units
	totalAmount int64

	// status is the current lifecycle state
	status Status

	// createdAt is the placement timestamp
	createdAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a newly placed order in Pending status. The items slice
// must be non-empty and every item must be a constructed LineItem; the total
// amount must be non-negative.
func NewOrder(id, customerID kernel.UUID, items []LineItem, totalAmount int64) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status
// and creation time. All fields pass the same validation as NewOrder.
func RestoreOrder(
	id, customerID kernel.UUID,
	items []LineItem,
	totalAmount int64,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setTotalAmount(totalAmount),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the order total in minor currency units.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to newStatus. The status must be one of the
// five enumerated values; whether the move is permitted for a given actor is
// decided by the lifecycle service before this method is called. The
// aggregate itself accepts any valid target so that the management console's
// unconstrained selector keeps working.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the owning customer's identifier.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setItems validates and sets the line items. An order without items is
// never valid; items are copied to keep the aggregate immutable from outside.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d]", i),
				err,
			)
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

// setTotalAmount validates and sets the order total.
// The total must be non-negative.
func (o *Order) setTotalAmount(totalAmount int64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("%d is negative", totalAmount),
		)
	}
	o.totalAmount = totalAmount
	return nil
}

// setStatus validates and sets the stored lifecycle state during restore.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
