package services

import (
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"

	"storefront/internal/pkg/errs"
)

// Operation names used in forbidden outcomes surfaced to callers.
const (
	opChangeStatus = "change order status"
	opDeleteOrder  = "delete order"
)

// decision is the outcome of an authorization rule: an allow/deny flag plus
// the reason a denial carries back to the caller.
type decision struct {
	allowed bool
	reason  string
}

func allow() decision {
	return decision{allowed: true}
}

func deny(reason string) decision {
	return decision{reason: reason}
}

// OrderLifecycle is the domain service gatekeeping every order status change
// and deletion request against the actor's role and the order's current
// state. It is stateless; all order state lives in the repository and the
// actor arrives as an explicit parameter on every call.
//
// Rules:
//   - A customer may cancel their own order while it is still pending, and
//     may perform no other status change.
//   - An admin may set any of the five statuses at any time, including
//     moving backward or re-opening a cancelled order. This is the
//     management console's documented permissive override, not an oversight
//     to be tightened here.
//   - A customer may delete their own order when it is cancelled or when at
//     least one line item references a product no longer in the catalog.
//   - An admin may delete only cancelled orders; the console can prune
//     abandoned orders but cannot erase the record of a paid or shipped one.
type OrderLifecycle struct{}

// NewOrderLifecycle creates a new OrderLifecycle instance.
func NewOrderLifecycle() OrderLifecycle {
	return OrderLifecycle{}
}

// ChangeStatus validates a status-change request and applies it to the
// aggregate on success. The requested status must already be within the
// five-value enumeration; callers reject malformed input before any store
// access. A denial is returned as an OperationForbiddenError carrying the
// rule that rejected the request, never silently downgraded to a no-op.
func (s OrderLifecycle) ChangeStatus(a actor.Actor, o *order.Order, requested order.Status) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if err := requested.Validate(); err != nil {
		return err
	}

	if d := s.decideStatusChange(a, o, requested); !d.allowed {
		return errs.NewOperationForbiddenError(opChangeStatus, d.reason)
	}

	return o.ChangeStatus(requested)
}

// ApproveDeletion validates a deletion request without touching the
// aggregate; the caller performs the actual removal after approval.
// hasUnresolvableItem reports whether any line item's product reference no
// longer resolves against the catalog.
func (s OrderLifecycle) ApproveDeletion(a actor.Actor, o *order.Order, hasUnresolvableItem bool) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if d := s.decideDeletion(a, o, hasUnresolvableItem); !d.allowed {
		return errs.NewOperationForbiddenError(opDeleteOrder, d.reason)
	}

	return nil
}

// CanCancel reports whether the actor may cancel the order. Pure read-side
// check with no mutation, so callers can decide whether to render the
// destructive action before invoking it.
func (s OrderLifecycle) CanCancel(a actor.Actor, o *order.Order) bool {
	return s.decideStatusChange(a, o, order.Cancelled).allowed
}

// CanDelete reports whether the actor may delete the order. Pure read-side
// check with no mutation.
func (s OrderLifecycle) CanDelete(a actor.Actor, o *order.Order, hasUnresolvableItem bool) bool {
	return s.decideDeletion(a, o, hasUnresolvableItem).allowed
}

// decideStatusChange is the single authorization function for status
// movement, keyed on the actor's role plus current and requested state.
func (s OrderLifecycle) decideStatusChange(a actor.Actor, o *order.Order, requested order.Status) decision {
	if a.IsAdmin() {
		// Documented permissive override: the console may set any status
		// regardless of the current one.
		return allow()
	}

	if !a.Owns(o.CustomerID()) {
		return deny("actor does not own the order")
	}

	if requested != order.Cancelled {
		return deny("customers may only cancel an order")
	}

	if o.Status() != order.Pending {
		return deny("only a pending order can be cancelled")
	}

	return allow()
}

// decideDeletion is the single authorization function for order removal.
func (s OrderLifecycle) decideDeletion(a actor.Actor, o *order.Order, hasUnresolvableItem bool) decision {
	if a.IsAdmin() {
		if o.Status() != order.Cancelled {
			return deny("only a cancelled order can be deleted")
		}
		return allow()
	}

	if !a.Owns(o.CustomerID()) {
		return deny("actor does not own the order")
	}

	if o.Status() != order.Cancelled && !hasUnresolvableItem {
		return deny("order is neither cancelled nor referencing a removed product")
	}

	return allow()
}
