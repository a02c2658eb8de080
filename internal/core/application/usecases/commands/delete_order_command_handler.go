package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
)

// DeleteOrderCommandHandler handles permanent order removal. It resolves the
// order, determines whether any line item references a product no longer in
// the catalog, asks the lifecycle service to approve the deletion for the
// requesting actor, and removes the record in the same transaction.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.OrderLifecycle
}

// NewDeleteOrderCommandHandler creates a handler for order deletions.
// Requires a cross-aggregate unit of work: the customer-side rule consults
// the product catalog to resolve line-item references.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

// Handle processes the deletion command. On approval the order is removed
// permanently; a subsequent fetch fails with ObjectNotFoundError.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	hasUnresolvableItem, err := h.hasUnresolvableItem(ctx, uow, cmd, aggregate)
	if err != nil {
		return err
	}

	if err = h.lifecycle.ApproveDeletion(cmd.Actor(), aggregate, hasUnresolvableItem); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// hasUnresolvableItem resolves each line item against the catalog. The check
// only matters for the customer-side rule on a non-cancelled order, so other
// requests skip the catalog round trips.
func (h *DeleteOrderCommandHandler) hasUnresolvableItem(ctx context.Context, uow UoW, cmd DeleteOrderCommand, aggregate *order.Order) (bool, error) {
	if cmd.Actor().IsAdmin() || aggregate.Status() == order.Cancelled {
		return false, nil
	}

	productRepo := uow.ProductRepository()
	for _, item := range aggregate.Items() {
		exists, err := productRepo.Exists(ctx, item.ProductID())
		if err != nil {
			return false, err
		}
		if !exists {
			return true, nil
		}
	}

	return false, nil
}
