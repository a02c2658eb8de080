package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
)

// ChangeOrderStatusResult reports the outcome of a successful status change.
type ChangeOrderStatusResult struct {
	OrderID kernel.UUID
	Status  order.Status
}

// ChangeOrderStatusCommandHandler handles order status changes for both
// actor surfaces. It resolves the order, asks the lifecycle service whether
// the actor may perform the move, and persists the new status in a single
// read-validate-write transaction. Nothing beyond the status field is
// touched; there are no inventory, payment, or notification side effects.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  services.OrderLifecycle
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

// Handle processes the status-change command and returns the updated
// identifier/status pair. Forbidden and not-found outcomes are returned as
// typed errors; no write is attempted once validation fails.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (ChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = h.lifecycle.ChangeStatus(cmd.Actor(), aggregate, cmd.RequestedStatus()); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	return ChangeOrderStatusResult{
		OrderID: aggregate.ID(),
		Status:  aggregate.Status(),
	}, nil
}
