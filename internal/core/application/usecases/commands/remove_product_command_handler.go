package commands

import (
	"context"
)

// RemoveProductCommandHandler handles catalog product removal.
type RemoveProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewRemoveProductCommandHandler creates a handler for product removal.
func NewRemoveProductCommandHandler(uowFactory ProductUoWFactory) RemoveProductCommandHandler {
	return RemoveProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product removal command. The product is deleted from
// the catalog only; orders referencing it keep their line items, which from
// now on resolve as unavailable.
func (h *RemoveProductCommandHandler) Handle(ctx context.Context, cmd RemoveProductCommand) error {
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

	if err := uow.ProductRepository().Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
