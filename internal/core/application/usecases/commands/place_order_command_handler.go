package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles order placement. Every referenced product
// must resolve at placement time; the order total is the sum of current unit
// prices times quantities, computed once here and stored on the order.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a cross-aggregate unit of work to price items against the catalog.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the placement command. The new order is persisted in
// pending status or not at all.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	productRepo := uow.ProductRepository()

	var totalAmount int64
	for _, item := range cmd.Items() {
		p, err := productRepo.Get(ctx, item.ProductID())
		if err != nil {
			return err
		}
		totalAmount += p.Price() * int64(item.Quantity())
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Items(), totalAmount)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
