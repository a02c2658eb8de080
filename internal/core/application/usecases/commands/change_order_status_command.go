package commands

import (
	"errors"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status on behalf of an actor. It covers both surfaces: a
// customer cancelling their own pending order and an admin setting any of
// the five statuses through the console's unconstrained selector.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor           actor.Actor
	orderID         kernel.UUID
	requestedStatus order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status-change command. The requested
// status is validated against the five-value enumeration here, before any
// store access.
func NewChangeOrderStatusCommand(a actor.Actor, orderID kernel.UUID, requestedStatus order.Status) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setOrderID(orderID),
		cmd.setRequestedStatus(requestedStatus),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// Actor returns the actor requesting the status change.
func (c ChangeOrderStatusCommand) Actor() actor.Actor {
	return c.actor
}

// OrderID returns the identifier of the order to change.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequestedStatus returns the target lifecycle status.
func (c ChangeOrderStatusCommand) RequestedStatus() order.Status {
	return c.requestedStatus
}

func (c *ChangeOrderStatusCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setRequestedStatus(requestedStatus order.Status) error {
	if err := requestedStatus.Validate(); err != nil {
		return err
	}

	c.requestedStatus = requestedStatus
	return nil
}
