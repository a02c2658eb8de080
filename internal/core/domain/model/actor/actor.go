// Package actor models the identity making a request against the order
// subsystem. The session layer resolves a token into an Actor once per
// request; the domain receives it as an explicit parameter and holds no
// session state of its own.
package actor

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory function.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is a value object carrying the resolved identity and role of the
// caller. Ownership checks compare the actor's ID against an order's
// customer ID; role checks select which authorization rules apply.
type Actor struct {
	id   kernel.UUID
	role Role

	isConstructed bool
}

// NewActor creates a validated Actor from a resolved session identity.
// Both the ID and the role must be valid; the identity layer is trusted to
// have authenticated them.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor operates from the management console.
func (a Actor) IsAdmin() bool {
	return a.role == Admin
}

// Owns reports whether the actor is the customer identified by customerID.
// Always false for admins; ownership is a customer-side concept.
func (a Actor) Owns(customerID kernel.UUID) bool {
	return a.role == Customer && a.id.IsEqual(customerID)
}
