// Package services provides domain services that implement business rules
// spanning more than one aggregate in the storefront system.
//
// The package includes:
//   - OrderLifecycle: the authorization and transition rules governing order
//     status changes and deletions for customers and administrators
//
// Domain services hold no state of their own; they receive the actor and the
// aggregates they decide over as explicit parameters on every call.
package services
