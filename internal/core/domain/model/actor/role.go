package actor

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Role identifies which surface of the storefront an actor operates from.
// Customers interact through the shop; admins through the management console.
// Authorization rules for the order lifecycle are keyed on this value.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer is a shopper acting on their own orders.
	Customer

	// Admin is a console operator acting on any order.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Customer:    "customer",
		Admin:       "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Customer: "customer",
		Admin:    "admin",
	}
}

// RoleFromString parses a role name as carried in session tokens.
// Valid inputs are "customer" and "admin"; anything else is rejected.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks that the Role is one of the valid enumerated values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the lowercase role name. Implements fmt.Stringer and is
// safe to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
