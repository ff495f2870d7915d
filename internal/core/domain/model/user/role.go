package user

import (
	"fmt"

	"pasteleria/internal/pkg/errs"
)

// Role identifies what a user is allowed to do in the system.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// Cliente places orders and sees only their own.
	Cliente

	// Admin manages the catalog, order statuses, and delivery assignment.
	Admin

	// Delivery carries assigned orders and advances them on the road.
	Delivery
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "UNKNOWN",
		Cliente:     "CLIENTE",
		Admin:       "ADMIN",
		Delivery:    "DELIVERY",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		Cliente:  "CLIENTE",
		Admin:    "ADMIN",
		Delivery: "DELIVERY",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("rol", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of the three valid roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("rol", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
