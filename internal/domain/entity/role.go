// Package entity contains the core business objects of the project.
package entity

// Role represents the authorization level of an account.
type Role string

const (
	// RoleStandard is the default role assigned on registration.
	RoleStandard Role = "STANDARD"
	// RolePremium indicates a paid membership with elevated access.
	RolePremium Role = "PREMIUM"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStandard, RolePremium:
		return true
	default:
		return false
	}
}
