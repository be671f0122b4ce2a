package domain

import "fmt"

// Role is the requester's authorization role.
type Role string

// Available roles.
const (
	RoleContractor Role = "contractor"
	RoleEmployee   Role = "employee"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	switch r {
	case RoleContractor, RoleEmployee, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// ParseRole validates a role name.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
	}
	return r, nil
}

// Identity is a resolved requester. A nil *Identity means the request is
// anonymous.
type Identity struct {
	UserID string
	Role   Role
	Record Record
}
