package role

import (
	"errors"
	"fmt"
)

// Role is the sole authorization axis in the system. It is a closed
// enumeration: every user holds exactly one of the four tags.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
	RoleCEO      Role = "ceo"
)

// UserCollection is the document store collection holding user records.
const UserCollection = "users"

var ErrInvalidRole = errors.New("invalid role")

// All returns the four valid roles in stable order
func All() []Role {
	return []Role{RoleAdmin, RoleManager, RoleEmployee, RoleCEO}
}

// Valid reports whether r is one of the four enumerated tags
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee, RoleCEO:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Parse validates a raw role tag
func Parse(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}
