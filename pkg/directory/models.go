package directory

import (
	"time"

	"github.com/google/uuid"
	"github.com/tendant/simple-org/pkg/role"
)

// User represents a user record in the directory.
//
// The id equals the identity id and is immutable. Records are never
// physically deleted: Active=false is the terminal "removed" state and is
// reversible.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	Role        role.Role `json:"role"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateUserParams contains parameters for creating a new user
type CreateUserParams struct {
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	DisplayName string    `json:"display_name,omitempty"`
	Role        role.Role `json:"role,omitempty"`
}

// UpdateUserParams contains parameters for a partial user update.
// Nil fields are left unchanged.
type UpdateUserParams struct {
	DisplayName *string    `json:"display_name,omitempty"`
	Role        *role.Role `json:"role,omitempty"`
	Active      *bool      `json:"active,omitempty"`
}
