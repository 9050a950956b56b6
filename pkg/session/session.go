package session

import (
	"github.com/tendant/simple-org/pkg/identity"
	"github.com/tendant/simple-org/pkg/role"
)

// Session is the process-wide authentication snapshot. It is replaced
// wholesale on every identity-change event and never mutated in place, so
// consumers that take a snapshot cannot observe a torn read.
type Session struct {
	// Identity is the verified principal, nil when signed out.
	Identity *identity.Identity `json:"identity,omitempty"`
	// Role is the resolved role; meaningful only when RoleResolved.
	Role role.Role `json:"role,omitempty"`
	// RoleResolved reports whether Role has been resolved for Identity.
	RoleResolved bool `json:"role_resolved"`
	// Loading is true from an identity-change event until role
	// resolution completes. Consumers should not render dependent
	// state while Loading.
	Loading bool `json:"loading"`
}

// SignedIn reports whether the session holds an authenticated identity
func (s Session) SignedIn() bool {
	return s.Identity != nil
}
