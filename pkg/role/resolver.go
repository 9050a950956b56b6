package role

import (
	"context"

	"github.com/tendant/simple-org/pkg/docstore"
	"golang.org/x/exp/slog"
)

// Resolver maps a session identity to its role by reading the user
// document from the document store.
type Resolver struct {
	store docstore.Store
}

// NewResolver creates a new role resolver
func NewResolver(store docstore.Store) *Resolver {
	return &Resolver{
		store: store,
	}
}

// ResolveRole returns the role stored for identityID.
//
// Resolution never fails: a missing document, a store error, or a stored
// tag outside the four valid roles all resolve to RoleEmployee. The
// default is a fail-open policy for resolution only; privileged
// operations must still verify the role at the point of use.
func (r *Resolver) ResolveRole(ctx context.Context, identityID string) Role {
	doc, exists, err := r.store.Get(ctx, UserCollection, identityID)
	if err != nil {
		slog.Warn("Role lookup failed, falling back to employee", "identityId", identityID, "err", err)
		return RoleEmployee
	}
	if !exists {
		slog.Warn("No user record for identity, falling back to employee", "identityId", identityID)
		return RoleEmployee
	}

	raw, _ := doc["role"].(string)
	resolved, err := Parse(raw)
	if err != nil {
		slog.Warn("Stored role is not a valid tag, falling back to employee", "identityId", identityID, "role", raw)
		return RoleEmployee
	}
	return resolved
}
