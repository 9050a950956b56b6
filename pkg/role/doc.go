// Package role defines the closed role enumeration and role resolution.
//
// Every authenticated identity is assigned exactly one role out of
// {admin, manager, employee, ceo}. The Resolver reads the identity's user
// document from the document store and resolves its role tag with a
// fail-open default: anything that prevents resolution yields
// RoleEmployee rather than an error.
//
// # Basic Usage
//
//	import "github.com/tendant/simple-org/pkg/role"
//
//	resolver := role.NewResolver(store)
//	r := resolver.ResolveRole(ctx, identityID) // never fails
//
//	if r == role.RoleAdmin {
//		// admin-only path; verify again at the point of use
//	}
//
// The employee default is deliberately not an authorization grant. Callers
// performing privileged operations must check the resolved role themselves
// (see pkg/token RequireRoles for the HTTP enforcement point).
package role
