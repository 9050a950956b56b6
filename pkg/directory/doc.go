// Package directory provides the user directory service: user record
// CRUD with validation and the reversible soft-delete lifecycle.
//
// # Overview
//
// The directory package provides:
//   - User record creation (identity creation delegated to the provider)
//   - Lookup by id and full listing in store order
//   - Partial updates with role validation before persistence
//   - Idempotent deactivate/reactivate (soft delete, never physical)
//   - One audit entry per state-changing call, emitted after the
//     primary write and never able to fail the operation
//
// # Basic Usage
//
//	import "github.com/tendant/simple-org/pkg/directory"
//
//	repo := directory.NewDocStoreRepository(store)
//	service := directory.NewService(repo, provider, auditLogger)
//
//	user, err := service.CreateUser(ctx, actor, directory.CreateUserParams{
//		Email:    "a@example.com",
//		Password: "SecurePass123",
//		Role:     role.RoleManager,
//	})
package directory
