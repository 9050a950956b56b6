package directory

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/tendant/simple-org/pkg/audit"
	"github.com/tendant/simple-org/pkg/errors"
	"github.com/tendant/simple-org/pkg/identity"
	"github.com/tendant/simple-org/pkg/role"
	"golang.org/x/exp/slog"
)

// Service provides user directory operations: CRUD plus the reversible
// soft-delete lifecycle. Every state-changing call records one audit
// entry after the primary write commits.
type Service struct {
	repo        Repository
	provider    identity.Provider
	auditLogger *audit.Logger
	now         func() time.Time
}

// NewService creates a new user directory service
func NewService(repo Repository, provider identity.Provider, auditLogger *audit.Logger) *Service {
	return &Service{
		repo:        repo,
		provider:    provider,
		auditLogger: auditLogger,
		now:         time.Now,
	}
}

// CreateUser creates the identity and persists the user record with
// active=true. The role defaults to employee when unset.
func (s *Service) CreateUser(ctx context.Context, actor audit.Actor, params CreateUserParams) (User, error) {
	if params.Email == "" {
		return User{}, errors.New(errors.ErrCodeMissingRequired, "email is required")
	}

	userRole := params.Role
	if userRole == "" {
		userRole = role.RoleEmployee
	}
	if !userRole.Valid() {
		return User{}, errors.Newf(errors.ErrCodeValidationFailed, "invalid role: %q", params.Role)
	}

	ident, err := s.provider.CreateIdentity(ctx, params.Email, params.Password)
	if err != nil {
		return User{}, mapIdentityError(err)
	}

	if params.DisplayName != "" {
		if err := s.provider.SetDisplayName(ctx, ident.ID, params.DisplayName); err != nil {
			slog.Warn("Failed to set display name on identity", "userId", ident.ID, "err", err)
		}
	}

	user := User{
		ID:          ident.ID,
		Email:       ident.Email,
		DisplayName: params.DisplayName,
		Role:        userRole,
		Active:      true,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return User{}, errors.Transient(err, "failed to persist user record")
	}

	s.auditLogger.Record(ctx, audit.ActionUserCreated, actor, map[string]interface{}{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role.String(),
	})

	return user, nil
}

// GetUserByID retrieves a user record
func (s *Service) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		if stderrors.Is(err, ErrUserNotFound) {
			return User{}, errors.Newf(errors.ErrCodeUserNotFound, "user not found: %s", id)
		}
		return User{}, errors.Transient(err, "failed to read user record")
	}
	return user, nil
}

// GetAllUsers returns all user records in the store's natural order
func (s *Service) GetAllUsers(ctx context.Context) ([]User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, errors.Transient(err, "failed to list user records")
	}
	return users, nil
}

// UpdateUser applies a partial update. Unset fields are unchanged.
// Validation happens before any persistence call: an invalid role leaves
// the stored record untouched.
func (s *Service) UpdateUser(ctx context.Context, actor audit.Actor, id uuid.UUID, params UpdateUserParams) (User, error) {
	if params.Role != nil && !params.Role.Valid() {
		return User{}, errors.Newf(errors.ErrCodeValidationFailed, "invalid role: %q", *params.Role)
	}

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	changed := map[string]interface{}{"user_id": id.String()}
	if params.DisplayName != nil {
		user.DisplayName = *params.DisplayName
		changed["display_name"] = *params.DisplayName
	}
	if params.Role != nil {
		user.Role = *params.Role
		changed["role"] = params.Role.String()
	}
	if params.Active != nil {
		user.Active = *params.Active
		changed["active"] = *params.Active
	}

	if err := s.repo.SaveUser(ctx, user); err != nil {
		return User{}, errors.Transient(err, "failed to persist user record")
	}

	s.auditLogger.Record(ctx, audit.ActionUserUpdated, actor, changed)

	return user, nil
}

// DeactivateUser soft-deletes a user. Deactivating an already-inactive
// user is a no-op success.
func (s *Service) DeactivateUser(ctx context.Context, actor audit.Actor, id uuid.UUID) error {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.Active {
		return nil
	}

	user.Active = false
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return errors.Transient(err, "failed to persist user record")
	}

	s.auditLogger.Record(ctx, audit.ActionUserDeactivated, actor, map[string]interface{}{
		"user_id": id.String(),
		"email":   user.Email,
	})

	return nil
}

// ReactivateUser reverses a soft delete. Reactivating an already-active
// user is a no-op success.
func (s *Service) ReactivateUser(ctx context.Context, actor audit.Actor, id uuid.UUID) error {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Active {
		return nil
	}

	user.Active = true
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return errors.Transient(err, "failed to persist user record")
	}

	s.auditLogger.Record(ctx, audit.ActionUserReactivated, actor, map[string]interface{}{
		"user_id": id.String(),
		"email":   user.Email,
	})

	return nil
}

// mapIdentityError converts provider error codes raised during identity
// creation into the directory error taxonomy.
func mapIdentityError(err error) error {
	switch identity.CodeOf(err) {
	case identity.CodeEmailAlreadyInUse:
		return errors.Wrap(err, errors.ErrCodeUserAlreadyExists, "an account with this email already exists")
	case identity.CodeWeakPassword:
		return errors.Wrap(err, errors.ErrCodeValidationFailed, "password is too weak")
	case identity.CodeInvalidEmail:
		return errors.Wrap(err, errors.ErrCodeValidationFailed, "invalid email address")
	default:
		return errors.Transient(err, "failed to create identity")
	}
}
