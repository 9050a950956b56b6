package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Identity is the externally verified principal backing a session.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Provider error codes surfaced to the session manager. The session
// manager maps each code to a stable, user-presentable auth error.
const (
	CodeWrongPassword     = "auth/wrong-password"
	CodeInvalidCredential = "auth/invalid-credential"
	CodeUserNotFound      = "auth/user-not-found"
	CodeTooManyRequests   = "auth/too-many-requests"
	CodeUserDisabled      = "auth/user-disabled"
	CodeEmailAlreadyInUse = "auth/email-already-in-use"
	CodeWeakPassword      = "auth/weak-password"
	CodeInvalidEmail      = "auth/invalid-email"
)

// ProviderError is an identity provider failure with a stable code.
type ProviderError struct {
	Code string
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a provider error with the given code
func NewProviderError(code string) *ProviderError {
	return &ProviderError{Code: code}
}

// CodeOf extracts the provider error code, or "" for other errors
func CodeOf(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// ChangeCallback receives the new identity on every identity-state change.
// A nil identity means signed out.
type ChangeCallback func(*Identity)

// Provider defines the identity provider boundary. It owns credential
// verification, account creation, and password reset delivery; everything
// else in the system holds identities read-only.
type Provider interface {
	// VerifyCredentials checks email+password and returns the identity.
	VerifyCredentials(ctx context.Context, email, password string) (Identity, error)
	// CreateIdentity creates a new account for email.
	CreateIdentity(ctx context.Context, email, password string) (Identity, error)
	// SetDisplayName sets the display name on the identity's account.
	SetDisplayName(ctx context.Context, id uuid.UUID, displayName string) error
	// SendPasswordReset delivers a password reset to email.
	SendPasswordReset(ctx context.Context, email string) error
	// SignOut terminates the provider-side session.
	SignOut(ctx context.Context) error
	// SubscribeIdentityChanges registers a callback for identity-state
	// changes and returns an unsubscribe function.
	SubscribeIdentityChanges(cb ChangeCallback) (unsubscribe func())
}
