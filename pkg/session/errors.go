package session

import (
	"github.com/tendant/simple-org/pkg/errors"
	"github.com/tendant/simple-org/pkg/identity"
)

// Fixed user-facing messages for auth failures. Messages are stable:
// they are part of the consumer contract and never include provider
// internals.
const (
	msgInvalidCredentials = "Invalid email or password"
	msgTooManyAttempts    = "Too many failed attempts. Please try again later"
	msgAccountDisabled    = "This account has been disabled"
	msgEmailInUse         = "An account with this email already exists"
	msgWeakPassword       = "Password is too weak. Use at least 8 characters"
	msgInvalidEmail       = "Invalid email address"
	msgUserNotFound       = "No account found with this email"
	msgUnknown            = "Authentication failed. Please try again"
)

// mapAuthError converts an identity provider failure into the stable
// auth error surfaced to callers. Every provider code maps to exactly
// one tag; unrecognized failures map to the unknown tag rather than
// leaking provider detail.
func mapAuthError(err error) *errors.Error {
	switch identity.CodeOf(err) {
	case identity.CodeWrongPassword, identity.CodeInvalidCredential:
		return errors.Wrap(err, errors.ErrCodeInvalidCredentials, msgInvalidCredentials)
	case identity.CodeTooManyRequests:
		return errors.Wrap(err, errors.ErrCodeTooManyAttempts, msgTooManyAttempts)
	case identity.CodeUserDisabled:
		return errors.Wrap(err, errors.ErrCodeAccountDisabled, msgAccountDisabled)
	case identity.CodeEmailAlreadyInUse:
		return errors.Wrap(err, errors.ErrCodeEmailInUse, msgEmailInUse)
	case identity.CodeWeakPassword:
		return errors.Wrap(err, errors.ErrCodeWeakPassword, msgWeakPassword)
	case identity.CodeInvalidEmail:
		return errors.Wrap(err, errors.ErrCodeInvalidEmail, msgInvalidEmail)
	case identity.CodeUserNotFound:
		return errors.Wrap(err, errors.ErrCodeUserNotFound, msgUserNotFound)
	default:
		return errors.Wrap(err, errors.ErrCodeAuthUnknown, msgUnknown)
	}
}
