package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tendant/simple-org/pkg/notification"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxFailedAttempts = 5
	lockoutDuration   = 15 * time.Minute
	minPasswordLength = 8
)

type localAccount struct {
	ID             uuid.UUID
	Email          string
	DisplayName    string
	PasswordHash   []byte
	Disabled       bool
	FailedAttempts int
	LockedUntil    time.Time
}

// LocalProvider implements Provider with an in-process credential store.
// Useful for development, demo environments, and tests; production
// deployments swap in an external identity provider behind the same
// interface.
type LocalProvider struct {
	mu          sync.RWMutex
	accounts    map[string]*localAccount // keyed by lowercased email
	resetTokens map[string]string        // token -> email
	subscribers map[int]ChangeCallback
	nextSubID   int

	notificationManager *notification.NotificationManager
}

// LocalProviderOption configures a LocalProvider
type LocalProviderOption func(*LocalProvider)

// WithNotificationManager enables password reset email delivery
func WithNotificationManager(nm *notification.NotificationManager) LocalProviderOption {
	return func(p *LocalProvider) {
		p.notificationManager = nm
	}
}

// NewLocalProvider creates a new local identity provider
func NewLocalProvider(opts ...LocalProviderOption) *LocalProvider {
	p := &LocalProvider{
		accounts:    make(map[string]*localAccount),
		resetTokens: make(map[string]string),
		subscribers: make(map[int]ChangeCallback),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// VerifyCredentials checks email+password and returns the identity
func (p *LocalProvider) VerifyCredentials(ctx context.Context, email, password string) (Identity, error) {
	p.mu.Lock()
	account, ok := p.accounts[normalizeEmail(email)]
	if !ok {
		p.mu.Unlock()
		return Identity{}, NewProviderError(CodeUserNotFound)
	}
	if account.Disabled {
		p.mu.Unlock()
		return Identity{}, NewProviderError(CodeUserDisabled)
	}
	if time.Now().Before(account.LockedUntil) {
		p.mu.Unlock()
		return Identity{}, NewProviderError(CodeTooManyRequests)
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		account.FailedAttempts++
		if account.FailedAttempts >= maxFailedAttempts {
			account.LockedUntil = time.Now().Add(lockoutDuration)
			account.FailedAttempts = 0
			slog.Warn("Account locked after repeated failures", "email", account.Email)
		}
		p.mu.Unlock()
		return Identity{}, &ProviderError{Code: CodeWrongPassword, Err: err}
	}

	account.FailedAttempts = 0
	ident := Identity{ID: account.ID, Email: account.Email}
	p.mu.Unlock()

	p.notifySubscribers(&ident)
	return ident, nil
}

// CreateIdentity creates a new account for email
func (p *LocalProvider) CreateIdentity(ctx context.Context, email, password string) (Identity, error) {
	key := normalizeEmail(email)
	if !strings.Contains(key, "@") || strings.HasPrefix(key, "@") || strings.HasSuffix(key, "@") {
		return Identity{}, NewProviderError(CodeInvalidEmail)
	}
	if len(password) < minPasswordLength {
		return Identity{}, NewProviderError(CodeWeakPassword)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.accounts[key]; exists {
		return Identity{}, NewProviderError(CodeEmailAlreadyInUse)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &localAccount{
		ID:           uuid.New(),
		Email:        key,
		PasswordHash: hash,
	}
	p.accounts[key] = account

	return Identity{ID: account.ID, Email: account.Email}, nil
}

// SetDisplayName sets the display name on the identity's account
func (p *LocalProvider) SetDisplayName(ctx context.Context, id uuid.UUID, displayName string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, account := range p.accounts {
		if account.ID == id {
			account.DisplayName = displayName
			return nil
		}
	}
	return NewProviderError(CodeUserNotFound)
}

// SendPasswordReset issues a reset token and delivers it by email
func (p *LocalProvider) SendPasswordReset(ctx context.Context, email string) error {
	key := normalizeEmail(email)

	p.mu.Lock()
	_, ok := p.accounts[key]
	if !ok {
		p.mu.Unlock()
		return NewProviderError(CodeUserNotFound)
	}

	token, err := generateResetToken()
	if err != nil {
		p.mu.Unlock()
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	p.resetTokens[token] = key
	nm := p.notificationManager
	p.mu.Unlock()

	if nm == nil {
		slog.Info("No notification manager configured, skipping reset email", "email", key)
		return nil
	}

	resetLink := fmt.Sprintf("%s/password-reset/%s", nm.BaseUrl, token)
	return nm.Send(notification.PasswordResetNotice, notification.NotificationData{
		To: key,
		Data: map[string]string{
			"Link": resetLink,
		},
	})
}

// ResetPassword consumes a reset token and updates the account password
func (p *LocalProvider) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return NewProviderError(CodeWeakPassword)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key, ok := p.resetTokens[token]
	if !ok {
		return NewProviderError(CodeInvalidCredential)
	}
	account, ok := p.accounts[key]
	if !ok {
		return NewProviderError(CodeUserNotFound)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	account.PasswordHash = hash
	delete(p.resetTokens, token)
	return nil
}

// SignOut terminates the provider-side session
func (p *LocalProvider) SignOut(ctx context.Context) error {
	p.notifySubscribers(nil)
	return nil
}

// SubscribeIdentityChanges registers a callback for identity-state changes
func (p *LocalProvider) SubscribeIdentityChanges(cb ChangeCallback) func() {
	p.mu.Lock()
	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = cb
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subscribers, id)
		p.mu.Unlock()
	}
}

// SetDisabled flips the disabled flag on an account (admin tooling)
func (p *LocalProvider) SetDisabled(email string, disabled bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	account, ok := p.accounts[normalizeEmail(email)]
	if !ok {
		return NewProviderError(CodeUserNotFound)
	}
	account.Disabled = disabled
	return nil
}

// SeedAccount adds an account directly (for testing/initialization)
func (p *LocalProvider) SeedAccount(id uuid.UUID, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	key := normalizeEmail(email)
	p.accounts[key] = &localAccount{
		ID:           id,
		Email:        key,
		PasswordHash: hash,
	}
	return nil
}

func (p *LocalProvider) notifySubscribers(ident *Identity) {
	p.mu.RLock()
	callbacks := make([]ChangeCallback, 0, len(p.subscribers))
	for _, cb := range p.subscribers {
		callbacks = append(callbacks, cb)
	}
	p.mu.RUnlock()

	for _, cb := range callbacks {
		cb(ident)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func generateResetToken() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
