package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tendant/simple-org/pkg/audit"
	"github.com/tendant/simple-org/pkg/directory"
	"github.com/tendant/simple-org/pkg/identity"
	"github.com/tendant/simple-org/pkg/role"
)

// Subscriber receives every session replacement.
type Subscriber func(Session)

// Manager owns the authentication lifecycle for the process: login,
// registration, logout, password reset, and the live subscription to
// identity-state changes. It composes the role resolver so a session is
// never reported ready before its role is resolved.
type Manager struct {
	provider  identity.Provider
	resolver  *role.Resolver
	directory *directory.Service

	mu          sync.RWMutex
	current     Session
	subscribers map[int]Subscriber
	nextSubID   int

	unsubscribe func()
	teardown    sync.Once
}

// NewManager creates a new session manager
func NewManager(provider identity.Provider, resolver *role.Resolver, directorySvc *directory.Service) *Manager {
	return &Manager{
		provider:    provider,
		resolver:    resolver,
		directory:   directorySvc,
		subscribers: make(map[int]Subscriber),
	}
}

// Start registers the one identity-change subscription with the
// provider. It must be called once, before any consumer reads the
// session.
func (m *Manager) Start(ctx context.Context) {
	m.unsubscribe = m.provider.SubscribeIdentityChanges(func(ident *identity.Identity) {
		m.handleIdentityChange(ctx, ident)
	})
}

// Close tears down the identity-change subscription. Safe to call more
// than once; teardown happens exactly once.
func (m *Manager) Close() {
	m.teardown.Do(func() {
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
	})
}

// Current returns an immutable snapshot of the session
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Subscribe registers a subscriber for session replacements and returns
// an unsubscribe function.
func (m *Manager) Subscribe(sub Subscriber) func() {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = sub
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	}
}

// Login verifies credentials and resolves the role before returning, so
// the returned session is already ready.
func (m *Manager) Login(ctx context.Context, email, password string) (Session, error) {
	ident, err := m.provider.VerifyCredentials(ctx, email, password)
	if err != nil {
		return Session{}, mapAuthError(err)
	}

	resolved := m.resolver.ResolveRole(ctx, ident.ID.String())
	snapshot := Session{
		Identity:     &ident,
		Role:         resolved,
		RoleResolved: true,
	}
	m.replace(snapshot)
	return snapshot, nil
}

// Register creates the identity, sets its display name, writes the user
// record with active=true, and signs the new user in. The role defaults
// to employee when unset.
func (m *Manager) Register(ctx context.Context, email, password, displayName string, userRole role.Role) (Session, error) {
	if userRole == "" {
		userRole = role.RoleEmployee
	}

	user, err := m.directory.CreateUser(ctx, audit.Actor{Email: email}, directory.CreateUserParams{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
		Role:        userRole,
	})
	if err != nil {
		// Provider codes survive wrapping; map them to the fixed
		// auth messages. Other failures surface unchanged.
		if identity.CodeOf(err) != "" {
			return Session{}, mapAuthError(err)
		}
		return Session{}, err
	}

	ident := identity.Identity{ID: user.ID, Email: user.Email}
	resolved := m.resolver.ResolveRole(ctx, ident.ID.String())
	snapshot := Session{
		Identity:     &ident,
		Role:         resolved,
		RoleResolved: true,
	}
	m.replace(snapshot)
	return snapshot, nil
}

// Logout clears the session. Local state is authoritative: the session
// is cleared even when the remote sign-out fails.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.provider.SignOut(ctx); err != nil {
		slog.Warn("Remote sign-out failed, clearing local session anyway", "err", err)
	}
	m.replace(Session{})
}

// ResetPassword delegates reset delivery to the provider. No local
// state changes.
func (m *Manager) ResetPassword(ctx context.Context, email string) error {
	if err := m.provider.SendPasswordReset(ctx, email); err != nil {
		return mapAuthError(err)
	}
	return nil
}

// handleIdentityChange reacts to a provider identity-state event: the
// session is first replaced with a loading snapshot, then with the
// resolved one. Loading becomes false only after role resolution
// completes.
func (m *Manager) handleIdentityChange(ctx context.Context, ident *identity.Identity) {
	if ident == nil {
		m.replace(Session{})
		return
	}

	m.replace(Session{Identity: ident, Loading: true})

	resolved := m.resolver.ResolveRole(ctx, ident.ID.String())
	m.replace(Session{
		Identity:     ident,
		Role:         resolved,
		RoleResolved: true,
	})
}

// replace swaps the session snapshot and notifies subscribers outside
// the lock.
func (m *Manager) replace(snapshot Session) {
	m.mu.Lock()
	m.current = snapshot
	subs := make([]Subscriber, 0, len(m.subscribers))
	for _, sub := range m.subscribers {
		subs = append(subs, sub)
	}
	m.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
}
