package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tendant/simple-org/pkg/docstore"
	"github.com/tendant/simple-org/pkg/role"
)

// Common errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// Repository defines the interface for user record persistence
type Repository interface {
	// CreateUser writes a new user record.
	CreateUser(ctx context.Context, user User) error
	// GetUser retrieves a user record by id.
	GetUser(ctx context.Context, id uuid.UUID) (User, error)
	// ListUsers returns all user records in the store's natural order.
	ListUsers(ctx context.Context) ([]User, error)
	// SaveUser replaces an existing user record.
	SaveUser(ctx context.Context, user User) error
}

// DocStoreRepository implements Repository over the document store,
// using the same "users" collection the role resolver reads.
type DocStoreRepository struct {
	store docstore.Store
}

// NewDocStoreRepository creates a new document-store-backed repository
func NewDocStoreRepository(store docstore.Store) *DocStoreRepository {
	return &DocStoreRepository{
		store: store,
	}
}

// CreateUser writes a new user record
func (r *DocStoreRepository) CreateUser(ctx context.Context, user User) error {
	return r.store.Set(ctx, role.UserCollection, user.ID.String(), toDocument(user))
}

// GetUser retrieves a user record by id
func (r *DocStoreRepository) GetUser(ctx context.Context, id uuid.UUID) (User, error) {
	doc, exists, err := r.store.Get(ctx, role.UserCollection, id.String())
	if err != nil {
		return User{}, fmt.Errorf("failed to get user document: %w", err)
	}
	if !exists {
		return User{}, ErrUserNotFound
	}
	return fromDocument(id, doc)
}

// ListUsers returns all user records in the store's natural order
func (r *DocStoreRepository) ListUsers(ctx context.Context) ([]User, error) {
	entries, err := r.store.List(ctx, role.UserCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to list user documents: %w", err)
	}

	users := make([]User, 0, len(entries))
	for _, entry := range entries {
		id, err := uuid.Parse(entry.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid user document id %q: %w", entry.ID, err)
		}
		user, err := fromDocument(id, entry.Doc)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// SaveUser replaces an existing user record
func (r *DocStoreRepository) SaveUser(ctx context.Context, user User) error {
	return r.store.Set(ctx, role.UserCollection, user.ID.String(), toDocument(user))
}

// toDocument converts a User to its document store representation
func toDocument(user User) docstore.Document {
	return docstore.Document{
		"email":        user.Email,
		"display_name": user.DisplayName,
		"role":         string(user.Role),
		"active":       user.Active,
		"created_at":   user.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// fromDocument converts a stored document back to a User
func fromDocument(id uuid.UUID, doc docstore.Document) (User, error) {
	user := User{ID: id}

	user.Email, _ = doc["email"].(string)
	user.DisplayName, _ = doc["display_name"].(string)

	rawRole, _ := doc["role"].(string)
	user.Role = role.Role(rawRole)

	user.Active, _ = doc["active"].(bool)

	if rawCreated, ok := doc["created_at"].(string); ok && rawCreated != "" {
		createdAt, err := time.Parse(time.RFC3339Nano, rawCreated)
		if err != nil {
			return User{}, fmt.Errorf("invalid created_at on user %s: %w", id, err)
		}
		user.CreatedAt = createdAt
	}

	return user, nil
}
