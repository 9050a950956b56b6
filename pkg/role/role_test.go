package role

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-org/pkg/docstore"
)

func TestParse(t *testing.T) {
	t.Run("ValidRoles", func(t *testing.T) {
		for _, name := range []string{"admin", "manager", "employee", "ceo"} {
			parsed, err := Parse(name)
			require.NoError(t, err)
			assert.Equal(t, Role(name), parsed)
		}
	})

	t.Run("InvalidRole", func(t *testing.T) {
		_, err := Parse("superuser")
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("EmptyRole", func(t *testing.T) {
		_, err := Parse("")
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleCEO.Valid())
	assert.False(t, Role("root").Valid())
	assert.False(t, Role("").Valid())
}

func TestAll(t *testing.T) {
	assert.Equal(t, []Role{RoleAdmin, RoleManager, RoleEmployee, RoleCEO}, All())
}

// failingStore returns an error on every read
type failingStore struct{}

func (f *failingStore) Get(ctx context.Context, collection, id string) (docstore.Document, bool, error) {
	return nil, false, errors.New("store unavailable")
}

func (f *failingStore) Set(ctx context.Context, collection, id string, fields docstore.Document) error {
	return errors.New("store unavailable")
}

func (f *failingStore) Merge(ctx context.Context, collection, id string, fields docstore.Document) error {
	return errors.New("store unavailable")
}

func (f *failingStore) List(ctx context.Context, collection string) ([]docstore.Entry, error) {
	return nil, errors.New("store unavailable")
}

func TestResolveRole(t *testing.T) {
	ctx := context.Background()

	t.Run("ResolvesStoredRole", func(t *testing.T) {
		store := docstore.NewInMemoryStore()
		id := uuid.New().String()
		require.NoError(t, store.Set(ctx, UserCollection, id, docstore.Document{"role": "manager"}))

		resolver := NewResolver(store)
		assert.Equal(t, RoleManager, resolver.ResolveRole(ctx, id))
	})

	t.Run("MissingRecordDefaultsToEmployee", func(t *testing.T) {
		resolver := NewResolver(docstore.NewInMemoryStore())
		assert.Equal(t, RoleEmployee, resolver.ResolveRole(ctx, uuid.New().String()))
	})

	t.Run("StoreErrorDefaultsToEmployee", func(t *testing.T) {
		resolver := NewResolver(&failingStore{})
		assert.Equal(t, RoleEmployee, resolver.ResolveRole(ctx, uuid.New().String()))
	})

	t.Run("InvalidStoredTagDefaultsToEmployee", func(t *testing.T) {
		store := docstore.NewInMemoryStore()
		id := uuid.New().String()
		require.NoError(t, store.Set(ctx, UserCollection, id, docstore.Document{"role": "superuser"}))

		resolver := NewResolver(store)
		assert.Equal(t, RoleEmployee, resolver.ResolveRole(ctx, id))
	})

	t.Run("MissingRoleFieldDefaultsToEmployee", func(t *testing.T) {
		store := docstore.NewInMemoryStore()
		id := uuid.New().String()
		require.NoError(t, store.Set(ctx, UserCollection, id, docstore.Document{"email": "x@example.com"}))

		resolver := NewResolver(store)
		assert.Equal(t, RoleEmployee, resolver.ResolveRole(ctx, id))
	})
}
