package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingRepository rejects every append
type failingRepository struct{}

func (f *failingRepository) Append(ctx context.Context, entry Entry) error {
	return errors.New("audit store unavailable")
}

func (f *failingRepository) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return nil, errors.New("audit store unavailable")
}

func TestLogger_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("AppendsEntry", func(t *testing.T) {
		repo := NewInMemoryRepository()
		logger := NewLogger(repo)

		actor := Actor{ID: uuid.New(), Email: "admin@example.com"}
		logger.Record(ctx, ActionUserCreated, actor, map[string]interface{}{"email": "new@example.com"})

		require.Equal(t, 1, repo.Count())
		entries, err := repo.Recent(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, ActionUserCreated, entries[0].Action)
		assert.Equal(t, "admin@example.com", entries[0].ActorEmail)
		assert.Equal(t, actor.ID, entries[0].ActorID)
		assert.Equal(t, "new@example.com", entries[0].Details["email"])
		assert.NotEqual(t, uuid.Nil, entries[0].ID)
		assert.False(t, entries[0].Timestamp.IsZero())
	})

	t.Run("EmptyActorEmailFallsBackToSystem", func(t *testing.T) {
		repo := NewInMemoryRepository()
		logger := NewLogger(repo)

		logger.Record(ctx, ActionUserUpdated, Actor{}, nil)

		entries, err := repo.Recent(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, SystemActor.Email, entries[0].ActorEmail)
		assert.Equal(t, uuid.Nil, entries[0].ActorID)
	})

	t.Run("AppendFailureIsSwallowed", func(t *testing.T) {
		logger := NewLogger(&failingRepository{})

		// Must not panic or surface the failure
		logger.Record(ctx, ActionUserDeactivated, SystemActor, nil)
	})
}

func TestInMemoryRepository_Recent(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	logger := NewLogger(repo)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		logger.now = func() time.Time { return ts }
		logger.Record(ctx, ActionUserUpdated, SystemActor, map[string]interface{}{"n": i})
	}

	t.Run("NewestFirst", func(t *testing.T) {
		entries, err := repo.Recent(ctx, 3)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, 4, entries[0].Details["n"])
		assert.Equal(t, 3, entries[1].Details["n"])
		assert.Equal(t, 2, entries[2].Details["n"])
	})

	t.Run("LimitLargerThanLog", func(t *testing.T) {
		entries, err := repo.Recent(ctx, 100)
		require.NoError(t, err)
		assert.Len(t, entries, 5)
	})
}

func TestFileRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	tempDir := t.TempDir()

	repo, err := NewFileRepository(tempDir)
	require.NoError(t, err)

	entry := Entry{
		ID:         uuid.New(),
		ActorEmail: "admin@example.com",
		Action:     ActionUserCreated,
		Details:    map[string]interface{}{"email": "new@example.com"},
		Timestamp:  time.Now().UTC(),
	}
	require.NoError(t, repo.Append(ctx, entry))

	reopened, err := NewFileRepository(tempDir)
	require.NoError(t, err)

	entries, err := reopened.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.Equal(t, ActionUserCreated, entries[0].Action)
}
