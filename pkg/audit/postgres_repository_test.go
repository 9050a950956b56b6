package audit

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorIDOrNull(t *testing.T) {
	t.Run("SystemActionsWriteNull", func(t *testing.T) {
		assert.Nil(t, actorIDOrNull(SystemActor.ID))
		assert.Nil(t, actorIDOrNull(uuid.Nil))
	})

	t.Run("AuthenticatedActorKeepsID", func(t *testing.T) {
		id := uuid.New()
		got := actorIDOrNull(id)
		require.NotNil(t, got)
		assert.Equal(t, id, *got)
	})
}
