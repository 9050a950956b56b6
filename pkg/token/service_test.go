package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-org/pkg/identity"
	"github.com/tendant/simple-org/pkg/role"
)

func TestService_AccessTokenRoundTrip(t *testing.T) {
	service := NewService("test-secret", "simple-org")
	ident := identity.Identity{ID: uuid.New(), Email: "admin@example.com"}

	value, err := service.GenerateAccessToken(ident, role.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, value.Token)
	assert.WithinDuration(t, time.Now().Add(DefaultAccessTokenExpiry), value.Expiry, 5*time.Second)

	claims, err := service.ParseAccessToken(value.Token)
	require.NoError(t, err)
	assert.Equal(t, ident.ID.String(), claims.Subject)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "simple-org", claims.Issuer)
}

func TestService_ParseAccessToken_Rejections(t *testing.T) {
	service := NewService("test-secret", "simple-org")
	ident := identity.Identity{ID: uuid.New(), Email: "user@example.com"}

	t.Run("WrongSecret", func(t *testing.T) {
		value, err := service.GenerateAccessToken(ident, role.RoleEmployee)
		require.NoError(t, err)

		other := NewService("different-secret", "simple-org")
		_, err = other.ParseAccessToken(value.Token)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := service.ParseAccessToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		short := NewService("test-secret", "simple-org", WithAccessTokenExpiry(-time.Minute))
		value, err := short.GenerateAccessToken(ident, role.RoleEmployee)
		require.NoError(t, err)

		_, err = service.ParseAccessToken(value.Token)
		assert.Error(t, err)
	})
}

func TestWithAccessTokenExpiry(t *testing.T) {
	service := NewService("test-secret", "simple-org", WithAccessTokenExpiry(time.Hour))
	assert.Equal(t, time.Hour, service.AccessTokenExpiry)
}
