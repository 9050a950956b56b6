package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-org/pkg/notification"
)

func TestLocalProvider_CreateIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		p := NewLocalProvider()
		ident, err := p.CreateIdentity(ctx, "User@Example.com", "password123")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, ident.ID)
		assert.Equal(t, "user@example.com", ident.Email)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		p := NewLocalProvider()
		for _, email := range []string{"", "no-at-sign", "@example.com", "user@"} {
			_, err := p.CreateIdentity(ctx, email, "password123")
			assert.Equal(t, CodeInvalidEmail, CodeOf(err), "email %q", email)
		}
	})

	t.Run("WeakPassword", func(t *testing.T) {
		p := NewLocalProvider()
		_, err := p.CreateIdentity(ctx, "user@example.com", "short")
		assert.Equal(t, CodeWeakPassword, CodeOf(err))
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		p := NewLocalProvider()
		_, err := p.CreateIdentity(ctx, "user@example.com", "password123")
		require.NoError(t, err)

		_, err = p.CreateIdentity(ctx, "USER@example.com", "password456")
		assert.Equal(t, CodeEmailAlreadyInUse, CodeOf(err))
	})
}

func TestLocalProvider_VerifyCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		p := NewLocalProvider()
		created, err := p.CreateIdentity(ctx, "user@example.com", "password123")
		require.NoError(t, err)

		ident, err := p.VerifyCredentials(ctx, "user@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, created.ID, ident.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		p := NewLocalProvider()
		_, err := p.CreateIdentity(ctx, "user@example.com", "password123")
		require.NoError(t, err)

		_, err = p.VerifyCredentials(ctx, "user@example.com", "wrong-password")
		assert.Equal(t, CodeWrongPassword, CodeOf(err))
	})

	t.Run("UnknownUser", func(t *testing.T) {
		p := NewLocalProvider()
		_, err := p.VerifyCredentials(ctx, "nobody@example.com", "password123")
		assert.Equal(t, CodeUserNotFound, CodeOf(err))
	})

	t.Run("DisabledAccount", func(t *testing.T) {
		p := NewLocalProvider()
		_, err := p.CreateIdentity(ctx, "user@example.com", "password123")
		require.NoError(t, err)
		require.NoError(t, p.SetDisabled("user@example.com", true))

		_, err = p.VerifyCredentials(ctx, "user@example.com", "password123")
		assert.Equal(t, CodeUserDisabled, CodeOf(err))
	})

	t.Run("LockoutAfterRepeatedFailures", func(t *testing.T) {
		p := NewLocalProvider()
		_, err := p.CreateIdentity(ctx, "user@example.com", "password123")
		require.NoError(t, err)

		for i := 0; i < maxFailedAttempts; i++ {
			_, err = p.VerifyCredentials(ctx, "user@example.com", "wrong-password")
			assert.Equal(t, CodeWrongPassword, CodeOf(err))
		}

		// Even the correct password is rejected while locked
		_, err = p.VerifyCredentials(ctx, "user@example.com", "password123")
		assert.Equal(t, CodeTooManyRequests, CodeOf(err))
	})

	t.Run("SuccessNotifiesSubscribers", func(t *testing.T) {
		p := NewLocalProvider()
		_, err := p.CreateIdentity(ctx, "user@example.com", "password123")
		require.NoError(t, err)

		var got *Identity
		unsubscribe := p.SubscribeIdentityChanges(func(ident *Identity) {
			got = ident
		})
		defer unsubscribe()

		_, err = p.VerifyCredentials(ctx, "user@example.com", "password123")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "user@example.com", got.Email)
	})
}

func TestLocalProvider_SignOut(t *testing.T) {
	p := NewLocalProvider()

	notified := false
	var got *Identity
	unsubscribe := p.SubscribeIdentityChanges(func(ident *Identity) {
		notified = true
		got = ident
	})
	defer unsubscribe()

	require.NoError(t, p.SignOut(context.Background()))
	assert.True(t, notified)
	assert.Nil(t, got)
}

func TestLocalProvider_PasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("SendsResetEmail", func(t *testing.T) {
		nm := notification.NewNotificationManager("http://localhost:4000")
		mock := notification.NewMockNotifier()
		nm.RegisterNotifier(notification.EmailSystem, mock)
		require.NoError(t, nm.RegisterNotification(notification.PasswordResetNotice, notification.EmailSystem, notification.NoticeTemplate{
			Subject: "Reset your password",
			Text:    "Reset link: {{.Link}}",
		}))

		p := NewLocalProvider(WithNotificationManager(nm))
		_, err := p.CreateIdentity(ctx, "user@example.com", "password123")
		require.NoError(t, err)

		require.NoError(t, p.SendPasswordReset(ctx, "user@example.com"))
		require.Len(t, mock.SentNotifications, 1)
		assert.Equal(t, "user@example.com", mock.SentNotifications[0].To)
		assert.Contains(t, mock.SentNotifications[0].Data["Link"], "http://localhost:4000/password-reset/")
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		p := NewLocalProvider()
		err := p.SendPasswordReset(ctx, "nobody@example.com")
		assert.Equal(t, CodeUserNotFound, CodeOf(err))
	})

	t.Run("ResetWithToken", func(t *testing.T) {
		p := NewLocalProvider()
		_, err := p.CreateIdentity(ctx, "user@example.com", "password123")
		require.NoError(t, err)
		require.NoError(t, p.SendPasswordReset(ctx, "user@example.com"))

		// Grab the issued token directly
		p.mu.RLock()
		var token string
		for tok := range p.resetTokens {
			token = tok
		}
		p.mu.RUnlock()
		require.NotEmpty(t, token)

		require.NoError(t, p.ResetPassword(ctx, token, "new-password-1"))

		_, err = p.VerifyCredentials(ctx, "user@example.com", "password123")
		assert.Equal(t, CodeWrongPassword, CodeOf(err))
		_, err = p.VerifyCredentials(ctx, "user@example.com", "new-password-1")
		assert.NoError(t, err)

		// Token is single-use
		err = p.ResetPassword(ctx, token, "another-password")
		assert.Equal(t, CodeInvalidCredential, CodeOf(err))
	})
}
