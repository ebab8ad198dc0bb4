package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates active user with hashed password", func(t *testing.T) {
		user, err := NewUser("cook@example.com", "Cook", "secret-pass-1")
		require.NoError(t, err)

		assert.Equal(t, "cook@example.com", user.Email)
		assert.Equal(t, "Cook", user.Name)
		assert.True(t, user.Active)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "secret-pass-1", user.PasswordHash)
		assert.NotEqual(t, user.ID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("normalizes email to lowercase", func(t *testing.T) {
		user, err := NewUser("  Cook@Example.COM ", "Cook", "secret-pass-1")
		require.NoError(t, err)
		assert.Equal(t, "cook@example.com", user.Email)
	})

	t.Run("trims name", func(t *testing.T) {
		user, err := NewUser("cook@example.com", "  Cook  ", "secret-pass-1")
		require.NoError(t, err)
		assert.Equal(t, "Cook", user.Name)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		_, err := NewUser("", "Cook", "secret-pass-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Email is required")
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "Cook", "secret-pass-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Email format is invalid")
	})

	t.Run("rejects overlong email", func(t *testing.T) {
		long := strings.Repeat("a", 250) + "@example.com"
		_, err := NewUser(long, "Cook", "secret-pass-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "255")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewUser("cook@example.com", "   ", "secret-pass-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Name is required")
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("cook@example.com", "Cook", "short")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("records registration event", func(t *testing.T) {
		user, err := NewUser("cook@example.com", "Cook", "secret-pass-1")
		require.NoError(t, err)

		events := user.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeUserRegistered, events[0].EventType())
	})
}

func TestUser_VerifyPassword(t *testing.T) {
	user, err := NewUser("cook@example.com", "Cook", "secret-pass-1")
	require.NoError(t, err)

	t.Run("accepts correct password", func(t *testing.T) {
		assert.True(t, user.VerifyPassword("secret-pass-1"))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		assert.False(t, user.VerifyPassword("wrong-pass"))
	})
}

func TestUser_ChangePassword(t *testing.T) {
	t.Run("changes password when old password matches", func(t *testing.T) {
		user, err := NewUser("cook@example.com", "Cook", "secret-pass-1")
		require.NoError(t, err)

		err = user.ChangePassword("secret-pass-1", "new-secret-2")
		require.NoError(t, err)

		assert.True(t, user.VerifyPassword("new-secret-2"))
		assert.False(t, user.VerifyPassword("secret-pass-1"))
		assert.NotNil(t, user.PasswordChangedAt)
	})

	t.Run("rejects wrong old password", func(t *testing.T) {
		user, err := NewUser("cook@example.com", "Cook", "secret-pass-1")
		require.NoError(t, err)

		err = user.ChangePassword("wrong-pass", "new-secret-2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Current password is incorrect")
		assert.True(t, user.VerifyPassword("secret-pass-1"))
	})

	t.Run("rejects short new password", func(t *testing.T) {
		user, err := NewUser("cook@example.com", "Cook", "secret-pass-1")
		require.NoError(t, err)

		err = user.ChangePassword("secret-pass-1", "short")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})
}

func TestUser_SetName(t *testing.T) {
	user, err := NewUser("cook@example.com", "Cook", "secret-pass-1")
	require.NoError(t, err)

	t.Run("updates name", func(t *testing.T) {
		require.NoError(t, user.SetName("Chef"))
		assert.Equal(t, "Chef", user.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		err := user.SetName("")
		require.Error(t, err)
	})
}

func TestUser_Deactivate(t *testing.T) {
	user, err := NewUser("cook@example.com", "Cook", "secret-pass-1")
	require.NoError(t, err)

	require.NoError(t, user.Deactivate())
	assert.False(t, user.Active)
	assert.False(t, user.CanAuthenticate())

	err = user.Deactivate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already deactivated")
}
