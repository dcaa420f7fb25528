package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("creates user with generated ID", func(t *testing.T) {
		t.Parallel()

		user, err := NewUser("alice@example.com", "Alice")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "Alice", user.Name)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("rejects empty email", func(t *testing.T) {
		t.Parallel()

		_, err := NewUser("", "Alice")
		assert.ErrorIs(t, err, ErrEmptyEmail)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		t.Parallel()

		_, err := NewUser("alice@example.com", "   ")
		assert.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestValidateEmailFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		valid bool
	}{
		{"alice@example.com", true},
		{"a@b.co", true},
		{"first.last@sub.example.org", true},
		{"no-at-sign", false},
		{"@example.com", false},
		{"alice@", false},
		{"alice@nodot", false},
		{"alice@.com", false},
		{"alice@example.", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.email, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.valid, validateEmailFormat(tc.email))
		})
	}
}

func TestUserJSONHidesPassword(t *testing.T) {
	t.Parallel()

	user, err := NewUser("alice@example.com", "Alice")
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$abcdefghijklmnopqrstuv"

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "$2a$10$")
	assert.NotContains(t, string(data), "password")
}
