package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	t.Run("hash and compare round trip", func(t *testing.T) {
		t.Parallel()

		hash, err := hasher.Hash("correct horse battery staple")
		require.NoError(t, err)
		require.NotEmpty(t, hash)

		assert.NoError(t, hasher.Compare(hash, "correct horse battery staple"))
	})

	t.Run("compare rejects wrong password", func(t *testing.T) {
		t.Parallel()

		hash, err := hasher.Hash("correct horse battery staple")
		require.NoError(t, err)

		assert.Error(t, hasher.Compare(hash, "incorrect horse battery staple"))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		t.Parallel()

		first, err := hasher.Hash("same password")
		require.NoError(t, err)
		second, err := hasher.Hash("same password")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("uses the configured cost", func(t *testing.T) {
		t.Parallel()

		hash, err := hasher.Hash("whatever")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcryptCost, cost)
	})
}
