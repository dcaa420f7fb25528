package client

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() Session {
	return Session{
		AccessToken:  "access-token-value",
		RefreshToken: "refresh-token-value",
		User: &UserInfo{
			ID:    "6f1a2b3c-0000-0000-0000-000000000001",
			Email: "alice@example.com",
			Name:  "Alice",
		},
	}
}

func TestFileSessionStoreStartsUnhydrated(t *testing.T) {
	t.Parallel()

	store := NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"))

	_, hydrated := store.Session()
	assert.False(t, hydrated)
}

func TestFileSessionStoreLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file hydrates to logged out", func(t *testing.T) {
		t.Parallel()

		store := NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"))
		require.NoError(t, store.Load())

		session, hydrated := store.Session()
		assert.True(t, hydrated)
		assert.False(t, session.LoggedIn())
	})

	t.Run("reads a previously persisted session", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "session.json")
		writer := NewFileSessionStore(path)
		require.NoError(t, writer.Set(testSession()))

		reader := NewFileSessionStore(path)
		require.NoError(t, reader.Load())

		session, hydrated := reader.Session()
		assert.True(t, hydrated)
		assert.True(t, session.LoggedIn())
		assert.Equal(t, "access-token-value", session.AccessToken)
		assert.Equal(t, "refresh-token-value", session.RefreshToken)
		require.NotNil(t, session.User)
		assert.Equal(t, "alice@example.com", session.User.Email)
	})

	t.Run("corrupt file is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		store := NewFileSessionStore(path)
		assert.Error(t, store.Load())
	})
}

func TestFileSessionStoreSet(t *testing.T) {
	t.Parallel()

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "deeper", "session.json")
		store := NewFileSessionStore(path)
		require.NoError(t, store.Set(testSession()))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("session file is private", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" {
			t.Skip("file modes are not meaningful on windows")
		}

		path := filepath.Join(t.TempDir(), "session.json")
		store := NewFileSessionStore(path)
		require.NoError(t, store.Set(testSession()))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("hydrates the store", func(t *testing.T) {
		t.Parallel()

		store := NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"))
		require.NoError(t, store.Set(testSession()))

		session, hydrated := store.Session()
		assert.True(t, hydrated)
		assert.True(t, session.LoggedIn())
	})
}

func TestFileSessionStoreClear(t *testing.T) {
	t.Parallel()

	t.Run("removes the file and forgets the session", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "session.json")
		store := NewFileSessionStore(path)
		require.NoError(t, store.Set(testSession()))
		require.NoError(t, store.Clear())

		session, hydrated := store.Session()
		assert.True(t, hydrated)
		assert.False(t, session.LoggedIn())

		_, err := os.Stat(path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("clearing a missing file succeeds", func(t *testing.T) {
		t.Parallel()

		store := NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"))
		assert.NoError(t, store.Clear())
	})
}

func TestSessionLoggedIn(t *testing.T) {
	t.Parallel()

	assert.False(t, Session{}.LoggedIn())
	assert.True(t, Session{AccessToken: "x"}.LoggedIn())
}
