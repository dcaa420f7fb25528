package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Session holds the client-side authentication state: the current token
// pair and the public profile of the logged-in user. The server keeps no
// session record; this is the only place the tokens live.
type Session struct {
	AccessToken  string    `json:"accessToken,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	User         *UserInfo `json:"user,omitempty"`
}

// UserInfo is the public profile stored alongside the tokens.
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoggedIn reports whether the session carries an access token. It says
// nothing about whether that token is still valid server-side.
func (s Session) LoggedIn() bool {
	return s.AccessToken != ""
}

// SessionStore keeps in-memory session state synchronized with a persisted
// copy so the session survives process restarts.
//
// Consumers must check the hydrated flag returned by Session: until Load has
// run, the state is unknown, not "logged out".
type SessionStore interface {
	// Session returns the current session and whether the store has been
	// hydrated from persistent storage.
	Session() (Session, bool)

	// Set replaces the session, updating both in-memory and persisted
	// state.
	Set(session Session) error

	// Clear discards the session from memory and persistent storage.
	Clear() error
}

// FileSessionStore implements SessionStore backed by a JSON file, the CLI
// counterpart of the browser's localStorage.
type FileSessionStore struct {
	mu       sync.Mutex
	path     string
	session  Session
	hydrated bool
}

// Ensure FileSessionStore implements SessionStore interface
var _ SessionStore = (*FileSessionStore)(nil)

// NewFileSessionStore creates a session store persisting to the given path.
// The store starts unhydrated; call Load before reading the session.
func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

// DefaultSessionPath returns the conventional session file location under
// the user's config directory.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, "taskdeck", "session.json"), nil
}

// Load hydrates the in-memory session from the persisted file. A missing
// file is not an error; it hydrates to an empty (logged-out) session.
func (s *FileSessionStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.session = Session{}
			s.hydrated = true
			return nil
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return fmt.Errorf("failed to parse session file: %w", err)
	}

	s.session = session
	s.hydrated = true
	return nil
}

// Session implements SessionStore.Session.
func (s *FileSessionStore) Session() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, s.hydrated
}

// Set implements SessionStore.Set. The file is written before the in-memory
// state changes, so the two can only diverge toward the stale side.
func (s *FileSessionStore) Set(session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	// Tokens grant full account access; keep the file private.
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	s.session = session
	s.hydrated = true
	return nil
}

// Clear implements SessionStore.Clear.
func (s *FileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	s.session = Session{}
	s.hydrated = true
	return nil
}
