package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// sessionStore persists the authenticated user as a JSON file on the
// device so the session survives restarts.
type sessionStore struct {
	path string
}

func newSessionStore(path string) *sessionStore {
	return &sessionStore{path: path}
}

// Load reads the persisted session. A missing, unreadable or malformed
// file means no session; it never returns an error the caller has to
// treat as fatal.
func (s *sessionStore) Load() *User {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil
	}
	if !u.Valid() {
		return nil
	}

	return &u
}

func (s *sessionStore) Save(u *User) error {
	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	return nil
}

// Clear removes the session file. Clearing an absent session is not an
// error.
func (s *sessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}

	return nil
}
