package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Session is the durable identity fragment: enough to restore the
// display name and authenticate subsequent requests after a restart.
type Session struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// SessionFile persists a Session as JSON at a fixed path.
type SessionFile struct {
	path string
}

// NewSessionFile creates a SessionFile at the given path.
func NewSessionFile(path string) *SessionFile {
	return &SessionFile{path: path}
}

// DefaultSessionPath returns the per-user session location under the
// OS config directory.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(dir, "applytrack", "session.json"), nil
}

// Load reads the persisted session. Returns (nil, nil) when no
// session exists.
func (f *SessionFile) Load() (*Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &session, nil
}

// Save writes the session, creating parent directories as needed.
// The file is user-only since it contains a bearer token.
func (f *SessionFile) Save(session *Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Removing a session that does
// not exist is not an error.
func (f *SessionFile) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}
