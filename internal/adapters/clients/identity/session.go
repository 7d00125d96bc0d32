package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
)

const (
	sessionDirPerm  = 0o700
	sessionFilePerm = 0o600
)

// Session is the persisted result of a completed sign-in.
type Session struct {
	Token      *oauth2.Token `json:"token"`
	IDToken    string        `json:"id_token,omitempty"`
	ObtainedAt time.Time     `json:"obtained_at"`
}

// SessionStore keeps one Session as a JSON file readable only by the
// current user.
type SessionStore struct {
	path string
}

// NewSessionStore returns a store backed by path. An empty path selects
// DefaultSessionPath.
func NewSessionStore(path string) (*SessionStore, error) {
	if path == "" {
		p, err := DefaultSessionPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &SessionStore{path: path}, nil
}

// DefaultSessionPath returns session.json under the user's config directory.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "todoapp", "session.json"), nil
}

// Path returns the backing file path.
func (s *SessionStore) Path() string {
	return s.path
}

// Load reads the stored session. A missing, empty or unreadable session
// file yields domain.ErrNotSignedIn; signing in again overwrites it.
func (s *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotSignedIn
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decoding session %s: %w: %w", s.path, domain.ErrNotSignedIn, err)
	}
	if sess.Token == nil || sess.Token.AccessToken == "" {
		return nil, domain.ErrNotSignedIn
	}
	return &sess, nil
}

// Save replaces the stored session atomically.
func (s *SessionStore) Save(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), sessionDirPerm); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return fmt.Errorf("creating session file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := tmp.Chmod(sessionFilePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("restricting session file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing session: %w", err)
	}
	return nil
}

// Delete removes the stored session. Deleting an absent session is not an
// error.
func (s *SessionStore) Delete() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session: %w", err)
	}
	return nil
}
