// Package session holds the client-side record of who is currently logged in:
// a durable token store that survives restarts and an observable in-memory
// cell that guards, interceptors, and UI collaborators read.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/buildrun/unihub-client/domain"
)

// persistedSession is the composite blob written under the session key: the
// user fields plus the raw bearer token, so a later startup rebuilds both.
type persistedSession struct {
	domain.User
	AccessToken string `json:"accessToken"`
}

// Store persists the bearer token and the last-known user across restarts.
// Two keys back it: one for the bare token, one for the composite session
// blob. Both are written and cleared together.
type Store interface {
	// Save records the session. The two keys are updated in one operation.
	Save(ctx context.Context, user *domain.User, token string) error
	// Load reads the composite blob. (nil, "", nil) means no stored session.
	// The token key is rewritten from the blob so both keys agree afterwards.
	Load(ctx context.Context) (*domain.User, string, error)
	// Clear removes both keys. Clearing an absent session is a no-op.
	Clear(ctx context.Context) error
}

const (
	tokenFile   = "token"
	sessionFile = "session.json"
)

// FileStore keeps the session under a directory, one file per key. It is the
// localStorage analog for a headless client.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory when needed. An empty dir places the
// store under the OS user config dir.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		dir = filepath.Join(base, "unihub")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Save(_ context.Context, user *domain.User, token string) error {
	blob, err := json.Marshal(persistedSession{User: *user, AccessToken: token})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, sessionFile), blob, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *FileStore) Load(_ context.Context) (*domain.User, string, error) {
	blob, err := os.ReadFile(filepath.Join(s.dir, sessionFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("read session: %w", err)
	}

	var ps persistedSession
	if err := json.Unmarshal(blob, &ps); err != nil {
		return nil, "", fmt.Errorf("decode session: %w", err)
	}

	if ps.AccessToken != "" {
		// Keep the token key in step with the blob, as the original did on startup.
		if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(ps.AccessToken), 0o600); err != nil {
			return nil, "", fmt.Errorf("restore token: %w", err)
		}
	}

	user := ps.User
	return &user, ps.AccessToken, nil
}

func (s *FileStore) Clear(_ context.Context) error {
	for _, name := range []string{tokenFile, sessionFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	return nil
}
