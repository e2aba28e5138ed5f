package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"giftfinder/internal/models/response_models"
)

// sessionRecord is the persisted token/user pair. It is written and removed
// as one unit so the two values can never get out of step.
type sessionRecord struct {
	Token string                      `json:"token"`
	User  response_models.SessionUser `json:"user"`
}

// SessionRepository persists the session pair across restarts. It is the
// local-storage analog: a small JSON file under a fixed path.
type SessionRepository interface {
	Save(token string, user response_models.SessionUser) error
	Load() (token string, user response_models.SessionUser, ok bool, err error)
	Clear() error
}

type FileSessionRepository struct {
	path string
	mu   sync.Mutex
}

func NewSessionRepository(path string) (*FileSessionRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to ensure session dir: %w", err)
	}
	return &FileSessionRepository{path: path}, nil
}

func (r *FileSessionRepository) Save(token string, user response_models.SessionUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	payload, err := json.Marshal(sessionRecord{Token: token, User: user})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	// Write to a sibling temp file and rename so a crash mid-write cannot
	// leave a half-persisted pair behind.
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

func (r *FileSessionRepository) Load() (string, response_models.SessionUser, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", response_models.SessionUser{}, false, nil
	}
	if err != nil {
		return "", response_models.SessionUser{}, false, fmt.Errorf("read session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", response_models.SessionUser{}, false, fmt.Errorf("decode session: %w", err)
	}
	if rec.Token == "" {
		return "", response_models.SessionUser{}, false, nil
	}
	return rec.Token, rec.User, true, nil
}

func (r *FileSessionRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := os.Remove(r.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
