package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-env-keeper/models"
)

// fileSessionStore keeps the session as a 0600 JSON file. An in-memory path
// keeps it in the process only.
type fileSessionStore struct {
	path string

	mu      sync.Mutex
	session *models.Session
}

// NewFileSessionStore returns a [SessionStore] backed by path.
func NewFileSessionStore(path string) SessionStore {
	return &fileSessionStore{path: path}
}

func (f *fileSessionStore) inMemory() bool {
	return isInMemoryDSN(f.path)
}

func (f *fileSessionStore) Load(_ context.Context) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.inMemory() {
		if f.session == nil {
			return models.Session{}, ErrSessionNotFound
		}
		return *f.session, nil
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("read session file: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil {
		return models.Session{}, fmt.Errorf("decode session file: %w", err)
	}
	return session, nil
}

func (f *fileSessionStore) Save(_ context.Context, session models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.inMemory() {
		f.session = &session
		return nil
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err = os.WriteFile(f.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear is idempotent.
func (f *fileSessionStore) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.session = nil
	if f.inMemory() {
		return nil
	}

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
