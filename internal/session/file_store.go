package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/danmu-client/internal/logger"
	"github.com/MKhiriev/danmu-client/internal/utils"
	"github.com/MKhiriev/danmu-client/models"
)

// MemoryPath makes [NewFileStore] keep the session in memory only.
const MemoryPath = ":memory:"

// FileStore is a session store persisted as a single JSON file.
type FileStore struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	session models.Session

	now    func() time.Time
	logger *logger.Logger
}

// NewFileStore opens the session file at path, loading a previously saved
// session if there is one. A missing file means nobody is logged in.
func NewFileStore(path string, log *logger.Logger) (*FileStore, error) {
	if path == "" {
		path = MemoryPath
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &FileStore{
		path:     path,
		inMemory: path == MemoryPath,
		now:      time.Now,
		logger:   log,
	}
	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}

	var stored models.Session
	if err = json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}
	s.session = stored

	return nil
}

func (s *FileStore) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// Path returns the session file location, or [MemoryPath].
func (s *FileStore) Path() string {
	return s.path
}

// Token returns the current bearer token, or "" when logged out.
func (s *FileStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.Token
}

// Session returns a copy of the current session.
func (s *FileStore) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

// SetToken stores token and writes it to disk. Surrounding whitespace and a
// leading "Bearer " scheme, as copied from a browser, are stripped.
func (s *FileStore) SetToken(token string) error {
	token = strings.TrimSpace(token)
	if parsed, err := utils.ParseBearerToken(token); err == nil {
		token = parsed
	}
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.session
	s.session = models.Session{Token: token, SavedAt: s.now().UTC()}
	if err := s.persist(); err != nil {
		s.session = previous
		return err
	}

	s.logger.Info().Str("path", s.path).Msg("session saved")
	return nil
}

// Logout forgets the token and removes the session file. It returns once the
// file is gone; a file that never existed is not an error.
func (s *FileStore) Logout(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = models.Session{}
	if !s.inMemory {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove session file: %w", err)
		}
	}

	s.logger.Info().Str("path", s.path).Msg("session cleared")
	return nil
}

// Claims decodes the stored token's JWT claims without verifying them.
func (s *FileStore) Claims() (models.Claims, error) {
	token := s.Token()
	if token == "" {
		return models.Claims{}, ErrNoSession
	}

	return utils.ParseClaimsUnverified(token)
}
