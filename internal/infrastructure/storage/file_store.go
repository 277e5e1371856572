package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// FileStore keeps durable records as <dataDir>/<key>.json files and session
// records in memory. The mutex covers both scopes: the image-encode worker
// resolves its result from outside the interaction loop.
type FileStore struct {
	dataDir string
	mu      sync.Mutex
	session map[string]json.RawMessage
}

func GetStoreInstance(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &FileStore{
		dataDir: dataDir,
		session: make(map[string]json.RawMessage),
	}, nil
}

func (s *FileStore) ReadDurable(key string, out interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.recordPath(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Error().Err(err).Str("component", "ReadDurable").Str("key", key).Msg("")
		}
		return false
	}

	return decodeRecord(key, raw, out)
}

func (s *FileStore) WriteDurable(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize record %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.recordPath(key), raw, 0o644); err != nil {
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}

	return nil
}

func (s *FileStore) DeleteDurable(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.recordPath(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete record %q: %w", key, err)
	}

	return nil
}

func (s *FileStore) ReadSession(key string, out interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.session[key]
	if !ok {
		return false
	}

	return decodeRecord(key, raw, out)
}

func (s *FileStore) WriteSession(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize record %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session[key] = raw

	return nil
}

func (s *FileStore) DeleteSession(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.session, key)
}

func (s *FileStore) recordPath(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}

// decodeRecord absorbs corruption: a record that no longer parses behaves like
// an absent one, so the caller falls back to its default value.
func decodeRecord(key string, raw []byte, out interface{}) bool {
	if err := json.Unmarshal(raw, out); err != nil {
		log.Error().Err(err).Str("component", "decodeRecord").Str("key", key).Msg("discarding malformed record")
		return false
	}

	return true
}
