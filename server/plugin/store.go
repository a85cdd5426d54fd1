package plugin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/df-mc/goleveldb/leveldb"
)

// ErrStoreClosed is returned by Store operations after Close was called.
var ErrStoreClosed = errors.New("plugin: store closed")

// Store is a key-value data store private to one plugin, persisted under the
// plugin's directory inside the configured data root. It is safe for use by
// multiple goroutines.
type Store struct {
	mu     sync.RWMutex
	db     *leveldb.DB
	closed bool
}

// OpenStore opens the data store of the named plugin, creating it if needed.
// The store lives in a sanitized directory derived from the plugin name under
// the data root of the configuration passed.
func OpenStore(cfg Config, plugin string) (*Store, error) {
	dir := cfg.pluginDataDirectory(plugin)
	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data root: %w", err)
	}
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("open plugin store: %w", err)
	}
	return &Store{db: db}, nil
}

// Put stores a value under the key passed, replacing any earlier value.
func (s *Store) Put(key string, value []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	if err := s.db.Put([]byte(key), value, nil); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

// Get returns the value stored under the key passed. The second return value
// is false if the key is not present.
func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, false, ErrStoreClosed
	}
	value, err := s.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Delete removes the value stored under the key passed. Deleting a key that
// is not present is not an error.
func (s *Store) Delete(key string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	if err := s.db.Delete([]byte(key), nil); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Close flushes and closes the store. Operations after Close return
// ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// sanitizePluginDirectory turns a plugin display name into a directory name
// that is safe on every supported filesystem.
func sanitizePluginDirectory(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "plugin"
	}
	lower := strings.ToLower(trimmed)
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '-'
		}
	}, lower)
	sanitized = strings.Trim(sanitized, "-_.")
	if sanitized == "" {
		return "plugin"
	}
	return sanitized
}
