// Package whitelist keeps a TOML-persisted list of player names allowed to
// join and guards login events against it.
package whitelist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml"
)

var (
	// ErrUnavailable is returned when the whitelist is not configured.
	ErrUnavailable = errors.New("whitelist is not configured")
	// ErrInvalidName is returned when an invalid player name is provided to
	// a whitelist operation.
	ErrInvalidName = errors.New("invalid player name")
)

// Whitelist controls which players are allowed to join the server. Entries
// are persisted in a TOML file.
type Whitelist struct {
	mu       sync.RWMutex
	players  map[string]string
	filePath string
	enabled  bool
}

type whitelistFile struct {
	Players []string `toml:"players"`
}

// Load loads the whitelist stored in the file at the provided path. If the
// file does not exist yet, it will be created with an empty player list.
func Load(path string) (*Whitelist, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("whitelist path must not be empty")
	}
	w := &Whitelist{
		players:  make(map[string]string),
		filePath: path,
	}
	if err := w.reloadFromDisk(); err != nil {
		return nil, err
	}
	return w, nil
}

// Enabled reports if the whitelist is currently enforced.
func (w *Whitelist) Enabled() bool {
	if w == nil {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.enabled
}

// SetEnabled updates whether the whitelist is enforced.
func (w *Whitelist) SetEnabled(enabled bool) {
	if w == nil {
		return
	}
	w.mu.Lock()
	w.enabled = enabled
	w.mu.Unlock()
}

// Allowed reports whether the name passed may join. Every name is allowed
// while the whitelist is not enforced.
func (w *Whitelist) Allowed(name string) bool {
	if w == nil {
		return true
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.enabled {
		return true
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}
	_, ok := w.players[normalizeName(trimmed)]
	return ok
}

// Add inserts the provided name into the whitelist. The returned bool
// indicates if the name was newly added.
func (w *Whitelist) Add(name string) (bool, error) {
	if w == nil {
		return false, ErrUnavailable
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false, ErrInvalidName
	}
	key := normalizeName(trimmed)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.players[key]; exists {
		return false, nil
	}
	w.players[key] = trimmed
	if err := w.writeLocked(); err != nil {
		delete(w.players, key)
		return false, err
	}
	return true, nil
}

// Remove deletes the provided name from the whitelist. The returned bool
// indicates if the name was present before the call.
func (w *Whitelist) Remove(name string) (bool, error) {
	if w == nil {
		return false, ErrUnavailable
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false, ErrInvalidName
	}
	key := normalizeName(trimmed)

	w.mu.Lock()
	defer w.mu.Unlock()

	original, exists := w.players[key]
	if !exists {
		return false, nil
	}
	delete(w.players, key)
	if err := w.writeLocked(); err != nil {
		w.players[key] = original
		return false, err
	}
	return true, nil
}

// Players returns the list of players stored in the whitelist in a
// case-insensitive sorted order.
func (w *Whitelist) Players() []string {
	if w == nil {
		return nil
	}
	w.mu.RLock()
	defer w.mu.RUnlock()

	names := make([]string, 0, len(w.players))
	for _, name := range w.players {
		names = append(names, name)
	}
	sortNames(names)
	return names
}

// Reload re-reads the whitelist file from disk, discarding in-memory entries.
func (w *Whitelist) Reload() error {
	if w == nil {
		return ErrUnavailable
	}
	return w.reloadFromDisk()
}

func (w *Whitelist) reloadFromDisk() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloadLocked()
}

func (w *Whitelist) reloadLocked() error {
	data := whitelistFile{}
	contents, err := os.ReadFile(w.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.players = make(map[string]string)
			return w.writeLocked()
		}
		return fmt.Errorf("read whitelist: %w", err)
	}
	if len(contents) != 0 {
		if err := toml.Unmarshal(contents, &data); err != nil {
			return fmt.Errorf("decode whitelist: %w", err)
		}
	}
	w.players = make(map[string]string, len(data.Players))
	for _, name := range data.Players {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		w.players[normalizeName(trimmed)] = trimmed
	}
	return nil
}

func (w *Whitelist) writeLocked() error {
	dir := filepath.Dir(w.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create whitelist directory: %w", err)
		}
	}
	data := whitelistFile{Players: w.sortedPlayersLocked()}
	encoded, err := toml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode whitelist: %w", err)
	}
	if err := os.WriteFile(w.filePath, encoded, 0o644); err != nil {
		return fmt.Errorf("write whitelist: %w", err)
	}
	return nil
}

func (w *Whitelist) sortedPlayersLocked() []string {
	names := make([]string, 0, len(w.players))
	for _, name := range w.players {
		names = append(names, name)
	}
	sortNames(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func sortNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
}
