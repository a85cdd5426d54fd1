package plugin

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// Config controls the behaviour of the plugin hub and the plugin data stores.
type Config struct {
	// DataDirectory is the root directory that per-plugin data stores are
	// created under. If empty, 'plugin_data' is used.
	DataDirectory string `toml:"data_directory"`
	// Disabled lists plugins whose handlers should not be attached. Names
	// are matched exactly against the name a plugin attaches with.
	Disabled []string `toml:"disabled"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{DataDirectory: "plugin_data"}
}

// LoadConfig reads a Config from the TOML file at the path passed. If the
// file does not exist, the default configuration is written to it and
// returned.
func LoadConfig(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := cfg.Save(path); err != nil {
				return Config{}, err
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read plugin config: %w", err)
	}
	cfg := DefaultConfig()
	if len(contents) != 0 {
		if err := toml.Unmarshal(contents, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode plugin config: %w", err)
		}
	}
	if cfg.DataDirectory == "" {
		cfg.DataDirectory = DefaultConfig().DataDirectory
	}
	return cfg, nil
}

// Save writes the configuration to the TOML file at the path passed, creating
// parent directories as needed.
func (c Config) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create plugin config directory: %w", err)
		}
	}
	encoded, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode plugin config: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("write plugin config: %w", err)
	}
	return nil
}

// pluginDataDirectory returns the directory the named plugin's data store
// lives in.
func (c Config) pluginDataDirectory(plugin string) string {
	root := c.DataDirectory
	if root == "" {
		root = DefaultConfig().DataDirectory
	}
	return filepath.Join(root, sanitizePluginDirectory(plugin))
}
