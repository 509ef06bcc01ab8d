// Package file loads server configuration from a TOML file.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds everything the server needs to run.
type Config struct {
	// DataDir is the directory holding the recipe tree.
	DataDir string `toml:"data_dir"`
	// Storage selects the backend: "git" for versioned storage,
	// anything else for plain files.
	Storage string `toml:"storage"`
	// Listen is the HTTP listen address.
	Listen string `toml:"listen"`
	// Author is the commit author name for the versioned backend.
	Author string `toml:"author"`
	// Watch enables rebuilding the index on filesystem changes.
	Watch bool `toml:"watch"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	dataDir := "data"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".cookstore", "data")
	}
	return &Config{
		DataDir: dataDir,
		Storage: "plain",
		Listen:  "127.0.0.1:8080",
		Author:  "Recipe Store",
		Watch:   true,
	}
}

// Load reads the config at path on top of the defaults. An empty path
// means ~/.cookstore/config.toml, and a missing file just yields the
// defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(home, ".cookstore", "config.toml")
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
