// Package config loads the netfetch CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields the netfetch CLI reads from its config file.
type Config struct {
	// Backend is the selection policy: "auto" or an explicit backend name.
	Backend string

	// Auth is an optional "user:password" HTTP credential.
	Auth string

	// UserAgent overrides the client identification token when non-empty.
	UserAgent string

	// Verbose keeps backend diagnostics attached to stderr.
	Verbose bool
}

const (
	defaultConfigPath = "~/.config/netfetch/config.toml"
	defaultBackend    = "auto"
)

// Load locates and parses the config file, falling back to defaults
// when it is missing. An empty path means the default location.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Backend: defaultBackend}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Backend   string `toml:"backend"`
		Auth      string `toml:"auth"`
		UserAgent string `toml:"user_agent"`
		Verbose   bool   `toml:"verbose"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if b := strings.TrimSpace(raw.Backend); b != "" {
		cfg.Backend = b
	}
	cfg.Auth = strings.TrimSpace(raw.Auth)
	cfg.UserAgent = strings.TrimSpace(raw.UserAgent)
	cfg.Verbose = raw.Verbose

	return cfg, nil
}

// resolvePath expands the leading ~ in path, defaulting to the standard
// config location when path is empty.
func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
