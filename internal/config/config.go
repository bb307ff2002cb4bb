// Package config loads the projtree configuration file.
//
// The file is HuJSON, so it may carry comments and trailing commas:
//
//	{
//	  // debug, info, warn or error
//	  "logLevel": "info",
//	  "recentLimit": 50,
//	  "pinned": ["/home/me/src/projtree"],
//	}
//
// A missing file is not an error; every field has a default.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/hayeah/projtree/internal/hujsonutil"
	"github.com/hayeah/projtree/internal/logging"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "PROJTREE_CONFIG"

// Config is the projtree configuration.
type Config struct {
	LogLevel    string   `json:"logLevel"`
	LogFormat   string   `json:"logFormat"`
	RecentDB    string   `json:"recentDB"`
	RecentLimit int      `json:"recentLimit"`
	Color       string   `json:"color"`
	Pinned      []string `json:"pinned"`

	// LoadError is why LoadOrDefault fell back to the defaults.
	LoadError error `json:"-"`

	path string
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel:    "warn",
		LogFormat:   "text",
		RecentDB:    defaultRecentDB(),
		RecentLimit: 20,
		Color:       "auto",
	}
}

func defaultRecentDB() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "projtree", "recent.db")
}

// DefaultPath returns $PROJTREE_CONFIG, or config.jsonc in the user's
// config directory.
func DefaultPath() (string, error) {
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "projtree", "config.jsonc"), nil
}

// Load reads the config file at path, or at DefaultPath when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := json.Unmarshal(std, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, falling back to the defaults when the file cannot
// be read, parsed or validated. The failure is kept in LoadError.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err == nil {
		return cfg
	}

	cfg = Default()
	cfg.LoadError = err
	cfg.path = path
	if path == "" {
		cfg.path, _ = DefaultPath()
	}
	return cfg
}

// Path returns the file the config was loaded from (it may not exist).
func (c *Config) Path() string {
	return c.path
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("logFormat must be text or json, got %q", c.LogFormat)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	if c.RecentLimit < 0 {
		return fmt.Errorf("recentLimit must not be negative, got %d", c.RecentLimit)
	}
	return nil
}

const newFileTemplate = `// projtree configuration
{}
`

// Pin adds root to the "pinned" array of the config file at path, creating
// the file if needed. Comments and formatting of an existing file are kept.
// It reports false if root was already pinned.
func Pin(path, root string) (bool, error) {
	if root == "" {
		return false, errors.New("cannot pin an empty root")
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		data = []byte(newFileTemplate)
	} else if err != nil {
		return false, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	doc, err := hujsonutil.Parse(data)
	if err != nil {
		return false, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	added, err := doc.AppendUnique("/pinned", root)
	if err != nil {
		return false, fmt.Errorf("failed to update pinned roots: %w", err)
	}
	if !added {
		return false, nil
	}

	doc.Format()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, doc.Pack(), 0644); err != nil {
		return false, fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return true, nil
}
