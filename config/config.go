// Package config loads settings from defaults, an optional YAML file and the
// environment (including a .env file), in that order of increasing priority.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Server  Server  `yaml:"server"`
	Store   Store   `yaml:"store"`
	Audit   Audit   `yaml:"audit"`
	Session Session `yaml:"session"`
	Log     Log     `yaml:"log"`
	UI      UI      `yaml:"ui"`
}

// Server holds HTTP listener settings
type Server struct {
	Port            string        `yaml:"port"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	CORSOrigins     []string      `yaml:"cors_origins"`
}

// Store selects where contacts live
type Store struct {
	Backend    string `yaml:"backend"`     // "memory" | "json"
	Path       string `yaml:"path"`        // JSON file for the json backend
	IDStrategy string `yaml:"id_strategy"` // "timestamp" | "uuid"
}

// Audit holds the request audit log settings
type Audit struct {
	Enabled  bool   `yaml:"enabled"`
	Database string `yaml:"database"`
}

// Session holds cookie session settings used for flash messages
type Session struct {
	CookieName string `yaml:"cookie_name"`
	Secure     bool   `yaml:"secure"`
	Lifetime   int64  `yaml:"lifetime"` // seconds
}

// Log holds logger settings
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// UI holds table view settings
type UI struct {
	PageSize int `yaml:"page_size"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Server: Server{
			Port:            "5000",
			RequestTimeout:  60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
		},
		Store: Store{
			Backend:    "json",
			Path:       "data/contacts.json",
			IDStrategy: "timestamp",
		},
		Audit: Audit{
			Enabled:  true,
			Database: "data/audit.db",
		},
		Session: Session{
			CookieName: "contact_book_session",
			Lifetime:   3600,
		},
		Log: Log{
			Level: "info",
		},
		UI: UI{
			PageSize: 10,
		},
	}
}

// Load builds the configuration. A missing YAML file or .env file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: loading .env: %w", err)
	}

	if path == "" {
		path = os.Getenv("CONTACTS_CONFIG")
	}

	cfg := DefaultConfig()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFile decodes the YAML file at path over cfg
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// Empty and comment-only files decode to EOF
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg from environment variables
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		*dst = b
		return nil
	}

	str("PORT", &cfg.Server.Port)
	str("CONTACTS_STORE", &cfg.Store.Backend)
	str("CONTACTS_FILE", &cfg.Store.Path)
	str("CONTACTS_ID_STRATEGY", &cfg.Store.IDStrategy)
	str("AUDIT_DB", &cfg.Audit.Database)
	str("LOG_LEVEL", &cfg.Log.Level)

	if v, ok := lookup("CORS_ORIGINS"); ok && v != "" {
		cfg.Server.CORSOrigins = splitList(v)
	}

	if v, ok := lookup("CONTACTS_PAGE_SIZE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: CONTACTS_PAGE_SIZE: %w", err)
		}
		cfg.UI.PageSize = n
	}

	for key, dst := range map[string]*bool{
		"AUDIT_ENABLED": &cfg.Audit.Enabled,
		"USE_HTTPS":     &cfg.Session.Secure,
		"LOG_DEV":       &cfg.Log.Development,
	} {
		if err := boolean(key, dst); err != nil {
			return err
		}
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks that config values are usable
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("config: server.port cannot be empty")
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("config: server.request_timeout must be positive, got %v", c.Server.RequestTimeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: server.shutdown_timeout must be positive, got %v", c.Server.ShutdownTimeout)
	}
	switch c.Store.Backend {
	case "memory":
	case "json":
		if c.Store.Path == "" {
			return errors.New("config: store.path is required for the json backend")
		}
	default:
		return fmt.Errorf("config: store.backend must be memory or json, got %q", c.Store.Backend)
	}
	if c.Store.IDStrategy != "timestamp" && c.Store.IDStrategy != "uuid" {
		return fmt.Errorf("config: store.id_strategy must be timestamp or uuid, got %q", c.Store.IDStrategy)
	}
	if c.Audit.Enabled && c.Audit.Database == "" {
		return errors.New("config: audit.database is required when audit is enabled")
	}
	if c.UI.PageSize <= 0 {
		return fmt.Errorf("config: ui.page_size must be positive, got %d", c.UI.PageSize)
	}
	if c.Session.Lifetime <= 0 {
		return fmt.Errorf("config: session.lifetime must be positive, got %d", c.Session.Lifetime)
	}
	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}
