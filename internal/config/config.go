// Package config loads runtime settings from an optional YAML file, a .env
// file, and OUTREACH_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. OUTREACH_DATABASE_URL.
const EnvPrefix = "OUTREACH"

// Driver names, matching the database/sql driver registrations.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Config is the flat outreach configuration.
type Config struct {
	AppEnv   string   `mapstructure:"app_env"`   // "production" or "development"
	LogLevel string   `mapstructure:"log_level"` // zerolog level name
	Database Database `mapstructure:"database"`
}

// Database selects the relational store.
type Database struct {
	Driver string `mapstructure:"driver"` // "sqlite3" or "pgx"
	URL    string `mapstructure:"url"`    // file path for sqlite3, connection URL for pgx
}

// IsDevelopment reports whether human-readable console logging is wanted.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// Load resolves configuration. path names a YAML config file; when empty,
// $HOME/.outreach/config.yaml is read if it exists.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	dataDir, err := DefaultDataDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("app_env", "production")
	v.SetDefault("log_level", "warn")
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.url", filepath.Join(dataDir, "outreach.db"))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		candidate := filepath.Join(dataDir, "config.yaml")
		if _, statErr := os.Stat(candidate); statErr == nil {
			path = candidate
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Database.Driver == DriverSQLite {
		cfg.Database.URL = expandHome(cfg.Database.URL)
	}

	return &cfg, nil
}

// Validate rejects configurations the store cannot be opened with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q (expected %s or %s)", c.Database.Driver, DriverSQLite, DriverPostgres)
	}
	if strings.TrimSpace(c.Database.URL) == "" {
		return fmt.Errorf("database url is required")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

var keywordPassword = regexp.MustCompile(`(?i)(password=)\S+`)

// SanitizedURL returns the database URL with any password masked.
func (c *Config) SanitizedURL() string {
	raw := c.Database.URL
	if c.Database.Driver != DriverPostgres {
		return raw
	}
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		return u.Redacted()
	}
	return keywordPassword.ReplaceAllString(raw, "${1}xxxxx")
}

// DefaultDataDir returns $HOME/.outreach.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".outreach"), nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
