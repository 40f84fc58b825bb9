// ABOUTME: Lifedash configuration management: JSON file overlaid by environment variables.
// ABOUTME: Provides defaults and factories for storage, logging and the calendar client.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/harperreed/lifedash/internal/calendar"
	"github.com/harperreed/lifedash/internal/logging"
	"github.com/harperreed/lifedash/internal/storage"
)

// EnvPrefix is prepended to every environment variable name. Only the Google
// OAuth settings also fall back to their unprefixed names (GOOGLE_CLIENT_ID, ...).
const EnvPrefix = "LIFEDASH"

const (
	DefaultAPIKey     = "dev-secret-key"
	DefaultListenAddr = ":8000"
	DefaultTimeZone   = "Europe/Lisbon"
	DefaultRateLimit  = 60
)

// Config stores lifedash configuration.
type Config struct {
	// DataDir is the root directory for the database and calendar token.
	// Supports ~ expansion. Defaults to ~/.local/share/lifedash.
	DataDir string `json:"data_dir,omitempty" split_words:"true"`

	// DatabasePath overrides the SQLite file location (default <data_dir>/lifedash.db).
	DatabasePath string `json:"database_path,omitempty" split_words:"true"`

	// APIKey is the shared secret required in X-API-Key for writes.
	APIKey string `json:"api_key,omitempty" split_words:"true"`

	ListenAddr string `json:"listen_addr,omitempty" split_words:"true"`

	GoogleClientID     string `json:"google_client_id,omitempty" envconfig:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `json:"google_client_secret,omitempty" envconfig:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string `json:"google_redirect_uri,omitempty" envconfig:"GOOGLE_REDIRECT_URI"`

	// CalendarTokenPath is where the OAuth token is persisted.
	CalendarTokenPath string `json:"calendar_token_path,omitempty" split_words:"true"`
	CalendarTimezone  string `json:"calendar_timezone,omitempty" split_words:"true"`

	LogLevel  string `json:"log_level,omitempty" split_words:"true"`
	LogFormat string `json:"log_format,omitempty" split_words:"true"`

	// CORSOrigins lists allowed browser origins; empty allows any.
	CORSOrigins []string `json:"cors_origins,omitempty" split_words:"true"`

	// RateLimit is API write requests per minute per client IP. 0 disables.
	RateLimit *int `json:"rate_limit,omitempty" split_words:"true"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDatabasePath returns the SQLite file path.
func (c *Config) GetDatabasePath() string {
	if c.DatabasePath != "" {
		return ExpandPath(c.DatabasePath)
	}
	if c.DataDir != "" {
		return filepath.Join(c.GetDataDir(), "lifedash.db")
	}
	return storage.DefaultDBPath()
}

// GetAPIKey returns the shared secret, falling back to the development key.
func (c *Config) GetAPIKey() string {
	if c.APIKey == "" {
		return DefaultAPIKey
	}
	return c.APIKey
}

// GetListenAddr returns the HTTP listen address.
func (c *Config) GetListenAddr() string {
	if c.ListenAddr == "" {
		return DefaultListenAddr
	}
	return c.ListenAddr
}

// GetCalendarTokenPath returns the OAuth token file path.
func (c *Config) GetCalendarTokenPath() string {
	if c.CalendarTokenPath == "" {
		return filepath.Join(c.GetDataDir(), "google_calendar_token.json")
	}
	return ExpandPath(c.CalendarTokenPath)
}

// GetCalendarTimeZone returns the zone used for timed calendar events.
func (c *Config) GetCalendarTimeZone() string {
	if c.CalendarTimezone == "" {
		return DefaultTimeZone
	}
	return c.CalendarTimezone
}

// GetRateLimit returns write requests per minute, 0 meaning unlimited.
func (c *Config) GetRateLimit() int {
	if c.RateLimit == nil {
		return DefaultRateLimit
	}
	if *c.RateLimit < 0 {
		return 0
	}
	return *c.RateLimit
}

// UsesDefaultAPIKey reports whether the development secret is in effect.
func (c *Config) UsesDefaultAPIKey() bool {
	return c.GetAPIKey() == DefaultAPIKey
}

// Logging returns the logger configuration.
func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.LogLevel, Format: c.LogFormat}
}

// Calendar returns the Google Calendar client configuration.
func (c *Config) Calendar() calendar.Config {
	return calendar.Config{
		ClientID:     c.GoogleClientID,
		ClientSecret: c.GoogleClientSecret,
		RedirectURL:  c.GoogleRedirectURI,
		TokenPath:    c.GetCalendarTokenPath(),
		TimeZone:     c.GetCalendarTimeZone(),
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the SQLite database at the configured path.
func (c *Config) OpenStorage() (*storage.DB, error) {
	return storage.Open(c.GetDatabasePath())
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "lifedash", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("process environment variables: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
