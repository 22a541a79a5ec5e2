// Package config provides console configuration loaded from environment
// variables with defaults and validation. A .env file in the working
// directory is honored when present.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all settings for the admin console and SDK.
type Config struct {
	// API
	BaseURL        string        // ADMIN_API_URL, e.g. "https://api.example.com"
	RequestTimeout time.Duration // ADMIN_REQUEST_TIMEOUT, e.g. 30s

	// Session
	TokenPath string // ADMIN_TOKEN_PATH, file holding the auth token

	// Pages
	PageSize int // ADMIN_PAGE_SIZE, client-side rows per page

	// Logging
	LogLevel  string // ADMIN_LOG_LEVEL: debug|info|warn|error
	LogPretty bool   // ADMIN_LOG_PRETTY: console writer in dev

	// Live refresh
	LiveURL      string        // ADMIN_LIVE_URL, ws:// endpoint, empty disables
	LiveInterval time.Duration // ADMIN_LIVE_INTERVAL, reconnect delay
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from the environment, applies defaults,
// normalizes values, and validates the result. A missing .env file is not
// an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:        getenv("ADMIN_API_URL", "http://localhost:8080"),
		RequestTimeout: getdur("ADMIN_REQUEST_TIMEOUT", 30*time.Second),
		TokenPath:      getenv("ADMIN_TOKEN_PATH", defaultTokenPath()),
		PageSize:       getint("ADMIN_PAGE_SIZE", 10),
		LogLevel:       strings.ToLower(getenv("ADMIN_LOG_LEVEL", "info")),
		LogPretty:      getbool("ADMIN_LOG_PRETTY", false),
		LiveURL:        getenv("ADMIN_LIVE_URL", ""),
		LiveInterval:   getdur("ADMIN_LIVE_INTERVAL", 5*time.Second),
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.BaseURL == "" {
		return errors.New("config: ADMIN_API_URL must not be empty")
	}
	if c.PageSize < 1 {
		return errors.New("config: ADMIN_PAGE_SIZE must be >= 1")
	}
	if c.RequestTimeout < 0 {
		return errors.New("config: ADMIN_REQUEST_TIMEOUT must not be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("config: ADMIN_LOG_LEVEL must be one of debug|info|warn|error")
	}
	return nil
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".adminkit-token"
	}
	return filepath.Join(home, ".adminkit", "token")
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func getint(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

func getbool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	}
	return def
}
