// Package config loads server settings from defaults, an optional TOML file,
// an optional .env file and the process environment, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
)

// DevJWTSecret is the built-in signing key. Fine for local runs only.
const DevJWTSecret = "splitledger-dev-secret"

// Config holds all server settings.
type Config struct {
	Port            int           `toml:"port"`
	DBPath          string        `toml:"db_path"`
	JWTSecret       string        `toml:"jwt_secret"`
	TokenTTL        time.Duration `toml:"token_ttl"`
	LogLevel        string        `toml:"log_level"`
	DefaultCurrency string        `toml:"default_currency"`
	CORSOrigin      string        `toml:"cors_origin"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Port:            8080,
		DBPath:          "./data/splitledger.db",
		JWTSecret:       DevJWTSecret,
		TokenTTL:        24 * time.Hour,
		LogLevel:        "info",
		DefaultCurrency: "INR",
		CORSOrigin:      "*",
	}
}

// Load builds the configuration. path names an optional TOML file; an empty
// path skips it. A .env file in the working directory is read when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys in %s: %v", path, undecoded)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("DB_PATH", &c.DBPath)
	str("JWT_SECRET", &c.JWTSecret)
	str("LOG_LEVEL", &c.LogLevel)
	str("DEFAULT_CURRENCY", &c.DefaultCurrency)
	str("CORS_ORIGIN", &c.CORSOrigin)

	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v, ok := lookup("TOKEN_TTL"); ok && v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		c.TokenTTL = ttl
	}
	return nil
}

// Validate checks every field and normalizes the currency code.
func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("db_path required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt_secret required"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("token_ttl must be positive, got %s", c.TokenTTL))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	unit, err := currency.ParseISO(c.DefaultCurrency)
	if err != nil {
		errs = append(errs, fmt.Errorf("default_currency %q is not an ISO 4217 code", c.DefaultCurrency))
	} else {
		c.DefaultCurrency = unit.String()
	}
	return errors.Join(errs...)
}

// Level parses LogLevel (debug, info, warn, error).
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
