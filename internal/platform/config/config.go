// Copyright (c) 2026 Book Alchemy. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct. An optional dotenv file is loaded first with 'joho/godotenv'; values
already present in the environment win over the file.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded, configuration is read-only and passed to constructors.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file read by [Load] when present.
const DefaultEnvFile = ".env"

// # Configuration Schema

// Config holds all runtime configuration for the catalog server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"5002"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// DatabasePath is the SQLite database file. ":memory:" is accepted for tests.
	DatabasePath string `env:"DATABASE_PATH" envDefault:"data/library.sqlite3"`

	// RedisURL enables the ISBN lookup cache when set.
	RedisURL string `env:"REDIS_URL"`

	// External ISBN lookup (Open Library search API)
	LookupBaseURL   string        `env:"LOOKUP_BASE_URL"   envDefault:"https://openlibrary.org"`
	LookupUserAgent string        `env:"LOOKUP_USER_AGENT" envDefault:"book-alchemy/0.1"`
	LookupTimeout   time.Duration `env:"LOOKUP_TIMEOUT"    envDefault:"10s"`
	LookupCacheTTL  time.Duration `env:"LOOKUP_CACHE_TTL"  envDefault:"24h"`
	LookupRPS       float64       `env:"LOOKUP_RPS"        envDefault:"1"`

	// CoverURLTemplate receives the ISBN through a single %s verb.
	CoverURLTemplate string `env:"COVER_URL_TEMPLATE" envDefault:"https://covers.openlibrary.org/b/isbn/%s-L.jpg"`

	// Cross-Origin Resource Sharing, comma separated.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Per-IP token bucket
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// # Configuration Loading

// Load reads [DefaultEnvFile] if it exists and parses the environment into a [Config].
func Load() (*Config, error) {
	return LoadFrom(DefaultEnvFile)
}

// LoadFrom is [Load] with an explicit dotenv path. A missing file is not an error.
func LoadFrom(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read %s: %w", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if strings.Count(c.CoverURLTemplate, "%s") != 1 {
		return fmt.Errorf("config: COVER_URL_TEMPLATE must contain exactly one %%s, got %q", c.CoverURLTemplate)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("config: RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// CacheEnabled reports whether a Redis URL was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}
