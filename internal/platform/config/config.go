// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrNoDatabase is returned when neither DATABASE_URL nor DB_HOST/DB_NAME are set.
var ErrNoDatabase = errors.New("config: DATABASE_URL or DB_HOST and DB_NAME must be set")

// # Configuration Schema

// Config holds all runtime configuration for the library server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL). DatabaseURL wins over the split fields.
	DatabaseURL      string `env:"DATABASE_URL"`
	DatabaseHost     string `env:"DB_HOST"`
	DatabasePort     string `env:"DB_PORT"     envDefault:"5432"`
	DatabaseUser     string `env:"DB_USER"`
	DatabasePassword string `env:"DB_PASSWORD"`
	DatabaseName     string `env:"DB_NAME"`
	DatabaseSSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL       string        `env:"REDIS_URL,required"`
	CountsCacheTTL time.Duration `env:"COUNTS_CACHE_TTL" envDefault:"30s"`

	// Staff sessions. An empty StaffPasswordHash leaves the catalog open.
	SessionSecret     string `env:"SESSION_SECRET"`
	StaffPasswordHash string `env:"STAFF_PASSWORD_HASH"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks cross-field rules that struct tags cannot express.
func (c *Config) validate() error {
	if c.DatabaseURL == "" && (c.DatabaseHost == "" || c.DatabaseName == "") {
		return ErrNoDatabase
	}

	if c.StaffAuthEnabled() && len(c.SessionSecret) < 32 {
		return errors.New("config: SESSION_SECRET must be at least 32 bytes when STAFF_PASSWORD_HASH is set")
	}

	return nil
}

// DSN returns the PostgreSQL connection string.
//
// DATABASE_URL is returned verbatim. Otherwise a postgres:// URL is assembled from
// the split DB_* fields with the credentials escaped.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	dsn := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.DatabaseHost, c.DatabasePort),
		Path:   "/" + c.DatabaseName,
	}

	if c.DatabaseUser != "" {
		if c.DatabasePassword != "" {
			dsn.User = url.UserPassword(c.DatabaseUser, c.DatabasePassword)
		} else {
			dsn.User = url.User(c.DatabaseUser)
		}
	}

	query := url.Values{}
	query.Set("sslmode", c.DatabaseSSLMode)
	dsn.RawQuery = query.Encode()

	return dsn.String()
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// StaffAuthEnabled reports whether mutating routes require a staff session.
func (c *Config) StaffAuthEnabled() bool {
	return c.StaffPasswordHash != ""
}
