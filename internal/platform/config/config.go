// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A '.env' file in the
working directory is loaded first when present, for local development.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, Gateway) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the StoreHub API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Store (Redis) holding sessions and verification tokens
	RedisURL string `env:"REDIS_URL,required"`

	// Admin is the single configured back-office credential.
	Admin AdminConfig `envPrefix:"ADMIN_"`

	// Session controls the cookie-backed session lifecycle.
	Session SessionConfig `envPrefix:"SESSION_"`

	// Redirect is the post-login routing table.
	Redirect RedirectConfig `envPrefix:"REDIRECT_"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"storehub.app"`
}

// AdminConfig is the fixed admin credential pair. It has no database record.
type AdminConfig struct {
	Email    string `env:"EMAIL,required,notEmpty"`
	Password string `env:"PASSWORD,required,notEmpty"`
}

// SessionConfig holds the session signing secret and cookie attributes.
type SessionConfig struct {
	Secret       string        `env:"SECRET,required,notEmpty"`
	TTL          time.Duration `env:"TTL"           envDefault:"12h"`
	CookieName   string        `env:"COOKIE_NAME"   envDefault:"storehub_session"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"true"`
}

// RedirectConfig maps each principal type to its landing path.
//
// Officers are routed by the role tag of their function. The five tags are
// fixed; anything else lands on OfficerFallback.
type RedirectConfig struct {
	Admin           string `env:"ADMIN"            envDefault:"/admin/analytics"`
	OfficerFallback string `env:"OFFICER_FALLBACK" envDefault:"/admin/dashboard"`
	UserDefault     string `env:"USER_DEFAULT"     envDefault:"/dashboard"`

	Complaints string `env:"ACCESS_COMPLAINTS" envDefault:"/admin/complaints"`
	Officers   string `env:"ACCESS_OFFICERS"   envDefault:"/admin/officers"`
	Payments   string `env:"ACCESS_PAYMENTS"   envDefault:"/admin/payments"`
	Units      string `env:"ACCESS_UNITS"      envDefault:"/admin/units"`
	Warehouses string `env:"ACCESS_WAREHOUSES" envDefault:"/admin/warehouses"`

	// Remediation links attached to account-state login failures. The
	// pending page posts to /api/v1/account/resend for a new link.
	AccountPending     string `env:"ACCOUNT_PENDING"      envDefault:"/account/resend"`
	AccountNotVerified string `env:"ACCOUNT_NOT_VERIFIED" envDefault:"/account/verify"`
	AccountInactive    string `env:"ACCOUNT_INACTIVE"     envDefault:"/contact"`
}

// # Configuration Loading

// Load reads an optional .env file and parses environment variables into a [Config].
func Load() (*Config, error) {

	// A missing .env is the normal case outside local development.
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("config: failed to load .env file: %w", err)
		}
	}

	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("config: SESSION_TTL must be positive, got %s", cfg.Session.TTL)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// OriginSuffix returns the domain suffix accepted by the CORS middleware outside development.
func (c *Config) OriginSuffix() string {
	return c.AllowedOriginSuffix
}
