// Package config provides hierarchical configuration loading for the portal
// API. Precedence: defaults < YAML file < environment variables.
package config

import "time"

// Config holds all runtime configuration for the portal API.
type Config struct {
	Server   Server   `yaml:"server"`
	Postgres Postgres `yaml:"postgres"`
	Auth     Auth     `yaml:"auth"`
	Rate     Rate     `yaml:"rate"`
}

// Server holds HTTP server configuration.
type Server struct {
	Addr       string `yaml:"addr"`
	CORSOrigin string `yaml:"cors_origin"`
}

// Postgres holds PostgreSQL connection configuration. An empty DSN keeps the
// service on the seeded in-memory stores (development mode).
type Postgres struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// Auth holds token issuance configuration. The signing key is loaded once at
// startup and injected into the auth service; nothing reads it ambiently.
type Auth struct {
	SigningKey string        `yaml:"signing_key"`
	Issuer     string        `yaml:"issuer"`
	TokenTTL   time.Duration `yaml:"token_ttl"`
}

// Rate holds per-IP rate limiter configuration.
type Rate struct {
	PerSecond int `yaml:"per_second"`
	Burst     int `yaml:"burst"`
}

// Defaults returns a Config with sensible values for local development.
func Defaults() Config {
	return Config{
		Server: Server{
			Addr:       ":8080",
			CORSOrigin: "http://localhost:5173",
		},
		Postgres: Postgres{
			MaxOpenConns:    10,
			MaxIdleConns:    10,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Auth: Auth{
			Issuer:   "lsaportal",
			TokenTTL: 24 * time.Hour,
		},
		Rate: Rate{
			PerSecond: 20,
			Burst:     40,
		},
	}
}
