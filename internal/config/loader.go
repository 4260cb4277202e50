package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "lsaportal.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom returns a Config loaded from the given YAML path. The file is
// optional; a missing file is not an error.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return &cfg, nil
}

func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// loadEnv overlays environment variables. Only non-empty values override.
func loadEnv(cfg *Config) {
	setString(&cfg.Server.Addr, "LSA_ADDR")
	setString(&cfg.Server.CORSOrigin, "LSA_CORS_ORIGIN")
	setString(&cfg.Postgres.DSN, "LSA_PG_DSN")
	setInt(&cfg.Postgres.MaxOpenConns, "LSA_PG_MAX_OPEN_CONNS")
	setInt(&cfg.Postgres.MaxIdleConns, "LSA_PG_MAX_IDLE_CONNS")
	setDuration(&cfg.Postgres.ConnMaxLifetime, "LSA_PG_CONN_MAX_LIFETIME")
	setString(&cfg.Auth.SigningKey, "LSA_AUTH_SECRET")
	setString(&cfg.Auth.Issuer, "LSA_AUTH_ISSUER")
	setDuration(&cfg.Auth.TokenTTL, "LSA_AUTH_TOKEN_TTL")
	setInt(&cfg.Rate.PerSecond, "LSA_RATE_PER_SECOND")
	setInt(&cfg.Rate.Burst, "LSA_RATE_BURST")
}

func validate(cfg *Config) error {
	if cfg.Server.Addr == "" {
		return errors.New("server addr is required")
	}
	if cfg.Auth.SigningKey == "" {
		return errors.New("auth signing key is required (LSA_AUTH_SECRET)")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return errors.New("auth token ttl must be positive")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}
