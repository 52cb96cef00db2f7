package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config captures runtime configuration sourced from environment variables.
type Config struct {
	Environment  string `env:"APP_ENV" envDefault:"development"`
	HTTPPort     string `env:"APP_HTTP_PORT" envDefault:"8080"`
	DatabasePath string `env:"APP_DB_PATH" envDefault:"data/nstc.db"`
	LogDir       string `env:"APP_LOG_DIR" envDefault:"data/logs"`
	Debug        bool   `env:"APP_DEBUG"`

	// Site origin candidates, in priority order.
	SiteURL        string `env:"APP_SITE_URL"`
	ProductionHost string `env:"APP_PRODUCTION_HOST"`
	AuthURL        string `env:"APP_AUTH_URL"`

	SessionSecret  string `env:"APP_SESSION_SECRET"`
	StatusSchedule string `env:"APP_STATUS_SCHEDULE" envDefault:"@every 15m"`

	DefaultAdminUsername string `env:"APP_DEFAULT_ADMIN_USERNAME" envDefault:"admin"`
	DefaultAdminPassword string `env:"APP_DEFAULT_ADMIN_PASSWORD"`
	RequireDBVerify      bool   `env:"APP_REQUIRE_DB_VERIFY"`
}

// Load reads an optional .env file and the process environment, falling back
// to defaults so every binary can boot with zero configuration.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		return Config{}, fmt.Errorf("ensure data directory: %w", err)
	}

	return cfg, nil
}

// IsProduction reports whether the app runs with production semantics.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// SiteOriginCandidates lists the configured origins in the order they should be tried.
func (c Config) SiteOriginCandidates() []string {
	var production string
	if c.ProductionHost != "" {
		production = "https://" + c.ProductionHost
	}
	return []string{c.SiteURL, production, c.AuthURL}
}
