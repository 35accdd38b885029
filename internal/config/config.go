// Package config loads application configuration from environment variables
// into a single Config struct that the rest of the application receives by
// value. No other package reads os.Getenv directly.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting. The `env` struct tags are parsed by
// caarlos0/env: each field maps to one variable, with envDefault applied
// when the variable is unset.
type Config struct {
	Host     string `env:"HOST" envDefault:"0.0.0.0"`
	Port     int    `env:"PORT" envDefault:"8080"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Directories for static assets (ads.txt, favicons) and downloadable
	// document templates.
	PublicDir string `env:"PUBLIC_DIR" envDefault:"public"`
	DocsDir   string `env:"DOCS_DIR" envDefault:"public/docs"`

	// Contact email bridge. The API key is deliberately optional: without it
	// the server still starts, and contact sends fail at request time.
	ResendAPIKey string `env:"RESEND_API_KEY"`
	ContactFrom  string `env:"CONTACT_FROM" envDefault:"Desenrola Direito <contato@desenroladireito.com.br>"`
	ContactTo    string `env:"CONTACT_TO" envDefault:"atendimento@desenroladireito.com.br"`

	// Max contact submissions per minute per client IP.
	ContactRateLimit int `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
}

// Load parses environment variables and returns a Config.
//
// A missing RESEND_API_KEY is logged as a warning, not an error: the site is
// read-mostly and must not be held hostage by the email provider's config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", cfg.Port)
	}
	if cfg.ContactRateLimit < 1 {
		cfg.ContactRateLimit = 1
	}

	if cfg.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, contact form emails will not be sent")
	}

	return cfg, nil
}

// Addr returns the server listen address in host:port format.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDevelopment returns true when running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// SlogLevel maps the LOG_LEVEL string to a slog.Level, defaulting to Info
// for unknown values.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
