package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const devJWTSecret = "dev-secret-change-in-production"

// Config holds the runtime settings of the API server.
type Config struct {
	Port     string `envconfig:"PORT" default:"8000"`
	Env      string `envconfig:"ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL"`

	DatabaseURL string `envconfig:"DATABASE_URL" default:"sqlite://database.db"`

	ModelPath      string `envconfig:"MODEL_PATH" default:"sentiment_model.json"`
	VectorizerPath string `envconfig:"VECTORIZER_PATH" default:"vectorizer.json"`

	Admin struct {
		Username      string `envconfig:"ADMIN_USERNAME"`
		Password      string `envconfig:"ADMIN_PASSWORD"`
		DashboardAuth bool   `envconfig:"ADMIN_DASHBOARD_AUTH" default:"false"`
	} `envconfig:""`

	JWTSecret string        `envconfig:"JWT_SECRET" default:"dev-secret-change-in-production"`
	JWTExpiry time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	RateLimit struct {
		RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
		Burst int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
	} `envconfig:""`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("processing env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// IsProduction reports whether the server runs with production settings.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// AdminConfigured reports whether an admin credential pair was supplied.
func (c Config) AdminConfigured() bool {
	return c.Admin.Username != "" && c.Admin.Password != ""
}

func (c Config) validate() error {
	if c.IsProduction() && c.JWTSecret == devJWTSecret {
		return errors.New("JWT_SECRET must be set in production environment")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}
