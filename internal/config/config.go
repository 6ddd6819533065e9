package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DevJWTSecret signs API tokens when JWT_SECRET is unset. Only suitable for local runs.
const DevJWTSecret = "valueplus-dev-secret"

type Config struct {
	App struct {
		Name   string `envconfig:"APP_NAME" default:"ValuePlus Homes"`
		Port   int    `envconfig:"PORT" default:"8080"`
		Locale string `envconfig:"LOCALE" default:"en-IN"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		Delay         time.Duration `envconfig:"AUTH_DELAY" default:"800ms"`
		AllowSignup   bool          `envconfig:"AUTH_ALLOW_SIGNUP" default:"true"`
		AdminUsername string        `envconfig:"ADMIN_USERNAME" default:"admin"`
		AdminPassword string        `envconfig:"ADMIN_PASSWORD" default:"admin"`
	}

	JWT struct {
		Secret string        `envconfig:"JWT_SECRET" default:"valueplus-dev-secret"`
		TTL    time.Duration `envconfig:"JWT_TTL" default:"12h"`
		Issuer string        `envconfig:"JWT_ISSUER" default:"valueplus"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	}

	Seed struct {
		Recommendations string `envconfig:"SEED_RECOMMENDATIONS"`
		Properties      string `envconfig:"SEED_PROPERTIES"`
	}

	Session struct {
		Cache string `envconfig:"SESSION_CACHE"`
	}
}

// Addr is the listen address for the API server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

// Validate rejects values the binaries cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.App.Port))
	}

	if c.Server.Timeout <= 0 {
		errs = append(errs, errors.New("SERVER_TIMEOUT must be positive"))
	}

	if c.Auth.Delay < 0 {
		errs = append(errs, errors.New("AUTH_DELAY must not be negative"))
	}

	if c.Auth.AdminUsername == "" {
		errs = append(errs, errors.New("ADMIN_USERNAME is required"))
	}

	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}

	if c.JWT.TTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}

	return errors.Join(errs...)
}

// DevSecret reports whether tokens are signed with the built-in development secret.
func (c *Config) DevSecret() bool {
	return c.JWT.Secret == DevJWTSecret
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
