package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
)

const (
	EnvPrefix = "stockpulse"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv      = "STOCKPULSE_APP_ENV"
	EnvPort        = "STOCKPULSE_APP_PORT"
	EnvDefaultRole = "STOCKPULSE_SESSION_DEFAULT_ROLE"
)

type Config struct {
	App     AppConfig
	Session SessionConfig
	Search  SearchConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Session.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOCKPULSE_APP_ENV" required:"true"`
	Port         string `envconfig:"STOCKPULSE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"STOCKPULSE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOCKPULSE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SessionConfig controls the demo session bootstrap: which role the
// single logical session starts with and whether sample data is seeded.
type SessionConfig struct {
	DefaultRole  string `envconfig:"STOCKPULSE_SESSION_DEFAULT_ROLE" default:"ADMIN"`
	LogoutRole   string `envconfig:"STOCKPULSE_SESSION_LOGOUT_ROLE" default:"STORE_MANAGER"`
	SeedFixtures bool   `envconfig:"STOCKPULSE_SESSION_SEED_FIXTURES" default:"true"`
}

func (s SessionConfig) validate() error {
	if _, err := enums.ParseRole(s.DefaultRole); err != nil {
		return fmt.Errorf("invalid default role: %w", err)
	}
	if _, err := enums.ParseRole(s.LogoutRole); err != nil {
		return fmt.Errorf("invalid logout role: %w", err)
	}
	return nil
}

type SearchConfig struct {
	MinQueryLength int `envconfig:"STOCKPULSE_SEARCH_MIN_QUERY_LENGTH" default:"3"`
}
