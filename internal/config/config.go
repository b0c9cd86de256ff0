package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"github.com/goliatone/go-formstate/internal/logger"
)

// Prefix namespaces every environment variable, e.g. FORMSTATE_LOG_LEVEL.
const Prefix = "FORMSTATE"

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type Config struct {
	Environment string        `envconfig:"ENV" default:"development" validate:"oneof=development production test"`
	Log         LogConfig     `envconfig:"LOG"`
	HTTP        HTTPConfig    `envconfig:"HTTP"`
	OpenAPI     OpenAPIConfig `envconfig:"OPENAPI"`
}

type LogConfig struct {
	Level  logger.Level  `envconfig:"LEVEL" default:"info"`
	Format logger.Format `envconfig:"FORMAT" default:"text"`
}

type HTTPConfig struct {
	Addr         string        `envconfig:"ADDR" default:":8080" validate:"required"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"10s" validate:"gt=0"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s" validate:"gt=0"`
}

type OpenAPIConfig struct {
	// Timeout caps remote document fetches.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"15s" validate:"gte=0"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Logger returns the logger settings for this configuration.
func (c *Config) Logger() logger.Config {
	return logger.Config{
		Environment: c.Environment,
		Level:       c.Log.Level,
		Format:      c.Log.Format,
	}
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, EnvDevelopment)
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}
