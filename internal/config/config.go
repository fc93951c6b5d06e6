package config

import (
	"github.com/caarlos0/env/v11"

	"clip-market/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP `envPrefix:"HTTP_"`

	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Only used when
	// Store.Driver is "postgres".
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Store configs.Store `envPrefix:"STORE_"`

	// Kafka configures lifecycle event publishing. Publishing is disabled
	// when no brokers are given.
	Kafka configs.Kafka `envPrefix:"KAFKA_"`

	Auth configs.Auth `envPrefix:"AUTH_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Store.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
