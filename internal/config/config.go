package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Server      ServerConfig
	Marketplace MarketplaceConfig
	Log         LogConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// MarketplaceConfig is the upstream contract: endpoint URL plus API key,
// read once here and never again.
type MarketplaceConfig struct {
	APIURL   string        `envconfig:"MARKETPLACE_API_URL"`
	APIKey   string        `envconfig:"MARKETPLACE_API_KEY"`
	Campaign string        `envconfig:"MARKETPLACE_CAMPAIGN" default:"marketplace"`
	Timeout  time.Duration `envconfig:"MARKETPLACE_TIMEOUT" default:"10s"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads an optional .env file then parses the environment. A missing
// .env is fine — real deployments set variables directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
