package config

import "github.com/caarlos0/env/v10"

// Config holds the runtime configuration, read from the environment.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	CatalogDir  string `env:"CATALOG_DIR"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty      bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// LoadConfig parses the configuration from environment variables.
// Without DATABASE_URL or CATALOG_DIR the built-in catalog is used.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
