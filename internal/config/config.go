// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`
	Env  string `env:"APP_ENV" envDefault:"dev"`

	// StoragePath is the local database file. Empty selects the in-memory
	// store, which forgets everything on restart.
	StoragePath string `env:"STORAGE_PATH" envDefault:"petpantry.db"`

	// CatalogURL points at an external product list. Empty serves the
	// dataset bundled with the binary.
	CatalogURL     string        `env:"CATALOG_URL"`
	CatalogTimeout time.Duration `env:"CATALOG_TIMEOUT" envDefault:"10s"`

	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
