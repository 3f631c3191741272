package client

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	BaseURL string `env:"CAMPFIRE_API_BASE_URL" envDefault:"http://127.0.0.1:8000/api"`
}

// NewFromEnv creates a Client whose base URL is read from the
// CAMPFIRE_API_BASE_URL environment variable, falling back to the local
// development backend when unset.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return New(cfg.BaseURL, opts...), nil
}
