// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration. It is built once at startup
// and passed explicitly to the components that need it.
type Config struct {
	// ClientID and ClientSecret are the Spotify application credentials.
	// The process refuses to start without them.
	ClientID     string `env:"SPOTIFY_CLIENT_ID,notEmpty"`
	ClientSecret string `env:"SPOTIFY_CLIENT_SECRET,notEmpty"`

	// Addr is the listen address for the HTTP server.
	Addr string `env:"ADDR" envDefault:"127.0.0.1:8080"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
