package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// legacyEnv carries variables the original deployment used that do not map
// one-to-one onto a Config field.
type legacyEnv struct {
	BackendPort string `env:"BACKEND_PORT"`
}

// parseEnv overlays environment variables onto config. Unset variables leave
// the current value untouched.
func parseEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	var legacy legacyEnv
	if err := env.Parse(&legacy); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if legacy.BackendPort != "" {
		config.EndpointAddrHTTP = ":" + legacy.BackendPort
	}
	return nil
}
