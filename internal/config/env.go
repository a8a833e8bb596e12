package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// serverConfigFromEnv reads the server configuration from environment
// variables. No ARRABOARD prefix on the server side: the server is expected
// to run in a dedicated environment.
func serverConfigFromEnv() (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingEnvVars, err)
	}
	return cfg, nil
}

// clientConfigFromEnv reads the client configuration from ARRABOARD_*
// environment variables. The prefix keeps the client distinguishable in a
// shared user environment.
func clientConfigFromEnv() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "ARRABOARD_"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingEnvVars, err)
	}
	return cfg, nil
}
