package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Precedence, lowest to highest: defaults, JSON file, flags, environment.
// Each layer overrides only the values it actually sets.

// GetServerConfig assembles the server configuration from all sources.
// args is os.Args[1:].
func GetServerConfig(args []string) (*ServerConfig, error) {
	envCfg, err := serverConfigFromEnv()
	if err != nil {
		return nil, err
	}
	flagCfg, err := serverConfigFromFlags(args)
	if err != nil {
		return nil, err
	}

	// The JSON file path itself can come from either env or flags.
	jsonPath := flagCfg.JSONFilePath
	if envCfg.JSONFilePath != "" {
		jsonPath = envCfg.JSONFilePath
	}
	jsonCfg, err := serverConfigFromJSON(jsonPath)
	if err != nil {
		return nil, err
	}

	cfg := defaultServerConfig()
	for _, layer := range []*ServerConfig{jsonCfg, flagCfg, envCfg} {
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMergingConfigs, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetClientConfig assembles the client configuration from defaults, flags
// and environment. The client carries no JSON layer: its surface is small
// enough for flags alone.
func GetClientConfig(args []string) (*ClientConfig, error) {
	envCfg, err := clientConfigFromEnv()
	if err != nil {
		return nil, err
	}
	flagCfg, err := clientConfigFromFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := defaultClientConfig()
	for _, layer := range []*ClientConfig{flagCfg, envCfg} {
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMergingConfigs, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultServerConfig() *ServerConfig {
	return &ServerConfig{
		App: App{
			TokenIssuer:   "arraboard",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
		},
		Storage: Storage{
			DB: DB{
				Driver: "sqlite3",
				DSN:    "arraboard.db",
			},
			Files: Files{
				Dir:           "uploads",
				SweepInterval: time.Hour,
			},
		},
		Server: Server{
			Address:         ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Mode:           ModeLocal,
		DataDir:        "arraboard-data",
		LogFile:        "arraboard.log",
		RequestTimeout: 10 * time.Second,
	}
}

func (c *ServerConfig) validate() error {
	if c.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrValidation)
	}
	if c.Storage.DB.Driver != "pgx" && c.Storage.DB.Driver != "sqlite3" {
		return fmt.Errorf("%w: unknown db driver %q", ErrValidation, c.Storage.DB.Driver)
	}
	if c.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: db dsn is required", ErrValidation)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("%w: server address is required", ErrValidation)
	}
	return nil
}

func (c *ClientConfig) validate() error {
	switch c.Mode {
	case ModeLocal:
		if c.DataDir == "" {
			return fmt.Errorf("%w: data dir is required in local mode", ErrValidation)
		}
	case ModeRemote:
		if c.ServerAddress == "" {
			return fmt.Errorf("%w: server address is required in remote mode", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrValidation, c.Mode)
	}
	return nil
}
