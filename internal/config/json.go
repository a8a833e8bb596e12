package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// serverConfigFromJSON reads the server configuration from a JSON file.
// An empty path yields an empty config: the file layer is optional.
func serverConfigFromJSON(path string) (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadingJSONConfig, err)
	}

	// The file mirrors the nested structure of ServerConfig.
	var file struct {
		App     App     `json:"app"`
		Storage Storage `json:"storage"`
		Server  Server  `json:"server"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadingJSONConfig, err)
	}

	cfg.App = file.App
	cfg.Storage = file.Storage
	cfg.Server = file.Server
	return cfg, nil
}
