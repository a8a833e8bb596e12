package config

import "errors"

var (
	// ErrParsingEnvVars is returned when environment variables cannot be
	// parsed into the configuration structure.
	ErrParsingEnvVars = errors.New("error parsing environment variables")

	// ErrReadingJSONConfig is returned when the JSON configuration file
	// cannot be read or decoded.
	ErrReadingJSONConfig = errors.New("error reading json config file")

	// ErrMergingConfigs is returned when two configuration layers cannot
	// be merged.
	ErrMergingConfigs = errors.New("error merging configs")

	// ErrValidation is returned when the assembled configuration is
	// missing required values.
	ErrValidation = errors.New("config validation error")
)
