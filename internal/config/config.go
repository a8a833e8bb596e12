package config

import (
	"time"
)

// ServerConfig is the top-level configuration container for the ArraBoard
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ServerConfig struct {
	// App holds application-level settings such as token parameters and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the
	// relational database and the upload file store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"token_sign_key"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" json:"token_issuer"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "24h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" json:"token_duration"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version"`
}

// Storage groups the configuration for all storage backends used by the
// server.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_" json:"db"`

	// Files holds the file-system storage settings for uploaded files.
	Files Files `envPrefix:"FILES_" json:"files"`
}

// DB holds the relational database connection settings.
type DB struct {
	// Driver selects the database driver: "pgx" for PostgreSQL or
	// "sqlite3" for a single-box SQLite deployment.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER" json:"driver"`

	// DSN is the driver-specific data source name.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" json:"dsn"`
}

// Files holds the upload file-store settings.
type Files struct {
	// Dir is the directory where uploaded file content is kept, one file
	// per record id.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR" json:"dir"`

	// SweepInterval is how often the orphan sweeper scans Dir for content
	// whose metadata record is gone. Zero disables the sweeper.
	// Env: STORAGE_FILES_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" json:"sweep_interval"`
}

// Server holds network address and timeout settings for the HTTP server.
type Server struct {
	// Address is the listen address, e.g. ":8080".
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS" json:"address"`

	// ReadTimeout bounds reading of a whole request.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" json:"read_timeout"`

	// WriteTimeout bounds writing of a whole response.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" json:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown on SIGTERM.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" json:"shutdown_timeout"`
}

// ClientConfig configures the TUI client.
type ClientConfig struct {
	// Mode selects the persistence strategy: "local" keeps every
	// collection in JSON blob files under DataDir; "remote" talks to the
	// ArraBoard server at ServerAddress.
	// Env: ARRABOARD_MODE
	Mode string `env:"MODE" json:"mode"`

	// ServerAddress is the base URL of the ArraBoard server, remote mode
	// only.
	// Env: ARRABOARD_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS" json:"server_address"`

	// DataDir is the directory holding local-mode collection blobs.
	// Env: ARRABOARD_DATA_DIR
	DataDir string `env:"DATA_DIR" json:"data_dir"`

	// LogFile receives the client's JSON log lines; stdout belongs to the
	// terminal UI.
	// Env: ARRABOARD_LOG_FILE
	LogFile string `env:"LOG_FILE" json:"log_file"`

	// RequestTimeout bounds every HTTP request in remote mode.
	// Env: ARRABOARD_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// Client mode values.
const (
	ModeLocal  = "local"
	ModeRemote = "remote"
)
