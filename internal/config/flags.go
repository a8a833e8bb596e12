package config

import (
	"flag"
)

// serverConfigFromFlags reads the server configuration from command-line
// flags. args is os.Args[1:] in production; tests pass their own slice.
func serverConfigFromFlags(args []string) (*ServerConfig, error) {
	cfg := &ServerConfig{}
	fs := flag.NewFlagSet("arraboard-server", flag.ContinueOnError)

	fs.StringVar(&cfg.Server.Address, "a", "", "server listen address, e.g. :8080")
	fs.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "database driver: pgx or sqlite3")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database data source name")
	fs.StringVar(&cfg.Storage.Files.Dir, "files-dir", "", "directory for uploaded file content")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "JWT signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "JWT issuer claim")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "JWT lifetime, e.g. 24h")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to json config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "path to json config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// clientConfigFromFlags reads the client configuration from command-line
// flags.
func clientConfigFromFlags(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	fs := flag.NewFlagSet("arraboard", flag.ContinueOnError)

	fs.StringVar(&cfg.Mode, "mode", "", "persistence mode: local or remote")
	fs.StringVar(&cfg.ServerAddress, "s", "", "server base URL, remote mode")
	fs.StringVar(&cfg.DataDir, "data-dir", "", "directory for local collection files")
	fs.StringVar(&cfg.LogFile, "log-file", "", "path to client log file")
	fs.DurationVar(&cfg.RequestTimeout, "request-timeout", 0, "HTTP request timeout, remote mode")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
