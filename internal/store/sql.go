package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/arraboard/arraboard/internal/config"
	"github.com/arraboard/arraboard/internal/logger"
)

// DB wraps the sql connection pool together with the placeholder format the
// active driver expects. PostgreSQL wants $1-style placeholders, SQLite
// wants ?-style ones; repositories build every statement through the
// embedded builder so they never care which driver is underneath.
type DB struct {
	*sql.DB
	builder sq.StatementBuilderType
	driver  string
	logger  *logger.Logger
}

// NewConnect opens a connection pool for the configured driver and verifies
// it with a ping.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	connectLogger := log.GetChildLogger("store.NewConnect")

	var placeholder sq.PlaceholderFormat
	switch cfg.Driver {
	case "pgx":
		placeholder = sq.Dollar
	case "sqlite3":
		placeholder = sq.Question
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}

	pool, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		connectLogger.Error().Err(err).Str("driver", cfg.Driver).Msg("opening database")
		return nil, err
	}

	if cfg.Driver == "pgx" {
		pool.SetMaxOpenConns(10)
		pool.SetMaxIdleConns(5)
		pool.SetConnMaxLifetime(30 * time.Minute)
	} else {
		// SQLite serializes writers; a single connection avoids
		// SQLITE_BUSY under concurrent handlers.
		pool.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.PingContext(pingCtx); err != nil {
		connectLogger.Error().Err(err).Str("driver", cfg.Driver).Msg("pinging database")
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}

	connectLogger.Info().Str("driver", cfg.Driver).Msg("database connection established")

	return &DB{
		DB:      pool,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		driver:  cfg.Driver,
		logger:  log,
	}, nil
}
