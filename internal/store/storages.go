// Package store holds the server-side persistence layer. Feature records
// are kept as opaque JSON envelopes in a single generic table: the server
// never interprets payloads, so new collections need no schema changes.
package store

import (
	"context"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/models"
)

// UserRepository persists registered users.
type UserRepository interface {
	// CreateUser stores a new user and returns it with UserID and
	// CreatedAt filled in. Returns ErrLoginAlreadyExists on a duplicate
	// login.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUserByLogin returns the user with the given login, or
	// ErrNoUserWasFound.
	GetUserByLogin(ctx context.Context, login string) (models.User, error)
}

// RecordRepository persists record envelopes scoped by owner and
// collection.
type RecordRepository interface {
	// ListRecords returns all envelopes of one collection owned by
	// userID, oldest first.
	ListRecords(ctx context.Context, userID int64, collection string) ([]models.RecordEnvelope, error)

	// GetRecord returns a single envelope, or ErrRecordNotFound.
	GetRecord(ctx context.Context, userID int64, collection string, id string) (models.RecordEnvelope, error)

	// CreateRecord stores a new envelope.
	CreateRecord(ctx context.Context, env models.RecordEnvelope) error

	// UpdateRecord replaces the payload and updated_at of an existing
	// envelope. Returns ErrRecordNotFound when nothing matches.
	UpdateRecord(ctx context.Context, env models.RecordEnvelope) error

	// DeleteRecord removes an envelope. Deleting a missing envelope is
	// not an error.
	DeleteRecord(ctx context.Context, userID int64, collection string, id string) error

	// CountByCollection returns the number of envelopes the user owns in
	// each collection. Collections with no records are absent from the
	// map.
	CountByCollection(ctx context.Context, userID int64) (map[string]int, error)
}

// Storages bundles every repository the service layer needs.
type Storages struct {
	Users   UserRepository
	Records RecordRepository
}

// NewStorages wires all repositories to one database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Users:   NewUserRepository(db, log),
		Records: NewRecordRepository(db, log),
	}
}
