package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/models"
)

type recordRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRecordRepository returns a RecordRepository backed by the given
// database.
func NewRecordRepository(db *DB, log *logger.Logger) RecordRepository {
	return &recordRepository{db: db, logger: log}
}

func (r *recordRepository) ListRecords(ctx context.Context, userID int64, collection string) ([]models.RecordEnvelope, error) {
	methodLogger := r.logger.GetChildLogger("recordRepository.ListRecords")

	query, args, err := r.db.builder.
		Select("id", "user_id", "collection", "payload", "created_at", "updated_at").
		From(models.RecordEnvelope{}.TableName()).
		Where(sq.Eq{"user_id": userID, "collection": collection}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		methodLogger.Error().Err(err).Msg("building select query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		methodLogger.Error().Err(err).Str("collection", collection).Msg("selecting records")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	envelopes := make([]models.RecordEnvelope, 0)
	for rows.Next() {
		var env models.RecordEnvelope
		if err := rows.Scan(&env.ID, &env.UserID, &env.Collection, &env.Payload, &env.CreatedAt, &env.UpdatedAt); err != nil {
			methodLogger.Error().Err(err).Msg("scanning record row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		envelopes = append(envelopes, env)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return envelopes, nil
}

func (r *recordRepository) GetRecord(ctx context.Context, userID int64, collection string, id string) (models.RecordEnvelope, error) {
	methodLogger := r.logger.GetChildLogger("recordRepository.GetRecord")

	query, args, err := r.db.builder.
		Select("id", "user_id", "collection", "payload", "created_at", "updated_at").
		From(models.RecordEnvelope{}.TableName()).
		Where(sq.Eq{"user_id": userID, "collection": collection, "id": id}).
		ToSql()
	if err != nil {
		methodLogger.Error().Err(err).Msg("building select query")
		return models.RecordEnvelope{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var env models.RecordEnvelope
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&env.ID, &env.UserID, &env.Collection, &env.Payload, &env.CreatedAt, &env.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RecordEnvelope{}, ErrRecordNotFound
	}
	if err != nil {
		methodLogger.Error().Err(err).Str("id", id).Msg("selecting record")
		return models.RecordEnvelope{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return env, nil
}

func (r *recordRepository) CreateRecord(ctx context.Context, env models.RecordEnvelope) error {
	methodLogger := r.logger.GetChildLogger("recordRepository.CreateRecord")

	query, args, err := r.db.builder.
		Insert(env.TableName()).
		Columns("id", "user_id", "collection", "payload", "created_at", "updated_at").
		Values(env.ID, env.UserID, env.Collection, []byte(env.Payload), env.CreatedAt, env.UpdatedAt).
		ToSql()
	if err != nil {
		methodLogger.Error().Err(err).Msg("building insert query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		methodLogger.Error().Err(err).Str("id", env.ID).Str("collection", env.Collection).Msg("inserting record")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (r *recordRepository) UpdateRecord(ctx context.Context, env models.RecordEnvelope) error {
	methodLogger := r.logger.GetChildLogger("recordRepository.UpdateRecord")

	query, args, err := r.db.builder.
		Update(env.TableName()).
		Set("payload", []byte(env.Payload)).
		Set("updated_at", env.UpdatedAt).
		Where(sq.Eq{"user_id": env.UserID, "collection": env.Collection, "id": env.ID}).
		ToSql()
	if err != nil {
		methodLogger.Error().Err(err).Msg("building update query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		methodLogger.Error().Err(err).Str("id", env.ID).Msg("updating record")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *recordRepository) DeleteRecord(ctx context.Context, userID int64, collection string, id string) error {
	methodLogger := r.logger.GetChildLogger("recordRepository.DeleteRecord")

	query, args, err := r.db.builder.
		Delete(models.RecordEnvelope{}.TableName()).
		Where(sq.Eq{"user_id": userID, "collection": collection, "id": id}).
		ToSql()
	if err != nil {
		methodLogger.Error().Err(err).Msg("building delete query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	// Deleting a missing record is fine: the caller only cares that the
	// record is gone afterwards.
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		methodLogger.Error().Err(err).Str("id", id).Msg("deleting record")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (r *recordRepository) CountByCollection(ctx context.Context, userID int64) (map[string]int, error) {
	methodLogger := r.logger.GetChildLogger("recordRepository.CountByCollection")

	query, args, err := r.db.builder.
		Select("collection", "COUNT(*)").
		From(models.RecordEnvelope{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		GroupBy("collection").
		ToSql()
	if err != nil {
		methodLogger.Error().Err(err).Msg("building count query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		methodLogger.Error().Err(err).Msg("counting records")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var collection string
		var count int
		if err := rows.Scan(&collection, &count); err != nil {
			methodLogger.Error().Err(err).Msg("scanning count row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		counts[collection] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return counts, nil
}
