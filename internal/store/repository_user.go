package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/models"
)

type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository returns a UserRepository backed by the given database.
func NewUserRepository(db *DB, log *logger.Logger) UserRepository {
	return &userRepository{db: db, logger: log}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	methodLogger := r.logger.GetChildLogger("userRepository.CreateUser")

	user.CreatedAt = time.Now().UTC()

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns("login", "name", "password_hash", "created_at").
		Values(user.Login, user.Name, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		methodLogger.Error().Err(err).Msg("building insert query")
		return models.User{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		if isUniqueViolation(err) {
			methodLogger.Warn().Str("login", user.Login).Msg("duplicate login")
			return models.User{}, ErrLoginAlreadyExists
		}
		methodLogger.Error().Err(err).Msg("inserting user")
		return models.User{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	user.Password = ""
	return user, nil
}

func (r *userRepository) GetUserByLogin(ctx context.Context, login string) (models.User, error) {
	methodLogger := r.logger.GetChildLogger("userRepository.GetUserByLogin")

	query, args, err := r.db.builder.
		Select("user_id", "login", "name", "password_hash", "created_at").
		From(models.User{}.TableName()).
		Where("login = ?", login).
		ToSql()
	if err != nil {
		methodLogger.Error().Err(err).Msg("building select query")
		return models.User{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.Login, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		methodLogger.Error().Err(err).Msg("selecting user")
		return models.User{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return user, nil
}

// isUniqueViolation recognizes duplicate-key errors from both supported
// drivers.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
