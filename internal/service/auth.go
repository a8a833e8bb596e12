package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/arraboard/arraboard/internal/config"
	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/store"
	"github.com/arraboard/arraboard/internal/utils"
	"github.com/arraboard/arraboard/models"
)

// AuthService registers users and authenticates them with JWT tokens.
type AuthService struct {
	users  store.UserRepository
	app    config.App
	logger *logger.Logger
}

// NewAuthService returns an AuthService backed by the given user
// repository.
func NewAuthService(users store.UserRepository, app config.App, log *logger.Logger) *AuthService {
	return &AuthService{users: users, app: app, logger: log}
}

// Register creates a new user from the given credentials. The plaintext
// password is hashed before it reaches the repository and never stored.
func (s *AuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	methodLogger := s.logger.GetChildLogger("AuthService.Register")

	if user.Login == "" || user.Password == "" {
		return models.User{}, fmt.Errorf("%w: login and password are required", ErrInvalidDataProvided)
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		methodLogger.Error().Err(err).Msg("hashing password")
		return models.User{}, err
	}
	user.PasswordHash = hash
	user.Password = ""

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	methodLogger.Info().Str("login", created.Login).Int64("user_id", created.UserID).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and issues a signed JWT token.
func (s *AuthService) Login(ctx context.Context, login, password string) (models.Token, error) {
	methodLogger := s.logger.GetChildLogger("AuthService.Login")

	if login == "" || password == "" {
		return models.Token{}, fmt.Errorf("%w: login and password are required", ErrInvalidDataProvided)
	}

	user, err := s.users.GetUserByLogin(ctx, login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		// Same answer as a bad password, so logins cannot be probed.
		return models.Token{}, ErrWrongPassword
	}
	if err != nil {
		return models.Token{}, err
	}

	if err := utils.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, utils.ErrHashMismatch) {
			methodLogger.Warn().Str("login", login).Msg("failed login attempt")
			return models.Token{}, ErrWrongPassword
		}
		return models.Token{}, err
	}

	token, err := utils.GenerateJWTToken(s.app.TokenIssuer, user.UserID, s.app.TokenDuration, s.app.TokenSignKey)
	if err != nil {
		methodLogger.Error().Err(err).Msg("issuing token")
		return models.Token{}, err
	}

	return token, nil
}

// ValidateToken verifies a bearer token string and returns the user id it
// carries. Expired or tampered tokens yield ErrTokenInvalid.
func (s *AuthService) ValidateToken(tokenString string) (int64, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.app.TokenSignKey, s.app.TokenIssuer)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	return token.UserID, nil
}
