package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing
	// required fields or carries values the service cannot accept.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when login credentials do not match.
	ErrWrongPassword = errors.New("wrong login or password")

	// ErrTokenInvalid is returned when a JWT token fails verification.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrUnknownCollection is returned when a request names a collection
	// the application does not define.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrFileNotFound is returned when no uploaded content exists for the
	// given file record.
	ErrFileNotFound = errors.New("file content not found")
)
