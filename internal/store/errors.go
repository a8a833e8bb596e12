package store

import "errors"

var (
	// ErrLoginAlreadyExists is returned when registering a login that is
	// already taken.
	ErrLoginAlreadyExists = errors.New("user with given login already exists")

	// ErrNoUserWasFound is returned when no user matches the given login.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRecordNotFound is returned when no record matches the given
	// owner, collection and id.
	ErrRecordNotFound = errors.New("record not found")

	// ErrBuildingSQLQuery is returned when a query cannot be assembled.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query fails against the
	// database.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRows is returned when a result set cannot be scanned.
	ErrScanningRows = errors.New("error scanning rows")
)
