package record

import "errors"

// Sentinel errors returned by record store operations. Callers should use
// [errors.Is] to match against these values; backends wrap them with
// operation detail.
var (
	// ErrNotFound is returned when an update targets a record id that does
	// not exist in the caller's collection. Deletes of missing ids are
	// deliberately not an error.
	ErrNotFound = errors.New("record not found")

	// ErrStorage is returned when the persistence medium is unavailable or
	// misbehaves: an unreadable or corrupt local blob file, a failed write,
	// or a remote call that did not complete.
	ErrStorage = errors.New("storage unavailable")

	// ErrNotAuthenticated is returned by every remote-mode operation
	// attempted without a valid session token. The caller is expected to
	// re-authenticate; no request is issued.
	ErrNotAuthenticated = errors.New("not authenticated")
)
