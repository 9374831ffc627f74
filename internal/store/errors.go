package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when registration collides with an
	// existing username or email.
	ErrLoginAlreadyExists = errors.New("username or email already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEntryNotSaved is returned when an INSERT of a vault entry returns no
	// row.
	ErrEntryNotSaved = errors.New("vault entry was not saved")

	// ErrEntryNotFound is returned when no entry with the given id belongs to
	// the owner. Entries of other owners are reported the same way.
	ErrEntryNotFound = errors.New("vault entry was not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the entry was changed since the client last read it.
	ErrVersionConflict = errors.New("vault entry version conflict occurred")

	// ErrLocalSessionNotFound is returned by the client session store when
	// nobody is logged in on this device.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
