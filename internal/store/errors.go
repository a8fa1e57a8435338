package store

import "errors"

// Sentinel errors returned by [ContextStorage] implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrContextNotFound is returned when no document is stored for the
	// requested identity.
	ErrContextNotFound = errors.New("context not found")

	// ErrStorageUnavailable is returned when the backend fails with an error
	// classified as transient (lost connection, deadlock, busy database).
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnsupportedDSN is returned when the configured DSN names no known
	// backend.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")

	// ErrNilDatabase is returned when a repository is built without a
	// database connection.
	ErrNilDatabase = errors.New("database connection is nil")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query or statement fails with a
	// non-transient error.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan context row")
)
