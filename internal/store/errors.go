package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAlreadyExists is returned when an INSERT violates a unique
	// constraint: a duplicate email, like or active wish.
	ErrAlreadyExists = errors.New("row already exists")

	// ErrReferenceNotFound is returned when a foreign key points to a row
	// that does not exist, e.g. attaching an unknown actor.
	ErrReferenceNotFound = errors.New("referenced row does not exist")

	// ErrUnavailable is returned for connection loss, deadlocks and
	// serialization failures. Operations are not retried.
	ErrUnavailable = errors.New("database temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned for a DSN whose driver is unknown.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
