package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrZoneNotFound is returned when the addressed zone does not exist or
	// was deleted.
	ErrZoneNotFound = errors.New("zone was not found")

	// ErrSubscriptionNotFound is returned when the addressed subscription
	// does not exist in the zone.
	ErrSubscriptionNotFound = errors.New("subscription was not found")

	// ErrRetryable marks a storage failure that may succeed when attempted
	// again (connection loss, serialization failure, deadlock). It is always
	// joined with the underlying error.
	ErrRetryable = errors.New("retryable storage error")

	// ErrCorruptedBlob is returned when a persisted buffer or state blob
	// cannot be decoded.
	ErrCorruptedBlob = errors.New("corrupted persisted blob")

	// ErrUnsupportedDSN is returned when a client DSN selects no known
	// key-value backend.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
