package store

import "errors"

// Sentinel errors returned by registry methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when no record has the requested identifier.
	ErrNotFound = errors.New("asset was not found")

	// ErrDuplicateIdentifier is returned by Insert when a record with the
	// same identifier already exists.
	ErrDuplicateIdentifier = errors.New("asset identifier already exists")

	// ErrInvalidRecord is returned when a record would break the registry
	// invariants: a malformed identifier, an empty owner, an invalid lock
	// state or an identifier change inside Mutate.
	ErrInvalidRecord = errors.New("invalid asset record")
)

// Low-level database operation errors. These are returned (or wrapped) by
// registry methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
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
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan asset row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan asset rows")

	// ErrSealing is returned when a shielded column cannot be sealed or
	// opened with the configured seal key.
	ErrSealing = errors.New("failed to seal shielded column")
)
