package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when registration fails because the
	// username is already taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user has the requested username.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEntryNotFound is returned when no entry has the requested id.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrEntryForbidden is returned when the entry exists but belongs to
	// another user.
	ErrEntryForbidden = errors.New("entry belongs to another user")

	// ErrUserReferenceViolation is returned when an entry is written for a
	// user id that does not exist. It indicates a caller bug.
	ErrUserReferenceViolation = errors.New("entry references a missing user")

	// ErrStoreUnavailable wraps connectivity failures of the backend.
	ErrStoreUnavailable = errors.New("store is unavailable")

	// ErrUnsupportedDSN is returned for a connection string no driver accepts.
	ErrUnsupportedDSN = errors.New("unsupported database connection string")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
