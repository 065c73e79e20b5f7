package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when an update or delete matches no row:
	// the record does not exist or belongs to another user.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRecordNotSaved is returned when an insert-or-merge statement
	// completes without returning the stored row.
	ErrRecordNotSaved = errors.New("record was not saved")

	// ErrFingerprintTaken is returned when an update would give a record the
	// fingerprint of another record of the same user.
	ErrFingerprintTaken = errors.New("fingerprint is already used by another record")

	// ErrNothingToUpdate is returned when an update statement would change no
	// column.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan record rows")
)
