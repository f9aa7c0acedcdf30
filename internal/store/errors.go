package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a lookup by storage reference
	// matches no registered user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrItemAlreadyExists is returned when an INSERT violates the per-user
	// (tmdb_id, media_type) uniqueness constraint: the same title is
	// already on the owner's list.
	ErrItemAlreadyExists = errors.New("item already exists in list")

	// ErrItemNotFound is returned when an update or delete targets an item
	// that does not exist for the given owner.
	ErrItemNotFound = errors.New("item was not found in list")

	// ErrNothingToUpdate is returned when a partial update carries none of
	// the updatable fields.
	ErrNothingToUpdate = errors.New("no fields to update")

	// ErrInvalidItemData is returned when the database rejects a row on a
	// CHECK constraint (rating range, media type). The service layer
	// validates first, so hitting this means a validation gap.
	ErrInvalidItemData = errors.New("item data violates constraints")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. no settable fields or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan list item row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan list item rows")
)
