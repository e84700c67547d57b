package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrQueueStorage wraps every failure of the local queue backend. A
	// mutating call that returns it did not durably take effect.
	ErrQueueStorage = errors.New("queue storage error")

	// ErrQueueItemNotFound is returned when a targeted queue item is absent.
	ErrQueueItemNotFound = errors.New("queue item was not found")

	// ErrQueueItemExists is returned when an item with the same id is
	// already stored.
	ErrQueueItemExists = errors.New("queue item already exists")

	// ErrQueueLocked is returned when another process holds the queue file.
	ErrQueueLocked = errors.New("queue is locked by another process")

	// ErrUnknownDriver is returned for an unsupported storage driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrDeliveryConflict is returned when an item id is re-delivered with a
	// payload that differs from the one stored first.
	ErrDeliveryConflict = errors.New("delivery conflicts with a stored item")

	// ErrTemporarilyUnavailable is returned when the database failed with an
	// error that may clear up on a later attempt.
	ErrTemporarilyUnavailable = errors.New("database temporarily unavailable")

	// ErrDeliveryNotSaved is returned when an insert of a delivery neither
	// stored a row nor found an existing one.
	ErrDeliveryNotSaved = errors.New("delivery was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrPayloadCodec is returned when a payload cannot be sealed, opened or
	// (de)serialized.
	ErrPayloadCodec = errors.New("failed to encode queue payload")
)
