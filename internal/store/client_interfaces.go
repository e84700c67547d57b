package store

import (
	"context"

	"github.com/MKhiriev/simbaid-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// QueueRepository is the durable store of queue items on the client device.
//
// Every method is atomic with respect to the persisted state: when a
// mutating call returns nil its effect survives a process crash, and when it
// returns an error nothing was changed. An item is failed once its
// RetryCount reaches maxRetries and pending otherwise.
type QueueRepository interface {
	// Insert persists a new item. A duplicate id yields [ErrQueueItemExists].
	Insert(ctx context.Context, item models.QueueItem) error
	// List returns every item in enqueue order.
	List(ctx context.Context) ([]models.QueueItem, error)
	// ListPending returns pending items in enqueue order.
	ListPending(ctx context.Context, maxRetries int) ([]models.QueueItem, error)
	// ListFailed returns failed items in enqueue order.
	ListFailed(ctx context.Context, maxRetries int) ([]models.QueueItem, error)
	// Delete removes the item and reports whether it was present.
	Delete(ctx context.Context, id string) (bool, error)
	// IncrementRetry adds one to RetryCount, capped at maxRetries, and
	// returns the new value. found is false when the item is absent.
	IncrementRetry(ctx context.Context, id string, maxRetries int) (count int, found bool, err error)
	// ResetRetry sets RetryCount to 0 for the failed items among ids, or for
	// every failed item when ids is empty, and returns the ids it reset.
	ResetRetry(ctx context.Context, maxRetries int, ids ...string) ([]string, error)
	// DeleteFailed removes the failed items among ids, or every failed item
	// when ids is empty, and returns the ids it removed.
	DeleteFailed(ctx context.Context, maxRetries int, ids ...string) ([]string, error)
	// Counts returns pending and failed totals.
	Counts(ctx context.Context, maxRetries int) (models.QueueCounts, error)
	// Close releases the backend and its process lock.
	Close() error
}
