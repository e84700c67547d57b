package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/simbaid-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ConnectivityMonitor is the reachability signal the engine, the status
// service and the sync job consume.
type ConnectivityMonitor interface {
	// IsOnline returns the current signal.
	IsOnline() bool

	// Subscribe streams one event per reachability edge until cancel is
	// called.
	Subscribe(buf int) (<-chan models.ConnectivityEvent, func())
}

// ClientQueueService is the single owner of the durable queue on the
// device. All mutations are serialized and persisted before the call
// returns; a change event is published only after a successful persist.
type ClientQueueService interface {
	// Enqueue stores a new pending item for kind and returns it with its
	// assigned id. Returns ErrInvalidKind or ErrInvalidPayload for bad input
	// and a wrapped storage error when the item could not be persisted.
	Enqueue(ctx context.Context, kind models.Kind, payload json.RawMessage) (models.QueueItem, error)

	// ListPending returns a snapshot of pending items in enqueue order.
	ListPending(ctx context.Context) ([]models.QueueItem, error)

	// ListFailed returns the items that exhausted their retry budget.
	ListFailed(ctx context.Context) ([]models.QueueItem, error)

	// MarkDelivered removes a delivered item. Removing an absent item is not
	// an error.
	MarkDelivered(ctx context.Context, id string) error

	// IncrementRetry records one failed attempt and returns the new retry
	// count. found is false when the item is absent; nothing changes then.
	IncrementRetry(ctx context.Context, id string) (count int, found bool, err error)

	// ResetRetry re-admits the failed items among ids to the pending
	// population and returns the ids actually reset.
	ResetRetry(ctx context.Context, ids ...string) ([]string, error)

	// ResetAllFailed re-admits every failed item.
	ResetAllFailed(ctx context.Context) ([]string, error)

	// RemoveFailed permanently deletes the failed items among ids and
	// returns the ids actually removed.
	RemoveFailed(ctx context.Context, ids ...string) ([]string, error)

	// RemoveAllFailed permanently deletes every failed item.
	RemoveAllFailed(ctx context.Context) ([]string, error)

	// Counts returns the current pending and failed totals.
	Counts(ctx context.Context) (models.QueueCounts, error)

	// MaxRetries returns the retry budget items are classified with.
	MaxRetries() int

	// Subscribe streams queue change events until cancel is called.
	Subscribe(buf int) (<-chan models.QueueEvent, func())
}

// ClientSyncEngine drives delivery of pending items to the remote service
// and applies the retry policy.
type ClientSyncEngine interface {
	// SyncPendingItems runs one sync pass over a snapshot of the pending
	// items. It does nothing while offline. At most one pass runs at a time:
	// a call made while a pass is in flight waits for that pass and returns
	// its result. A started pass is never interrupted; canceling ctx only
	// stops the caller from waiting.
	//
	// Delivery failures are recorded as retries and never returned. The
	// returned error joins storage failures hit during the pass.
	SyncPendingItems(ctx context.Context) (models.SyncPassResult, error)

	// RetryFailedItems resets every failed item and, when online, runs a
	// pass that includes them.
	RetryFailedItems(ctx context.Context) (models.SyncPassResult, error)

	// RetryFailedItem is RetryFailedItems for a single item. Returns
	// ErrItemNotFailed when id is not a failed item.
	RetryFailedItem(ctx context.Context, id string) (models.SyncPassResult, error)

	// ClearFailedItems deletes every failed item and returns their ids.
	ClearFailedItems(ctx context.Context) ([]string, error)

	// TriggerSync starts SyncPendingItems in the background.
	TriggerSync(ctx context.Context)

	// Wait blocks until every sync started by TriggerSync has returned.
	Wait()

	// IsSyncing reports whether a pass is in flight.
	IsSyncing() bool

	// LastSyncTime returns the completion time of the latest pass, or nil
	// before the first one.
	LastSyncTime() *time.Time

	// Subscribe streams pass start and completion events.
	Subscribe(buf int) (<-chan models.EngineEvent, func())
}

// ClientStatusService derives the user-facing [models.SyncStatus].
type ClientStatusService interface {
	// GetStatus computes the status from the queue, the monitor and the
	// engine at call time.
	GetStatus(ctx context.Context) (models.SyncStatus, error)

	// Subscribe streams a freshly computed status after every change of its
	// inputs. Requires Run to be running.
	Subscribe(buf int) (<-chan models.SyncStatus, func())

	// Run recomputes and publishes the status on every input change until
	// ctx is done.
	Run(ctx context.Context) error
}

// ClientWalletService is the producer side of the queue: wallet features
// validate their mutation and hand it to the queue for delivery.
type ClientWalletService interface {
	SubmitLoanApplication(ctx context.Context, loan models.LoanApplication) (models.QueueItem, error)
	RequestCredential(ctx context.Context, req models.CredentialRequest) (models.QueueItem, error)

	// EnrollVoice hashes the voice embedding, drops the raw embedding and
	// queues the enrollment with its hash.
	EnrollVoice(ctx context.Context, enrollment models.VoiceEnrollment) (models.QueueItem, error)

	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.QueueItem, error)

	// Enqueue queues a mutation of an extension kind.
	Enqueue(ctx context.Context, kind models.Kind, payload json.RawMessage) (models.QueueItem, error)
}

// ClientSyncJob runs sync passes on a cron schedule and whenever the device
// comes back online.
type ClientSyncJob interface {
	// Start launches the background scheduler. Any previously running job
	// is stopped before the new one begins.
	Start(ctx context.Context) error

	// Stop stops the scheduler and blocks until it and any pass it started
	// have returned.
	Stop()

	// Run is Start followed by Stop once ctx is done.
	Run(ctx context.Context) error
}
