package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/simbaid-sync/internal/adapter"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
	"github.com/MKhiriev/simbaid-sync/models"
)

const (
	syncFlightKey          = "sync-pending-items"
	defaultDeliveryTimeout = 15 * time.Second
)

// passOutcome is what the single-flight group shares between coalesced
// callers. generation numbers passes in start order.
type passOutcome struct {
	result     models.SyncPassResult
	generation uint64
}

type clientSyncEngine struct {
	queue   ClientQueueService
	remote  adapter.RemoteAdapter
	monitor ConnectivityMonitor

	deliveryTimeout time.Duration

	flight     singleflight.Group
	generation atomic.Uint64
	syncing    atomic.Bool

	mu       sync.RWMutex
	lastSync *time.Time

	triggers sync.WaitGroup

	events *utils.Notifier[models.EngineEvent]
	logger *logger.Logger
	now    func() time.Time
}

// NewClientSyncEngine creates the sync engine. deliveryTimeout bounds a
// single delivery attempt and falls back to 15 seconds when <= 0.
func NewClientSyncEngine(queue ClientQueueService, remote adapter.RemoteAdapter, monitor ConnectivityMonitor,
	deliveryTimeout time.Duration, logger *logger.Logger) ClientSyncEngine {
	if deliveryTimeout <= 0 {
		deliveryTimeout = defaultDeliveryTimeout
	}

	return &clientSyncEngine{
		queue:           queue,
		remote:          remote,
		monitor:         monitor,
		deliveryTimeout: deliveryTimeout,
		events:          utils.NewNotifier[models.EngineEvent](),
		logger:          logger.WithComponent("sync"),
		now:             time.Now,
	}
}

func (e *clientSyncEngine) SyncPendingItems(ctx context.Context) (models.SyncPassResult, error) {
	outcome, err := e.sync(ctx)
	return outcome.result, err
}

func (e *clientSyncEngine) RetryFailedItems(ctx context.Context) (models.SyncPassResult, error) {
	reset, err := e.queue.ResetAllFailed(ctx)
	if err != nil {
		return models.SyncPassResult{}, err
	}

	return e.syncAfterReset(ctx, len(reset))
}

func (e *clientSyncEngine) RetryFailedItem(ctx context.Context, id string) (models.SyncPassResult, error) {
	reset, err := e.queue.ResetRetry(ctx, id)
	if err != nil {
		return models.SyncPassResult{}, err
	}
	if len(reset) == 0 {
		return models.SyncPassResult{}, fmt.Errorf("%w: %s", ErrItemNotFailed, id)
	}

	return e.syncAfterReset(ctx, len(reset))
}

// syncAfterReset runs a pass whose snapshot is guaranteed to include the
// items just reset. A caller that coalesced into a pass started before the
// reset runs one follow-up pass.
func (e *clientSyncEngine) syncAfterReset(ctx context.Context, resetCount int) (models.SyncPassResult, error) {
	resetGeneration := e.generation.Load()
	e.logger.Info().Int("reset", resetCount).Msg("failed items re-admitted, syncing")

	outcome, err := e.sync(ctx)
	if err != nil || outcome.result.Skipped || outcome.generation > resetGeneration {
		return outcome.result, err
	}

	outcome, err = e.sync(ctx)
	return outcome.result, err
}

func (e *clientSyncEngine) ClearFailedItems(ctx context.Context) ([]string, error) {
	removed, err := e.queue.RemoveAllFailed(ctx)
	if err != nil {
		return nil, err
	}

	e.logger.Info().Int("removed", len(removed)).Msg("failed items cleared")
	return removed, nil
}

func (e *clientSyncEngine) TriggerSync(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	e.triggers.Add(1)
	go func() {
		defer e.triggers.Done()

		if _, err := e.SyncPendingItems(ctx); err != nil {
			e.logger.Err(err).Msg("triggered sync pass finished with storage errors")
		}
	}()
}

func (e *clientSyncEngine) Wait() {
	e.triggers.Wait()
}

func (e *clientSyncEngine) IsSyncing() bool {
	return e.syncing.Load()
}

func (e *clientSyncEngine) LastSyncTime() *time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.lastSync == nil {
		return nil
	}
	t := *e.lastSync
	return &t
}

func (e *clientSyncEngine) Subscribe(buf int) (<-chan models.EngineEvent, func()) {
	return e.events.Subscribe(buf)
}

// sync joins the in-flight pass or starts a new one. The pass itself runs on
// a context detached from the caller so it always completes.
func (e *clientSyncEngine) sync(ctx context.Context) (passOutcome, error) {
	if !e.monitor.IsOnline() {
		now := e.now()
		e.logger.Debug().Msg("offline, sync pass skipped")
		return passOutcome{result: models.SyncPassResult{
			StartedAt:  now,
			FinishedAt: now,
			Skipped:    true,
			SkipReason: models.SkipReasonOffline,
		}}, nil
	}

	passCtx := context.WithoutCancel(ctx)
	ch := e.flight.DoChan(syncFlightKey, func() (any, error) {
		return e.runPass(passCtx)
	})

	select {
	case res := <-ch:
		outcome, _ := res.Val.(passOutcome)
		if res.Shared {
			e.logger.Debug().Uint64("generation", outcome.generation).Msg("joined in-flight sync pass")
		}
		return outcome, res.Err
	case <-ctx.Done():
		return passOutcome{}, ctx.Err()
	}
}

func (e *clientSyncEngine) runPass(ctx context.Context) (passOutcome, error) {
	outcome := passOutcome{generation: e.generation.Add(1)}
	result := &outcome.result
	result.StartedAt = e.now()

	e.syncing.Store(true)
	e.events.Publish(models.EngineEvent{Syncing: true})

	log := e.logger.With().Uint64("generation", outcome.generation).Logger()

	var errs []error
	items, err := e.queue.ListPending(ctx)
	if err != nil {
		errs = append(errs, err)
	}
	result.Attempted = len(items)
	log.Info().Int("items", len(items)).Msg("sync pass started")

	for _, item := range items {
		if err = e.deliverItem(ctx, item, result); err != nil {
			errs = append(errs, err)
		}
	}

	e.finish(result)

	log.Info().
		Int("delivered", result.Delivered).
		Int("retried", result.Retried).
		Int("exhausted", result.Exhausted).
		Dur("took", result.Duration()).
		Msg("sync pass finished")

	if err = errors.Join(errs...); err != nil {
		return outcome, fmt.Errorf("%w: %w", ErrSyncPass, err)
	}
	return outcome, nil
}

// deliverItem makes one delivery attempt and applies its outcome to the
// store. Only storage errors are returned.
func (e *clientSyncEngine) deliverItem(ctx context.Context, item models.QueueItem, result *models.SyncPassResult) error {
	deliverCtx, cancel := context.WithTimeout(ctx, e.deliveryTimeout)
	err := e.remote.Deliver(deliverCtx, models.NewDeliveryRequest(item))
	cancel()

	if err == nil {
		if err = e.queue.MarkDelivered(ctx, item.ID); err != nil {
			return err
		}
		result.Delivered++
		return nil
	}

	deliveryErr := mapAdapterError(err)
	count, found, err := e.queue.IncrementRetry(ctx, item.ID)
	if err != nil {
		return err
	}
	if !found {
		e.logger.Debug().Str("id", item.ID).Msg("item removed during the pass")
		return nil
	}

	if count >= e.queue.MaxRetries() {
		result.Exhausted++
		e.logger.Warn().
			Err(deliveryErr).
			Str("id", item.ID).
			Str("kind", item.Kind.String()).
			Str("reason", failureReason(deliveryErr)).
			Int("retries", count).
			Msg("delivery retries exhausted, item failed")
		return nil
	}

	result.Retried++
	e.logger.Debug().
		Err(deliveryErr).
		Str("id", item.ID).
		Str("reason", failureReason(deliveryErr)).
		Int("retries", count).
		Msg("delivery failed, will retry")

	return nil
}

func (e *clientSyncEngine) finish(result *models.SyncPassResult) {
	result.FinishedAt = e.now()

	e.mu.Lock()
	finished := result.FinishedAt
	e.lastSync = &finished
	e.mu.Unlock()

	e.syncing.Store(false)

	snapshot := *result
	e.events.Publish(models.EngineEvent{Syncing: false, Result: &snapshot})
}
