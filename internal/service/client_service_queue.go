// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/store"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
	"github.com/MKhiriev/simbaid-sync/internal/validators"
	"github.com/MKhiriev/simbaid-sync/models"
)

type clientQueueService struct {
	repo       store.QueueRepository
	ids        *utils.UUIDGenerator
	validator  validators.Validator
	maxRetries int

	// mu serializes every mutation of the store.
	mu sync.Mutex

	events *utils.Notifier[models.QueueEvent]
	logger *logger.Logger
	now    func() time.Time
}

// NewClientQueueService wraps repo with id assignment, the retry budget and
// change notifications. maxRetries <= 0 falls back to [models.MaxRetries].
func NewClientQueueService(repo store.QueueRepository, maxRetries int, logger *logger.Logger) ClientQueueService {
	if maxRetries <= 0 {
		maxRetries = models.MaxRetries
	}

	return &clientQueueService{
		repo:       repo,
		ids:        utils.NewUUIDGenerator(),
		validator:  validators.NewWalletValidator(),
		maxRetries: maxRetries,
		events:     utils.NewNotifier[models.QueueEvent](),
		logger:     logger.WithComponent("queue"),
		now:        time.Now,
	}
}

func (q *clientQueueService) Enqueue(ctx context.Context, kind models.Kind, payload json.RawMessage) (models.QueueItem, error) {
	if err := q.validator.Validate(ctx, kind); err != nil {
		return models.QueueItem{}, fmt.Errorf("%w: %q: %w", ErrInvalidKind, kind, err)
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return models.QueueItem{}, ErrInvalidPayload
	}

	item := models.QueueItem{
		ID:         q.ids.GenerateWithPrefix(kind.String()),
		Kind:       kind,
		Payload:    append(json.RawMessage(nil), payload...),
		EnqueuedAt: q.now().UTC(),
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.repo.Insert(ctx, item); err != nil {
		q.logger.Err(err).Str("kind", kind.String()).Msg("enqueue failed")
		return models.QueueItem{}, fmt.Errorf("error enqueuing %s item: %w", kind, err)
	}

	q.logger.Debug().Str("id", item.ID).Str("kind", kind.String()).Msg("item enqueued")
	q.publish(models.QueueEventEnqueued, item.ID)

	return item, nil
}

func (q *clientQueueService) ListPending(ctx context.Context) ([]models.QueueItem, error) {
	items, err := q.repo.ListPending(ctx, q.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("error listing pending items: %w", err)
	}
	return items, nil
}

func (q *clientQueueService) ListFailed(ctx context.Context) ([]models.QueueItem, error) {
	items, err := q.repo.ListFailed(ctx, q.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("error listing failed items: %w", err)
	}
	return items, nil
}

func (q *clientQueueService) MarkDelivered(ctx context.Context, id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	deleted, err := q.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error marking %s delivered: %w", id, err)
	}
	if deleted {
		q.publish(models.QueueEventDelivered, id)
	}

	return nil
}

func (q *clientQueueService) IncrementRetry(ctx context.Context, id string) (int, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	count, found, err := q.repo.IncrementRetry(ctx, id, q.maxRetries)
	if err != nil {
		return 0, false, fmt.Errorf("error incrementing retry of %s: %w", id, err)
	}
	if found {
		q.publish(models.QueueEventRetried, id)
	}

	return count, found, nil
}

func (q *clientQueueService) ResetRetry(ctx context.Context, ids ...string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return q.resetRetry(ctx, ids...)
}

func (q *clientQueueService) ResetAllFailed(ctx context.Context) ([]string, error) {
	return q.resetRetry(ctx)
}

func (q *clientQueueService) resetRetry(ctx context.Context, ids ...string) ([]string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	reset, err := q.repo.ResetRetry(ctx, q.maxRetries, ids...)
	if err != nil {
		return nil, fmt.Errorf("error resetting failed items: %w", err)
	}
	if len(reset) > 0 {
		q.logger.Info().Strs("ids", reset).Msg("failed items re-admitted")
		q.publish(models.QueueEventReset, reset...)
	}

	return reset, nil
}

func (q *clientQueueService) RemoveFailed(ctx context.Context, ids ...string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return q.removeFailed(ctx, ids...)
}

func (q *clientQueueService) RemoveAllFailed(ctx context.Context) ([]string, error) {
	return q.removeFailed(ctx)
}

func (q *clientQueueService) removeFailed(ctx context.Context, ids ...string) ([]string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	removed, err := q.repo.DeleteFailed(ctx, q.maxRetries, ids...)
	if err != nil {
		return nil, fmt.Errorf("error removing failed items: %w", err)
	}
	if len(removed) > 0 {
		q.logger.Info().Strs("ids", removed).Msg("failed items removed")
		q.publish(models.QueueEventRemoved, removed...)
	}

	return removed, nil
}

func (q *clientQueueService) Counts(ctx context.Context) (models.QueueCounts, error) {
	counts, err := q.repo.Counts(ctx, q.maxRetries)
	if err != nil {
		return models.QueueCounts{}, fmt.Errorf("error counting items: %w", err)
	}
	return counts, nil
}

func (q *clientQueueService) MaxRetries() int {
	return q.maxRetries
}

func (q *clientQueueService) Subscribe(buf int) (<-chan models.QueueEvent, func()) {
	return q.events.Subscribe(buf)
}

func (q *clientQueueService) publish(t models.QueueEventType, ids ...string) {
	q.events.Publish(models.QueueEvent{Type: t, IDs: ids, At: q.now()})
}
