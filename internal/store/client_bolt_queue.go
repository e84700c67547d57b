// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/simbaid-sync/internal/crypto"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/models"
)

var (
	boltBucket   = []byte("sync")
	boltQueueKey = []byte("simbaid_sync_queue")
)

// boltOpenTimeout bounds the wait for the bbolt file lock.
const boltOpenTimeout = time.Second

// boltRecord is the persisted form of a queue item. Exactly one of Payload
// and SealedPayload is set.
type boltRecord struct {
	ID            string          `json:"id"`
	Kind          models.Kind     `json:"kind"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	SealedPayload []byte          `json:"sealedPayload,omitempty"`
	EnqueuedAt    time.Time       `json:"enqueuedAt"`
	RetryCount    int             `json:"retryCount"`
}

// boltQueueRepository keeps the whole queue as one JSON array under a single
// named key, rewritten in one bbolt transaction per mutation.
type boltQueueRepository struct {
	db     *bbolt.DB
	sealer crypto.PayloadSealer
	logger *logger.Logger
}

// NewBoltQueueRepository opens (or creates) the bbolt queue file at path.
// bbolt holds an exclusive flock on the file; a second process gets
// [ErrQueueLocked].
func NewBoltQueueRepository(path string, sealer crypto.PayloadSealer, log *logger.Logger) (QueueRepository, error) {
	if err := createLocalDBDirIfNotExists(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueueStorage, err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		if errors.Is(err, bbolt.ErrTimeout) {
			return nil, fmt.Errorf("%w: %s", ErrQueueLocked, path)
		}
		log.Err(err).Str("func", "NewBoltQueueRepository").Str("path", path).Msg("error opening bolt queue")
		return nil, fmt.Errorf("%w: open %s: %w", ErrQueueStorage, path, err)
	}

	if err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: init bucket: %w", ErrQueueStorage, err)
	}

	log.Debug().Str("func", "NewBoltQueueRepository").Str("path", path).Msg("opened bolt queue")

	return &boltQueueRepository{db: db, sealer: sealer, logger: log}, nil
}

func (r *boltQueueRepository) Insert(ctx context.Context, item models.QueueItem) error {
	rec, err := r.toRecord(item)
	if err != nil {
		return err
	}

	return r.update(ctx, "boltQueueRepository.Insert", func(records []boltRecord) ([]boltRecord, error) {
		if slices.ContainsFunc(records, func(r boltRecord) bool { return r.ID == item.ID }) {
			return nil, fmt.Errorf("%w: %s", ErrQueueItemExists, item.ID)
		}
		return append(records, rec), nil
	})
}

func (r *boltQueueRepository) List(ctx context.Context) ([]models.QueueItem, error) {
	return r.list(ctx, func(boltRecord) bool { return true })
}

func (r *boltQueueRepository) ListPending(ctx context.Context, maxRetries int) ([]models.QueueItem, error) {
	return r.list(ctx, func(rec boltRecord) bool { return rec.RetryCount < maxRetries })
}

func (r *boltQueueRepository) ListFailed(ctx context.Context, maxRetries int) ([]models.QueueItem, error) {
	return r.list(ctx, func(rec boltRecord) bool { return rec.RetryCount >= maxRetries })
}

func (r *boltQueueRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := r.update(ctx, "boltQueueRepository.Delete", func(records []boltRecord) ([]boltRecord, error) {
		before := len(records)
		records = slices.DeleteFunc(records, func(rec boltRecord) bool { return rec.ID == id })
		deleted = len(records) < before
		return records, nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (r *boltQueueRepository) IncrementRetry(ctx context.Context, id string, maxRetries int) (int, bool, error) {
	var (
		count int
		found bool
	)
	err := r.update(ctx, "boltQueueRepository.IncrementRetry", func(records []boltRecord) ([]boltRecord, error) {
		i := slices.IndexFunc(records, func(rec boltRecord) bool { return rec.ID == id })
		if i < 0 {
			return records, nil
		}
		found = true
		records[i].RetryCount = min(records[i].RetryCount+1, maxRetries)
		count = records[i].RetryCount
		return records, nil
	})
	if err != nil {
		return 0, false, err
	}
	return count, found, nil
}

func (r *boltQueueRepository) ResetRetry(ctx context.Context, maxRetries int, ids ...string) ([]string, error) {
	var reset []string
	err := r.update(ctx, "boltQueueRepository.ResetRetry", func(records []boltRecord) ([]boltRecord, error) {
		for i := range records {
			if isTargetedFailed(records[i], maxRetries, ids) {
				records[i].RetryCount = 0
				reset = append(reset, records[i].ID)
			}
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return reset, nil
}

func (r *boltQueueRepository) DeleteFailed(ctx context.Context, maxRetries int, ids ...string) ([]string, error) {
	var removed []string
	err := r.update(ctx, "boltQueueRepository.DeleteFailed", func(records []boltRecord) ([]boltRecord, error) {
		return slices.DeleteFunc(records, func(rec boltRecord) bool {
			if isTargetedFailed(rec, maxRetries, ids) {
				removed = append(removed, rec.ID)
				return true
			}
			return false
		}), nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (r *boltQueueRepository) Counts(ctx context.Context, maxRetries int) (models.QueueCounts, error) {
	var counts models.QueueCounts
	err := r.view(ctx, "boltQueueRepository.Counts", func(records []boltRecord) error {
		for _, rec := range records {
			if rec.RetryCount >= maxRetries {
				counts.Failed++
			} else {
				counts.Pending++
			}
		}
		return nil
	})
	return counts, err
}

func (r *boltQueueRepository) Close() error {
	return r.db.Close()
}

func isTargetedFailed(rec boltRecord, maxRetries int, ids []string) bool {
	if rec.RetryCount < maxRetries {
		return false
	}
	return len(ids) == 0 || slices.Contains(ids, rec.ID)
}

func (r *boltQueueRepository) list(ctx context.Context, keep func(boltRecord) bool) ([]models.QueueItem, error) {
	items := make([]models.QueueItem, 0, 16)
	err := r.view(ctx, "boltQueueRepository.list", func(records []boltRecord) error {
		for _, rec := range records {
			if !keep(rec) {
				continue
			}
			item, err := r.fromRecord(rec)
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// update loads the record, applies mutate and writes the result back in one
// transaction. An error from mutate rolls the transaction back.
func (r *boltQueueRepository) update(ctx context.Context, fn string, mutate func([]boltRecord) ([]boltRecord, error)) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrQueueStorage, err)
	}

	err := r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(boltBucket)
		records, err := decodeRecords(b.Get(boltQueueKey))
		if err != nil {
			return err
		}

		if records, err = mutate(records); err != nil {
			return err
		}

		data, err := json.Marshal(records)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPayloadCodec, err)
		}
		return b.Put(boltQueueKey, data)
	})
	if err != nil {
		if errors.Is(err, ErrQueueItemExists) {
			return err
		}
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to update bolt queue")
		return fmt.Errorf("%w: %w", ErrQueueStorage, err)
	}
	return nil
}

func (r *boltQueueRepository) view(ctx context.Context, fn string, read func([]boltRecord) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrQueueStorage, err)
	}

	err := r.db.View(func(tx *bbolt.Tx) error {
		records, err := decodeRecords(tx.Bucket(boltBucket).Get(boltQueueKey))
		if err != nil {
			return err
		}
		return read(records)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to read bolt queue")
		return fmt.Errorf("%w: %w", ErrQueueStorage, err)
	}
	return nil
}

func decodeRecords(data []byte) ([]boltRecord, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var records []boltRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode queue record: %w", ErrPayloadCodec, err)
	}
	return records, nil
}

func (r *boltQueueRepository) toRecord(item models.QueueItem) (boltRecord, error) {
	rec := boltRecord{
		ID:         item.ID,
		Kind:       item.Kind,
		EnqueuedAt: item.EnqueuedAt.UTC(),
		RetryCount: item.RetryCount,
	}

	if !r.sealer.Enabled() {
		rec.Payload = item.Payload
		return rec, nil
	}

	sealed, err := r.sealer.Seal(item.Payload)
	if err != nil {
		return boltRecord{}, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrPayloadCodec, err)
	}
	rec.SealedPayload = sealed
	return rec, nil
}

func (r *boltQueueRepository) fromRecord(rec boltRecord) (models.QueueItem, error) {
	item := models.QueueItem{
		ID:         rec.ID,
		Kind:       rec.Kind,
		Payload:    rec.Payload,
		EnqueuedAt: rec.EnqueuedAt,
		RetryCount: rec.RetryCount,
	}

	if rec.SealedPayload != nil {
		if !r.sealer.Enabled() {
			return models.QueueItem{}, fmt.Errorf("%w: item %s is sealed but no passphrase is configured", ErrPayloadCodec, rec.ID)
		}
		payload, err := r.sealer.Open(rec.SealedPayload)
		if err != nil {
			return models.QueueItem{}, fmt.Errorf("%w: item %s: %w", ErrPayloadCodec, rec.ID, err)
		}
		item.Payload = payload
	}
	return item, nil
}
