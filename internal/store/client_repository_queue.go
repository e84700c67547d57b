package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/simbaid-sync/internal/crypto"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/models"
)

// sqliteQueueRepository is the SQLite-backed [QueueRepository]. Rows live in
// "queue_items"; the autoincrement seq column keeps enqueue order.
type sqliteQueueRepository struct {
	*DB
	sealer crypto.PayloadSealer
	logger *logger.Logger
}

// NewSQLiteQueueRepository returns a [QueueRepository] over db. Payloads are
// passed through sealer on the way in and out.
func NewSQLiteQueueRepository(db *DB, sealer crypto.PayloadSealer, logger *logger.Logger) QueueRepository {
	return &sqliteQueueRepository{
		DB:     db,
		sealer: sealer,
		logger: logger,
	}
}

func (r *sqliteQueueRepository) Insert(ctx context.Context, item models.QueueItem) error {
	log := logger.FromContext(ctx)

	payload, err := r.sealer.Seal(item.Payload)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrPayloadCodec, err)
	}

	query, args, err := buildInsertQueueItemQuery(item.ID, item.Kind.String(), payload, item.EnqueuedAt.UTC())
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		if isSQLiteUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrQueueItemExists, item.ID)
		}
		log.Err(err).
			Str("func", "sqliteQueueRepository.Insert").
			Str("id", item.ID).
			Msg("failed to insert queue item")
		return fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrExecutingStatement, err)
	}

	return nil
}

func (r *sqliteQueueRepository) List(ctx context.Context) ([]models.QueueItem, error) {
	return r.list(ctx, "sqliteQueueRepository.List", nil, 0)
}

func (r *sqliteQueueRepository) ListPending(ctx context.Context, maxRetries int) ([]models.QueueItem, error) {
	return r.list(ctx, "sqliteQueueRepository.ListPending", pendingFilter(maxRetries), maxRetries)
}

func (r *sqliteQueueRepository) ListFailed(ctx context.Context, maxRetries int) ([]models.QueueItem, error) {
	return r.list(ctx, "sqliteQueueRepository.ListFailed", failedFilter(maxRetries, nil), maxRetries)
}

func (r *sqliteQueueRepository) list(ctx context.Context, fn string, filter sq.Sqlizer, maxRetries int) ([]models.QueueItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQueueItemsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int("max_retries", maxRetries).
			Msg("failed to query queue items")
		return nil, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.QueueItem, 0, 16)

	for rows.Next() {
		var (
			item    models.QueueItem
			kind    string
			payload []byte
		)
		if scanErr := rows.Scan(&item.ID, &kind, &payload, &item.EnqueuedAt, &item.RetryCount); scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan queue item row")
			return nil, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrScanningRow, scanErr)
		}

		item.Kind = models.Kind(kind)
		if item.Payload, err = r.sealer.Open(payload); err != nil {
			log.Err(err).Str("func", fn).Str("id", item.ID).Msg("failed to open queue item payload")
			return nil, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrPayloadCodec, err)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *sqliteQueueRepository) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQueueItemQuery(id)
	if err != nil {
		return false, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqliteQueueRepository.Delete").Str("id", id).Msg("failed to delete queue item")
		return false, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrQueueStorage, err)
	}

	return affected > 0, nil
}

func (r *sqliteQueueRepository) IncrementRetry(ctx context.Context, id string, maxRetries int) (int, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildIncrementRetryQuery(id, maxRetries)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		log.Err(err).Str("func", "sqliteQueueRepository.IncrementRetry").Str("id", id).Msg("failed to increment retry count")
		return 0, false, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrExecutingStatement, err)
	}

	return count, true, nil
}

func (r *sqliteQueueRepository) ResetRetry(ctx context.Context, maxRetries int, ids ...string) ([]string, error) {
	query, args, err := buildResetRetryQuery(maxRetries, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrBuildingSQLQuery, err)
	}
	return r.returningIDs(ctx, "sqliteQueueRepository.ResetRetry", query, args)
}

func (r *sqliteQueueRepository) DeleteFailed(ctx context.Context, maxRetries int, ids ...string) ([]string, error) {
	query, args, err := buildDeleteFailedQuery(maxRetries, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrBuildingSQLQuery, err)
	}
	return r.returningIDs(ctx, "sqliteQueueRepository.DeleteFailed", query, args)
}

// returningIDs runs a single "... RETURNING id" statement and collects the ids.
func (r *sqliteQueueRepository) returningIDs(ctx context.Context, fn, query string, args []any) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute statement")
		return nil, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrExecutingStatement, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrScanningRows, err)
	}

	return ids, nil
}

func (r *sqliteQueueRepository) Counts(ctx context.Context, maxRetries int) (models.QueueCounts, error) {
	query, args, err := buildCountsQuery(maxRetries)
	if err != nil {
		return models.QueueCounts{}, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrBuildingSQLQuery, err)
	}

	var counts models.QueueCounts
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&counts.Pending, &counts.Failed); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqliteQueueRepository.Counts").Msg("failed to count queue items")
		return models.QueueCounts{}, fmt.Errorf("%w: %w: %w", ErrQueueStorage, ErrExecutingQuery, err)
	}

	return counts, nil
}

func (r *sqliteQueueRepository) Close() error {
	return r.DB.Close()
}
