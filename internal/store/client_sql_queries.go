// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const queueItemsTable = "queue_items"

var (
	queueItemColumns = []string{"id", "kind", "payload", "enqueued_at", "retry_count"}

	// sqliteBuilder renders "?" placeholders.
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func buildInsertQueueItemQuery(id, kind string, payload []byte, enqueuedAt time.Time) (string, []any, error) {
	return sqliteBuilder.
		Insert(queueItemsTable).
		Columns(queueItemColumns...).
		Values(id, kind, payload, enqueuedAt, 0).
		ToSql()
}

// buildListQueueItemsQuery selects items in enqueue order. A nil filter
// selects every item.
func buildListQueueItemsQuery(filter sq.Sqlizer) (string, []any, error) {
	q := sqliteBuilder.
		Select(queueItemColumns...).
		From(queueItemsTable)
	if filter != nil {
		q = q.Where(filter)
	}
	return q.OrderBy("seq").ToSql()
}

func pendingFilter(maxRetries int) sq.Sqlizer {
	return sq.Lt{"retry_count": maxRetries}
}

// failedFilter matches failed items, narrowed to ids when any are given.
func failedFilter(maxRetries int, ids []string) sq.Sqlizer {
	failed := sq.And{sq.GtOrEq{"retry_count": maxRetries}}
	if len(ids) > 0 {
		failed = append(failed, sq.Eq{"id": ids})
	}
	return failed
}

func buildDeleteQueueItemQuery(id string) (string, []any, error) {
	return sqliteBuilder.
		Delete(queueItemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildIncrementRetryQuery(id string, maxRetries int) (string, []any, error) {
	return sqliteBuilder.
		Update(queueItemsTable).
		Set("retry_count", sq.Expr("MIN(retry_count + 1, ?)", maxRetries)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING retry_count").
		ToSql()
}

func buildResetRetryQuery(maxRetries int, ids []string) (string, []any, error) {
	return sqliteBuilder.
		Update(queueItemsTable).
		Set("retry_count", 0).
		Where(failedFilter(maxRetries, ids)).
		Suffix("RETURNING id").
		ToSql()
}

func buildDeleteFailedQuery(maxRetries int, ids []string) (string, []any, error) {
	return sqliteBuilder.
		Delete(queueItemsTable).
		Where(failedFilter(maxRetries, ids)).
		Suffix("RETURNING id").
		ToSql()
}

func buildCountsQuery(maxRetries int) (string, []any, error) {
	return sqliteBuilder.
		Select().
		Column(sq.Expr("COALESCE(SUM(CASE WHEN retry_count < ? THEN 1 ELSE 0 END), 0)", maxRetries)).
		Column(sq.Expr("COALESCE(SUM(CASE WHEN retry_count >= ? THEN 1 ELSE 0 END), 0)", maxRetries)).
		From(queueItemsTable).
		ToSql()
}
