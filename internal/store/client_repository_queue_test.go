package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/simbaid-sync/internal/config"
	"github.com/MKhiriev/simbaid-sync/internal/crypto"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/models"
)

var queueItemRowColumns = []string{"id", "kind", "payload", "enqueued_at", "retry_count"}

func newTestQueueRepo(t *testing.T, sealer crypto.PayloadSealer) (QueueRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	storeDB := &DB{DB: db, logger: logger.Nop()}
	return NewSQLiteQueueRepository(storeDB, sealer, logger.Nop()), mock
}

func testItem(id string, kind models.Kind, retries int) models.QueueItem {
	return models.QueueItem{
		ID:         id,
		Kind:       kind,
		Payload:    json.RawMessage(`{"id":"` + id + `"}`),
		EnqueuedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		RetryCount: retries,
	}
}

// xorSealer is a reversible stand-in for the passphrase sealer.
type xorSealer struct{}

func (xorSealer) Seal(p []byte) ([]byte, error) { return xor(p), nil }
func (xorSealer) Open(p []byte) ([]byte, error) { return xor(p), nil }
func (xorSealer) Enabled() bool                 { return true }

func xor(p []byte) []byte {
	out := make([]byte, len(p))
	for i, b := range p {
		out[i] = b ^ 0x5A
	}
	return out
}

func TestSQLiteQueueRepository_Insert(t *testing.T) {
	item := testItem("loan_application_1", models.KindLoanApplication, 0)

	tests := []struct {
		name    string
		sealer  crypto.PayloadSealer
		setup   func(mock sqlmock.Sqlmock, payload []byte)
		wantErr error
	}{
		{
			name:   "success: plain payload",
			sealer: crypto.NewNopSealer(),
			setup: func(mock sqlmock.Sqlmock, payload []byte) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO queue_items")).
					WithArgs(item.ID, "loan_application", payload, sqlmock.AnyArg(), 0).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:   "success: sealed payload",
			sealer: xorSealer{},
			setup: func(mock sqlmock.Sqlmock, payload []byte) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO queue_items")).
					WithArgs(item.ID, "loan_application", xor(payload), sqlmock.AnyArg(), 0).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:   "duplicate id",
			sealer: crypto.NewNopSealer(),
			setup: func(mock sqlmock.Sqlmock, _ []byte) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO queue_items")).
					WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})
			},
			wantErr: ErrQueueItemExists,
		},
		{
			name:   "storage failure",
			sealer: crypto.NewNopSealer(),
			setup: func(mock sqlmock.Sqlmock, _ []byte) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO queue_items")).
					WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: ErrQueueStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestQueueRepo(t, tt.sealer)
			tt.setup(mock, item.Payload)

			err := repo.Insert(context.Background(), item)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLiteQueueRepository_ListPending(t *testing.T) {
	repo, mock := newTestQueueRepo(t, xorSealer{})

	first := testItem("loan_application_1", models.KindLoanApplication, 0)
	second := testItem("profile_update_2", models.KindProfileUpdate, 2)

	mock.ExpectQuery(`SELECT id, kind, payload, enqueued_at, retry_count FROM queue_items WHERE retry_count < \? ORDER BY seq`).
		WithArgs(models.MaxRetries).
		WillReturnRows(sqlmock.NewRows(queueItemRowColumns).
			AddRow(first.ID, "loan_application", xor(first.Payload), first.EnqueuedAt, 0).
			AddRow(second.ID, "profile_update", xor(second.Payload), second.EnqueuedAt, 2))

	items, err := repo.ListPending(context.Background(), models.MaxRetries)
	require.NoError(t, err)
	assert.Equal(t, []models.QueueItem{first, second}, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteQueueRepository_ListFailed(t *testing.T) {
	t.Run("filters on retry budget", func(t *testing.T) {
		repo, mock := newTestQueueRepo(t, crypto.NewNopSealer())
		failed := testItem("voice_enrollment_1", models.KindVoiceEnrollment, 3)

		mock.ExpectQuery(`FROM queue_items WHERE \(retry_count >= \?\) ORDER BY seq`).
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows(queueItemRowColumns).
				AddRow(failed.ID, "voice_enrollment", []byte(failed.Payload), failed.EnqueuedAt, 3))

		items, err := repo.ListFailed(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.True(t, items[0].IsFailed(3))
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestQueueRepo(t, crypto.NewNopSealer())
		mock.ExpectQuery("FROM queue_items").WillReturnError(sql.ErrConnDone)

		items, err := repo.ListFailed(context.Background(), 3)
		assert.Nil(t, items)
		assert.ErrorIs(t, err, ErrQueueStorage)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("payload cannot be opened", func(t *testing.T) {
		repo, mock := newTestQueueRepo(t, crypto.NewNopSealer())
		mock.ExpectQuery("FROM queue_items").
			WillReturnRows(sqlmock.NewRows(queueItemRowColumns).
				AddRow("x", "loan_application", []byte{0x01, 0x02}, time.Now(), 3))

		_, err := repo.ListFailed(context.Background(), 3)
		assert.ErrorIs(t, err, ErrPayloadCodec)
	})
}

func TestSQLiteQueueRepository_List_Empty(t *testing.T) {
	repo, mock := newTestQueueRepo(t, crypto.NewNopSealer())
	mock.ExpectQuery(`SELECT id, kind, payload, enqueued_at, retry_count FROM queue_items ORDER BY seq`).
		WillReturnRows(sqlmock.NewRows(queueItemRowColumns))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestSQLiteQueueRepository_Delete(t *testing.T) {
	repo, mock := newTestQueueRepo(t, crypto.NewNopSealer())

	mock.ExpectExec(`DELETE FROM queue_items WHERE id = \?`).
		WithArgs("a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM queue_items WHERE id = \?`).
		WithArgs("a").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), "a")
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteQueueRepository_IncrementRetry(t *testing.T) {
	const incrementSQL = `UPDATE queue_items SET retry_count = MIN\(retry_count \+ 1, \?\) WHERE id = \? RETURNING retry_count`

	t.Run("present item", func(t *testing.T) {
		repo, mock := newTestQueueRepo(t, crypto.NewNopSealer())
		mock.ExpectQuery(incrementSQL).
			WithArgs(3, "a").
			WillReturnRows(sqlmock.NewRows([]string{"retry_count"}).AddRow(2))

		count, found, err := repo.IncrementRetry(context.Background(), "a", 3)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 2, count)
	})

	t.Run("absent item is a no-op", func(t *testing.T) {
		repo, mock := newTestQueueRepo(t, crypto.NewNopSealer())
		mock.ExpectQuery(incrementSQL).
			WithArgs(3, "gone").
			WillReturnRows(sqlmock.NewRows([]string{"retry_count"}))

		count, found, err := repo.IncrementRetry(context.Background(), "gone", 3)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, count)
	})

	t.Run("storage error", func(t *testing.T) {
		repo, mock := newTestQueueRepo(t, crypto.NewNopSealer())
		mock.ExpectQuery(incrementSQL).WillReturnError(errors.New("database is locked"))

		_, _, err := repo.IncrementRetry(context.Background(), "a", 3)
		assert.ErrorIs(t, err, ErrQueueStorage)
	})
}

func TestSQLiteQueueRepository_ResetRetry(t *testing.T) {
	repo, mock := newTestQueueRepo(t, crypto.NewNopSealer())

	mock.ExpectQuery(`UPDATE queue_items SET retry_count = \? WHERE \(retry_count >= \?\) RETURNING id`).
		WithArgs(0, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a").AddRow("b"))
	mock.ExpectQuery(`UPDATE queue_items SET retry_count = \? WHERE \(retry_count >= \? AND id IN \(\?\)\) RETURNING id`).
		WithArgs(0, 3, "b").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := repo.ResetRetry(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	ids, err = repo.ResetRetry(context.Background(), 3, "b")
	require.NoError(t, err)
	assert.Empty(t, ids)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteQueueRepository_DeleteFailed(t *testing.T) {
	repo, mock := newTestQueueRepo(t, crypto.NewNopSealer())

	mock.ExpectQuery(`DELETE FROM queue_items WHERE \(retry_count >= \? AND id IN \(\?,\?\)\) RETURNING id`).
		WithArgs(3, "a", "c").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a"))

	ids, err := repo.DeleteFailed(context.Background(), 3, "a", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteQueueRepository_Counts(t *testing.T) {
	repo, mock := newTestQueueRepo(t, crypto.NewNopSealer())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(CASE WHEN retry_count < ? THEN 1 ELSE 0 END), 0)")).
		WithArgs(3, 3).
		WillReturnRows(sqlmock.NewRows([]string{"pending", "failed"}).AddRow(4, 1))

	counts, err := repo.Counts(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, models.QueueCounts{Pending: 4, Failed: 1}, counts)
	assert.Equal(t, 5, counts.Total())
}

// TestSQLiteQueueRepository_RealFile runs the repository against an actual
// SQLite file with migrations applied.
func TestSQLiteQueueRepository_RealFile(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "queue.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{
		Driver: config.StorageDriverSQLite,
		DB:     config.ClientDB{DSN: dsn},
	}, xorSealer{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	// a second process (or handle) cannot open the same queue
	_, err = NewConnectSQLite(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
	require.ErrorIs(t, err, ErrQueueLocked)

	exerciseQueueRepository(t, storages.QueueRepository)
}
