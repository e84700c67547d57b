package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/models"
)

func newTestDeliveryRepo(t *testing.T) (DeliveryRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	storeDB := &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
	return NewDeliveryRepository(storeDB, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testDelivery() models.Delivery {
	return models.Delivery{
		DeviceID:   "device-1",
		ItemID:     "loan_application_1",
		Kind:       models.KindLoanApplication,
		Payload:    json.RawMessage(`{"amount":25000}`),
		Attempt:    1,
		ReceivedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveDelivery(t *testing.T) {
	d := testDelivery()
	stored := time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setup         func(mock sqlmock.Sqlmock)
		wantErr       error
		wantDuplicate bool
		wantAt        time.Time
	}{
		{
			name: "first delivery is stored",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO deliveries").
					WithArgs(d.DeviceID, d.ItemID, "loan_application", []byte(d.Payload), "hash", 1, d.ReceivedAt).
					WillReturnRows(sqlmock.NewRows([]string{"received_at"}).AddRow(d.ReceivedAt))
			},
			wantAt: d.ReceivedAt,
		},
		{
			name: "re-delivery with the same payload is a duplicate",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO deliveries").
					WillReturnRows(sqlmock.NewRows([]string{"received_at"}))
				mock.ExpectQuery("SELECT payload_hash, received_at").
					WithArgs(d.DeviceID, d.ItemID).
					WillReturnRows(sqlmock.NewRows([]string{"payload_hash", "received_at"}).AddRow("hash", stored))
			},
			wantDuplicate: true,
			wantAt:        stored,
		},
		{
			name: "re-delivery with another payload conflicts",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO deliveries").
					WillReturnRows(sqlmock.NewRows([]string{"received_at"}))
				mock.ExpectQuery("SELECT payload_hash, received_at").
					WillReturnRows(sqlmock.NewRows([]string{"payload_hash", "received_at"}).AddRow("other", stored))
			},
			wantErr: ErrDeliveryConflict,
		},
		{
			name: "row vanished between insert and select",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO deliveries").
					WillReturnRows(sqlmock.NewRows([]string{"received_at"}))
				mock.ExpectQuery("SELECT payload_hash, received_at").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrDeliveryNotSaved,
		},
		{
			name: "serialization failure is retryable",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO deliveries").
					WillReturnError(pgError(pgerrcode.SerializationFailure))
			},
			wantErr: ErrTemporarilyUnavailable,
		},
		{
			name: "check violation is not retryable",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO deliveries").
					WillReturnError(pgError(pgerrcode.CheckViolation))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestDeliveryRepo(t)
			tt.setup(mock)

			receipt, err := repo.SaveDelivery(context.Background(), d, "hash")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, d.ItemID, receipt.ItemID)
				assert.Equal(t, tt.wantDuplicate, receipt.Duplicate)
				assert.True(t, tt.wantAt.Equal(receipt.ReceivedAt))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestClassifyPgError(t *testing.T) {
	tests := map[string]ErrorClassification{
		pgerrcode.ConnectionFailure:    Retryable,
		pgerrcode.DeadlockDetected:     Retryable,
		pgerrcode.SerializationFailure: Retryable,
		pgerrcode.CannotConnectNow:     Retryable,
		pgerrcode.UniqueViolation:      NonRetryable,
		pgerrcode.SyntaxError:          NonRetryable,
		pgerrcode.DataException:        NonRetryable,
	}

	for code, want := range tests {
		t.Run(code, func(t *testing.T) {
			assert.Equal(t, want, ClassifyPgError(&pgconn.PgError{Code: code}))
		})
	}

	c := NewPostgresErrorClassifier()
	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.ConnectionException)))
}
