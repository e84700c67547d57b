package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/models"
)

// deliveryRepository is the PostgreSQL-backed implementation of
// [DeliveryRepository] over the "deliveries" table.
type deliveryRepository struct {
	*DB
	logger *logger.Logger
}

// NewDeliveryRepository constructs a [DeliveryRepository] backed by db.
func NewDeliveryRepository(db *DB, logger *logger.Logger) DeliveryRepository {
	logger.Debug().Msg("creating delivery repository")
	return &deliveryRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveDelivery inserts d unless the (device_id, item_id) pair is already
// stored. In that case the stored payload hash decides between a duplicate
// acknowledgement and [ErrDeliveryConflict].
func (r *deliveryRepository) SaveDelivery(ctx context.Context, d models.Delivery, payloadHash string) (models.DeliveryReceipt, error) {
	log := logger.FromContext(ctx)

	receipt := models.DeliveryReceipt{ItemID: d.ItemID}

	err := r.DB.QueryRowContext(ctx, saveDelivery,
		d.DeviceID,
		d.ItemID,
		d.Kind.String(),
		[]byte(d.Payload),
		payloadHash,
		d.Attempt,
		d.ReceivedAt,
	).Scan(&receipt.ReceivedAt)
	if err == nil {
		return receipt, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", "deliveryRepository.SaveDelivery").
			Str("device_id", d.DeviceID).
			Str("item_id", d.ItemID).
			Msg("failed to insert delivery")
		return models.DeliveryReceipt{}, r.classify(err)
	}

	// the pair already exists
	var (
		storedHash string
		receivedAt time.Time
	)
	err = r.DB.QueryRowContext(ctx, findDelivery, d.DeviceID, d.ItemID).Scan(&storedHash, &receivedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DeliveryReceipt{}, ErrDeliveryNotSaved
		}
		log.Err(err).
			Str("func", "deliveryRepository.SaveDelivery").
			Str("item_id", d.ItemID).
			Msg("failed to read existing delivery")
		return models.DeliveryReceipt{}, r.classify(err)
	}

	if storedHash != payloadHash {
		log.Warn().
			Str("func", "deliveryRepository.SaveDelivery").
			Str("device_id", d.DeviceID).
			Str("item_id", d.ItemID).
			Msg("re-delivery carries a different payload")
		return models.DeliveryReceipt{}, fmt.Errorf("%w: %s", ErrDeliveryConflict, d.ItemID)
	}

	receipt.Duplicate = true
	receipt.ReceivedAt = receivedAt
	return receipt, nil
}

func (r *deliveryRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func (r *deliveryRepository) classify(err error) error {
	if r.errorClassificator != nil && r.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTemporarilyUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
