package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/store"
	"github.com/MKhiriev/simbaid-sync/models"
)

// deliveryService is the concrete implementation of DeliveryService backed by
// a DeliveryRepository.
type deliveryService struct {
	repo   store.DeliveryRepository
	logger *logger.Logger
}

func NewDeliveryService(repo store.DeliveryRepository, logger *logger.Logger) DeliveryService {
	return &deliveryService{repo: repo, logger: logger}
}

// Accept implements DeliveryService.
//
// Returns the receipt of the first accepted attempt or:
//   - store.ErrDeliveryConflict if the item was accepted with another payload.
//   - store.ErrTemporarilyUnavailable if the database is unreachable; the
//     client is expected to retry.
func (d *deliveryService) Accept(ctx context.Context, delivery models.Delivery, payloadHash string) (models.DeliveryReceipt, error) {
	log := logger.FromContext(ctx)

	receipt, err := d.repo.SaveDelivery(ctx, delivery, payloadHash)
	if err != nil {
		log.Err(err).
			Str("device_id", delivery.DeviceID).
			Str("item_id", delivery.ItemID).
			Str("kind", delivery.Kind.String()).
			Int("attempt", delivery.Attempt).
			Msg("delivery was not accepted")
		return models.DeliveryReceipt{}, fmt.Errorf("error accepting delivery %s: %w", delivery.ItemID, err)
	}

	log.Info().
		Str("device_id", delivery.DeviceID).
		Str("item_id", delivery.ItemID).
		Str("kind", delivery.Kind.String()).
		Int("attempt", delivery.Attempt).
		Bool("duplicate", receipt.Duplicate).
		Msg("delivery accepted")

	return receipt, nil
}

func (d *deliveryService) Ping(ctx context.Context) error {
	return d.repo.Ping(ctx)
}
