package store

import (
	"context"

	"github.com/MKhiriev/simbaid-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DeliveryRepository persists deliveries accepted by the reference remote.
type DeliveryRepository interface {
	// SaveDelivery stores d keyed by (DeviceID, ItemID). A re-delivery with
	// the same payload hash is acknowledged as a duplicate; a different hash
	// yields [ErrDeliveryConflict].
	SaveDelivery(ctx context.Context, d models.Delivery, payloadHash string) (models.DeliveryReceipt, error)
	// Ping checks the database connection.
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
