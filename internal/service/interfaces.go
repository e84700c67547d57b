package service

import (
	"context"

	"github.com/MKhiriev/simbaid-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DeliveryService accepts deliveries on the reference remote service.
type DeliveryService interface {
	// Accept stores delivery once per (device, item). A repeated delivery
	// with the same payload hash is acknowledged as a duplicate; a repeated
	// delivery with a different hash fails with store.ErrDeliveryConflict.
	Accept(ctx context.Context, delivery models.Delivery, payloadHash string) (models.DeliveryReceipt, error)

	// Ping checks the storage backend.
	Ping(ctx context.Context) error
}

type AuthService interface {
	// ParseToken verifies a device JWT and returns its claims. Any
	// validation failure yields ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// DeliveryServiceWrapper defines middleware composition for DeliveryService.
// Implementations wrap an existing DeliveryService to add behavior such as
// validation.
type DeliveryServiceWrapper interface {
	Wrap(DeliveryService) DeliveryService
}
