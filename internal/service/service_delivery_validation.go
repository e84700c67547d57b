package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/simbaid-sync/internal/validators"
	"github.com/MKhiriev/simbaid-sync/models"
)

type DeliveryValidationService struct {
	inner     DeliveryService
	validator validators.Validator
}

func NewDeliveryValidationService() DeliveryServiceWrapper {
	return &DeliveryValidationService{
		validator: validators.NewWalletValidator(),
	}
}

func (v *DeliveryValidationService) Accept(ctx context.Context, delivery models.Delivery, payloadHash string) (models.DeliveryReceipt, error) {
	if delivery.DeviceID == "" {
		return models.DeliveryReceipt{}, ErrNoDeviceID
	}

	request := models.DeliveryRequest{
		ID:      delivery.ItemID,
		Kind:    delivery.Kind,
		Payload: delivery.Payload,
		Attempt: delivery.Attempt,
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.DeliveryReceipt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Accept(ctx, delivery, payloadHash)
}

func (v *DeliveryValidationService) Ping(ctx context.Context) error {
	return v.inner.Ping(ctx)
}

func (v *DeliveryValidationService) Wrap(inner DeliveryService) DeliveryService {
	v.inner = inner
	return v
}
