// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/simbaid-sync/internal/adapter"
)

// mapAdapterError translates a delivery error of the adapter into a service
// error. Every mapped error still counts as a failed attempt; the mapping
// only feeds logs and pass results.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, adapter.ErrTransport),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrTooManyRequests),
		errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)

	case errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrToken):
		return fmt.Errorf("%w: %w", ErrRemoteUnauthorized, err)

	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrRemoteConflict, err)

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrPayloadTooLarge):
		return fmt.Errorf("%w: %w", ErrRemoteRejected, err)
	}

	return err
}

// failureReason is the short label of a delivery failure used in logs.
func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrRemoteUnavailable):
		return "unavailable"
	case errors.Is(err, ErrRemoteUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrRemoteConflict):
		return "conflict"
	case errors.Is(err, ErrRemoteRejected):
		return "rejected"
	default:
		return "unknown"
	}
}
