// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the remote delivery service.
//
// The primary abstraction is [RemoteAdapter], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP implementation
// ([NewHTTPRemoteAdapter]) speaking the protocol of cmd/server.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/simbaid-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter delivers queue items to the remote service.
type RemoteAdapter interface {
	// Deliver sends one attempt of a queue item. Any non-nil error counts as
	// a failed attempt; the remote is expected to deduplicate by req.ID.
	Deliver(ctx context.Context, req models.DeliveryRequest) error

	// Ping checks that the remote answers its health endpoint.
	Ping(ctx context.Context) error
}
