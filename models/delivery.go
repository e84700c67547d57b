// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// DeliveryRequest is one delivery attempt of a queue item to the remote
// service. ID is used as the idempotency key.
type DeliveryRequest struct {
	ID         string          `json:"id"`
	Kind       Kind            `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueuedAt"`

	// Attempt is 1-based: RetryCount + 1.
	Attempt int `json:"attempt"`
}

// NewDeliveryRequest builds the delivery request for the next attempt of
// item.
func NewDeliveryRequest(item QueueItem) DeliveryRequest {
	return DeliveryRequest{
		ID:         item.ID,
		Kind:       item.Kind,
		Payload:    item.Payload,
		EnqueuedAt: item.EnqueuedAt,
		Attempt:    item.RetryCount + 1,
	}
}

// Delivery is a mutation accepted by the remote service.
type Delivery struct {
	DeviceID   string          `json:"deviceId"`
	ItemID     string          `json:"itemId"`
	Kind       Kind            `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
	Attempt    int             `json:"attempt"`
	ReceivedAt time.Time       `json:"receivedAt"`
}

// DeliveryReceipt acknowledges a delivery. Duplicate is true when the item
// had already been accepted by an earlier attempt.
type DeliveryReceipt struct {
	ItemID     string    `json:"itemId"`
	Duplicate  bool      `json:"duplicate"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// Headers of the remote delivery protocol.
const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderAttempt        = "X-Attempt"
	HeaderPayloadHash    = "X-Payload-Hash"
	HeaderEnqueuedAt     = "X-Enqueued-At"
)
