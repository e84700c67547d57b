// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// MaxRetries is the default number of failed delivery attempts after which a
// queue item stops being retried automatically and is reported as failed.
const MaxRetries = 3

// Kind names the category of a locally made wallet mutation.
//
// Kind is an open set: the built-in values below cover the wallet features,
// and producers may declare additional kinds without any change to the queue,
// which treats the value as an opaque routing label.
type Kind string

const (
	// KindCredentialRequest is a request for a verifiable credential issued
	// by a third party (government ID, education certificate, etc.).
	KindCredentialRequest Kind = "credential_request"

	// KindLoanApplication is a micro-loan application submitted from the
	// wallet.
	KindLoanApplication Kind = "loan_application"

	// KindVoiceEnrollment carries a voice enrollment together with the hash
	// of the voice embedding that is anchored in the identity registry.
	KindVoiceEnrollment Kind = "voice_enrollment"

	// KindProfileUpdate is an edit of the wallet owner's profile.
	KindProfileUpdate Kind = "profile_update"
)

// BuiltinKinds lists the mutation kinds produced by the wallet itself.
var BuiltinKinds = []Kind{
	KindCredentialRequest,
	KindLoanApplication,
	KindVoiceEnrollment,
	KindProfileUpdate,
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// IsBuiltin reports whether k is one of [BuiltinKinds].
func (k Kind) IsBuiltin() bool {
	for _, b := range BuiltinKinds {
		if k == b {
			return true
		}
	}
	return false
}

// QueueItem is a single durable record of one pending mutation awaiting
// delivery to the remote service.
//
// Identity fields (ID, Kind, Payload, EnqueuedAt) never change after the item
// is created; only RetryCount is mutated, and only by the sync engine or by an
// explicit user action that resets it.
type QueueItem struct {
	// ID is the unique identifier assigned at enqueue time. It doubles as the
	// idempotency key sent with every delivery attempt.
	ID string `json:"id"`

	// Kind is the mutation category used to route the delivery.
	Kind Kind `json:"kind"`

	// Payload is the opaque JSON value owned by the item. The queue never
	// inspects or modifies it.
	Payload json.RawMessage `json:"payload"`

	// EnqueuedAt is the creation timestamp of the item.
	EnqueuedAt time.Time `json:"enqueuedAt"`

	// RetryCount is the number of failed delivery attempts so far.
	RetryCount int `json:"retryCount"`
}

// IsFailed reports whether the item exhausted its retry budget.
func (q QueueItem) IsFailed(maxRetries int) bool {
	return q.RetryCount >= maxRetries
}

// IsPending reports whether the item is still eligible for automatic
// delivery.
func (q QueueItem) IsPending(maxRetries int) bool {
	return q.RetryCount < maxRetries
}

// QueueCounts is the number of pending and failed items currently stored.
type QueueCounts struct {
	Pending int `json:"pendingItems"`
	Failed  int `json:"failedItems"`
}

// Total returns the number of items in the store.
func (c QueueCounts) Total() int {
	return c.Pending + c.Failed
}

// QueueEventType describes what changed in the queue store.
type QueueEventType string

const (
	QueueEventEnqueued  QueueEventType = "enqueued"
	QueueEventDelivered QueueEventType = "delivered"
	QueueEventRetried   QueueEventType = "retried"
	QueueEventReset     QueueEventType = "reset"
	QueueEventRemoved   QueueEventType = "removed"
)

// QueueEvent is published after a mutation has been durably applied to the
// queue store.
type QueueEvent struct {
	Type QueueEventType `json:"type"`
	IDs  []string       `json:"ids,omitempty"`
	At   time.Time      `json:"at"`
}
