// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// delivery API of the server and the local status API of the sync client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe why a request was refused.
package app

const (
	// MsgInvalidDataProvided is returned when a request body fails basic
	// validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgErrorReadingBody is returned when the request body cannot be read.
	MsgErrorReadingBody = "error reading body"

	// MsgPayloadTooLarge is returned when a body exceeds the size limit.
	MsgPayloadTooLarge = "payload too large"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoDeviceID is returned when an authenticated request carries no
	// device identity.
	MsgNoDeviceID = "no device ID was given"

	// MsgMissingIdempotencyKey is returned when a delivery has no
	// Idempotency-Key header.
	MsgMissingIdempotencyKey = "missing Idempotency-Key header"

	// MsgInvalidAttempt is returned when the X-Attempt header is not a
	// positive integer.
	MsgInvalidAttempt = "invalid X-Attempt header"

	// MsgStorageUnavailable is returned by health checks while the
	// delivery storage cannot be reached.
	MsgStorageUnavailable = "storage unavailable"

	// MsgInvalidQueueState is returned when the queue listing is filtered
	// by an unknown state.
	MsgInvalidQueueState = "state must be pending or failed"

	// MsgNoFailedItem is returned when a failed item to act on does not
	// exist.
	MsgNoFailedItem = "no failed item"
)
