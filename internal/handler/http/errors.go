// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the auth and integrity middlewares.
var (
	// ErrEmptyAuthorizationHeader is returned when the request has no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingPayloadHash is returned when a delivery has no X-Payload-Hash.
	ErrMissingPayloadHash = errors.New("missing `X-Payload-Hash` header")

	// ErrPayloadHashMismatch is returned when X-Payload-Hash does not match
	// the body.
	ErrPayloadHashMismatch = errors.New("payload integrity check failed")
)
