package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidPayload      = errors.New("payload must be valid JSON")
	ErrInvalidKind         = errors.New("invalid mutation kind")

	ErrItemNotFailed = errors.New("queue item is not failed")
	ErrSyncPass      = errors.New("sync pass storage error")
	ErrInvalidConfig = errors.New("invalid service configuration")

	ErrRemoteRejected     = errors.New("remote rejected the delivery")
	ErrRemoteUnavailable  = errors.New("remote is unavailable")
	ErrRemoteUnauthorized = errors.New("remote refused device credentials")
	ErrRemoteConflict     = errors.New("remote holds a different payload for this item")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrNoDeviceID              = errors.New("no device id in request context")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)
