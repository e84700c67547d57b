// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/simbaid-sync/internal/service"
	"github.com/MKhiriev/simbaid-sync/internal/store"
)

var errNoServices = errors.New("client services are not set")

// humanizeError turns errors of user actions into one-line messages.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, store.ErrQueueLocked):
		return "Queue file is locked by another process"
	case errors.Is(err, service.ErrItemNotFailed):
		return "Item is no longer in the failed list"
	case errors.Is(err, store.ErrQueueStorage), errors.Is(err, service.ErrSyncPass):
		return "Local queue storage error: " + err.Error()
	default:
		return err.Error()
	}
}
