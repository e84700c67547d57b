// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus is the read-only summary shown to the wallet owner. It is never
// stored; it is always recomputed from the queue store, the connectivity
// monitor and the sync engine.
type SyncStatus struct {
	// IsOnline mirrors the connectivity monitor.
	IsOnline bool `json:"isOnline"`

	// IsSyncing is true while a sync pass is in flight.
	IsSyncing bool `json:"isSyncing"`

	// LastSyncTime is the completion time of the most recent sync pass, or
	// nil if no pass has completed since start-up.
	LastSyncTime *time.Time `json:"lastSyncTime"`

	// PendingItems is the number of items still eligible for delivery.
	PendingItems int `json:"pendingItems"`

	// FailedItems is the number of items that exhausted their retries.
	FailedItems int `json:"failedItems"`
}

// SkipReason explains why a sync pass did not run.
type SkipReason string

const (
	SkipReasonNone    SkipReason = ""
	SkipReasonOffline SkipReason = "offline"
)

// SyncPassResult summarises one sync pass.
type SyncPassResult struct {
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`

	// Attempted is the size of the pending snapshot taken at the start of
	// the pass.
	Attempted int `json:"attempted"`
	// Delivered counts items removed after a successful delivery.
	Delivered int `json:"delivered"`
	// Retried counts items whose retry count was incremented and which are
	// still pending.
	Retried int `json:"retried"`
	// Exhausted counts items that reached the retry limit during this pass.
	Exhausted int `json:"exhausted"`

	Skipped    bool       `json:"skipped"`
	SkipReason SkipReason `json:"skipReason,omitempty"`
}

// Duration returns how long the pass took.
func (r SyncPassResult) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// ConnectivityEvent is emitted once per reachability edge.
type ConnectivityEvent struct {
	Online bool      `json:"online"`
	At     time.Time `json:"at"`
}

// EngineEvent is emitted when the sync engine starts or completes a pass.
type EngineEvent struct {
	Syncing bool            `json:"syncing"`
	Result  *SyncPassResult `json:"result,omitempty"`
}
