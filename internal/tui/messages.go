package tui

import (
	"time"

	"github.com/MKhiriev/simbaid-sync/models"
)

type statusMsg struct {
	status models.SyncStatus
	err    error
}

type statusClosedMsg struct{}

type failedLoadedMsg struct {
	items []models.QueueItem
	err   error
}

type action string

const (
	actionSync     action = "sync"
	actionRetryAll action = "retry"
	actionRetryOne action = "retry item"
	actionClear    action = "clear"
	actionRemove   action = "remove"
)

type actionDoneMsg struct {
	action  action
	result  models.SyncPassResult
	removed []string
	err     error
}

type copiedMsg struct {
	id  string
	err error
}

type tickMsg time.Time

type clearNoticeMsg struct{}
