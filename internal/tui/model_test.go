package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/simbaid-sync/internal/mock"
	"github.com/MKhiriev/simbaid-sync/internal/service"
	"github.com/MKhiriev/simbaid-sync/internal/store"
	"github.com/MKhiriev/simbaid-sync/models"
)

type tuiDeps struct {
	queue  *mock.MockClientQueueService
	engine *mock.MockClientSyncEngine
	status *mock.MockClientStatusService
}

func newTestModel(t *testing.T) (statusModel, tuiDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := tuiDeps{
		queue:  mock.NewMockClientQueueService(ctrl),
		engine: mock.NewMockClientSyncEngine(ctrl),
		status: mock.NewMockClientStatusService(ctrl),
	}
	services := &service.ClientServices{
		QueueService:  deps.queue,
		SyncEngine:    deps.engine,
		StatusService: deps.status,
	}

	m := newStatusModel(context.Background(), services, models.NewAppBuildInfo("v1.2.0", "", ""), make(chan models.SyncStatus))
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	return m, deps
}

func update(t *testing.T, m statusModel, msg tea.Msg) (statusModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(statusModel)
	require.True(t, ok)
	return sm, cmd
}

func stubClipboard(t *testing.T, write func(string) error) {
	t.Helper()
	orig := writeClipboard
	writeClipboard = write
	t.Cleanup(func() { writeClipboard = orig })
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStatusModel_RendersStatus(t *testing.T) {
	m, _ := newTestModel(t)
	synced := m.now().Add(-2 * time.Minute)

	m, cmd := update(t, m, statusMsg{status: models.SyncStatus{
		IsOnline:     true,
		LastSyncTime: &synced,
		PendingItems: 2,
		FailedItems:  1,
	}})
	require.NotNil(t, cmd)

	view := m.View()
	assert.Contains(t, view, "Online")
	assert.Contains(t, view, "2 items")
	assert.Contains(t, view, "1 item")
	assert.Contains(t, view, "2 minutes ago")
}

func TestStatusModel_NeverSyncedOffline(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, statusMsg{status: models.SyncStatus{}})

	view := m.View()
	assert.Contains(t, view, "Offline")
	assert.Contains(t, view, "never")
}

func TestStatusModel_SyncNow(t *testing.T) {
	m, deps := newTestModel(t)
	deps.engine.EXPECT().SyncPendingItems(gomock.Any()).Return(models.SyncPassResult{Attempted: 2, Delivered: 2}, nil)

	m, cmd := update(t, m, runes("s"))
	require.NotNil(t, cmd)
	assert.True(t, m.busy)
	assert.Contains(t, m.View(), "Syncing...")

	// a second action is refused while the first one runs
	m, _ = update(t, m, runes("s"))
	assert.Equal(t, "Another action is still running", m.notice)

	m, _ = update(t, m, cmd())
	assert.False(t, m.busy)
	assert.Equal(t, "Delivered 2 items of 2 items", m.notice)
}

func TestStatusModel_SyncSkippedOffline(t *testing.T) {
	m, deps := newTestModel(t)
	deps.engine.EXPECT().SyncPendingItems(gomock.Any()).
		Return(models.SyncPassResult{Skipped: true, SkipReason: models.SkipReasonOffline}, nil)

	m, cmd := update(t, m, runes("s"))
	m, _ = update(t, m, cmd())

	assert.Contains(t, m.notice, "Offline")
}

func TestStatusModel_ClearFailedNeedsConfirmation(t *testing.T) {
	m, deps := newTestModel(t)
	m, _ = update(t, m, failedLoadedMsg{items: []models.QueueItem{{ID: "profile_update_1", Kind: models.KindProfileUpdate, RetryCount: 3}}})

	m, _ = update(t, m, runes("x"))
	require.True(t, m.confirmClear)
	assert.Contains(t, m.View(), "Remove 1 item")

	m, _ = update(t, m, runes("n"))
	assert.False(t, m.confirmClear)

	deps.engine.EXPECT().ClearFailedItems(gomock.Any()).Return([]string{"profile_update_1"}, nil)
	m, _ = update(t, m, runes("x"))
	m, cmd := update(t, m, runes("y"))
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, "Removed 1 item", m.notice)
}

func TestStatusModel_RetrySelected(t *testing.T) {
	m, deps := newTestModel(t)
	m, _ = update(t, m, failedLoadedMsg{items: []models.QueueItem{
		{ID: "loan_application_1", Kind: models.KindLoanApplication, RetryCount: 3},
		{ID: "profile_update_1", Kind: models.KindProfileUpdate, RetryCount: 3},
	}})

	m, _ = update(t, m, runes("j"))
	deps.engine.EXPECT().RetryFailedItem(gomock.Any(), "profile_update_1").Return(models.SyncPassResult{}, service.ErrItemNotFailed)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())

	assert.Equal(t, "Item is no longer in the failed list", m.errMsg)
	assert.Contains(t, m.View(), "Error")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.errMsg)
}

func TestStatusModel_CopyID(t *testing.T) {
	var copied string
	stubClipboard(t, func(s string) error { copied = s; return nil })

	m, _ := newTestModel(t)
	m, _ = update(t, m, failedLoadedMsg{items: []models.QueueItem{{ID: "voice_enrollment_1"}}})

	m, cmd := update(t, m, runes("c"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, "voice_enrollment_1", copied)
	assert.Equal(t, "Copied voice_enrollment_1", m.notice)
}

func TestStatusModel_CopyUnavailable(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no clipboard utilities available") })

	m, _ := newTestModel(t)
	m, _ = update(t, m, failedLoadedMsg{items: []models.QueueItem{{ID: "voice_enrollment_1"}}})
	m, cmd := update(t, m, runes("c"))
	m, _ = update(t, m, cmd())

	assert.Contains(t, m.errMsg, "Clipboard is unavailable")
}

func TestStatusModel_QuitWhenUpdatesClose(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := update(t, m, statusClosedMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestStatusModel_StorageError(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, statusMsg{err: store.ErrQueueLocked})
	assert.Equal(t, "Queue file is locked by another process", m.errMsg)
}

func TestStatusModel_About(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, runes("i"))
	assert.Contains(t, m.View(), "v1.2.0")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showInfo)
}
