package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/simbaid-sync/internal/service"
	"github.com/MKhiriev/simbaid-sync/models"
)

const (
	refreshInterval = time.Second
	noticeTimeout   = 4 * time.Second
)

var writeClipboard = clipboard.WriteAll

type statusModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	updates   <-chan models.SyncStatus

	status    models.SyncStatus
	hasStatus bool
	failed    failedList
	indicator syncIndicator
	help      help.Model

	busy   bool
	notice string
	errMsg string

	confirmClear bool
	showInfo     bool

	now func() time.Time
}

func newStatusModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo,
	updates <-chan models.SyncStatus) statusModel {
	return statusModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		updates:   updates,
		indicator: newSyncIndicator(),
		help:      help.New(),
		now:       time.Now,
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(
		m.cmdLoadStatus(),
		m.cmdLoadFailed(),
		waitForStatus(m.updates),
		m.indicator.spinner.Tick,
		tick(),
	)
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m.applyStatus(msg.status)

	case statusClosedMsg:
		return m, tea.Quit

	case failedLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.failed.set(msg.items)
		return m, nil

	case actionDoneMsg:
		m.busy = false
		m.indicator.running = m.status.IsSyncing
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, tea.Batch(m.cmdLoadFailed(), m.cmdLoadStatus())
		}
		m.notice = describeAction(msg)
		return m, tea.Batch(m.cmdLoadFailed(), m.cmdLoadStatus(), clearNoticeAfter())

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard is unavailable: " + msg.err.Error()
			return m, nil
		}
		m.notice = "Copied " + msg.id
		return m, clearNoticeAfter()

	case clearNoticeMsg:
		m.notice = ""
		return m, nil

	case tickMsg:
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.indicator.spinner, cmd = m.indicator.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m statusModel) applyStatus(status models.SyncStatus) (tea.Model, tea.Cmd) {
	reload := !m.hasStatus || status.FailedItems != m.status.FailedItems || status.FailedItems != len(m.failed.items)
	m.status = status
	m.hasStatus = true
	m.indicator.running = status.IsSyncing || m.busy

	cmds := []tea.Cmd{waitForStatus(m.updates)}
	if reload {
		cmds = append(cmds, m.cmdLoadFailed())
	}
	return m, tea.Batch(cmds...)
}

func (m statusModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.errMsg != "":
		if key.Matches(msg, keys.esc, keys.retryOne) {
			m.errMsg = ""
		}
		return m, nil

	case m.showInfo:
		if key.Matches(msg, keys.esc, keys.info) {
			m.showInfo = false
		}
		return m, nil

	case m.confirmClear:
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmClear = false
			return m.start(m.cmdClear())
		case key.Matches(msg, keys.no):
			m.confirmClear = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.failed.move(-1)
	case key.Matches(msg, keys.down):
		m.failed.move(1)
	case key.Matches(msg, keys.info):
		m.showInfo = true
	case key.Matches(msg, keys.sync):
		return m.start(m.cmdSync())
	case key.Matches(msg, keys.retryAll):
		if len(m.failed.items) > 0 {
			return m.start(m.cmdRetryAll())
		}
	case key.Matches(msg, keys.clear):
		if len(m.failed.items) > 0 && !m.busy {
			m.confirmClear = true
		}
	case key.Matches(msg, keys.retryOne):
		if item, ok := m.failed.current(); ok {
			return m.start(m.cmdRetryOne(item.ID))
		}
	case key.Matches(msg, keys.remove):
		if item, ok := m.failed.current(); ok {
			return m.start(m.cmdRemove(item.ID))
		}
	case key.Matches(msg, keys.copy):
		if item, ok := m.failed.current(); ok {
			return m, cmdCopy(item.ID)
		}
	}

	return m, nil
}

// start runs an action unless another one is still in flight.
func (m statusModel) start(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.busy {
		m.notice = "Another action is still running"
		return m, clearNoticeAfter()
	}
	m.busy = true
	m.indicator.running = true
	m.notice = ""
	return m, cmd
}

func (m statusModel) View() string {
	switch {
	case m.showInfo:
		return renderBuildInfoWindow(m.buildInfo)
	case m.errMsg != "":
		return appStyle.Render(errorOverlayModel{message: m.errMsg}.View())
	case m.confirmClear:
		return appStyle.Render(confirmModel{count: len(m.failed.items)}.View())
	}

	now := m.now()
	var b strings.Builder

	connectivity := offlineStyle.Render("Offline")
	if m.status.IsOnline {
		connectivity = onlineStyle.Render("Online")
	}
	b.WriteString(row("Connection:", connectivity))
	b.WriteString(row("Pending:", items(m.status.PendingItems)))

	failed := items(m.status.FailedItems)
	if m.status.FailedItems > 0 {
		failed = failedStyle.Render(failed)
	}
	b.WriteString(row("Failed:", failed))
	b.WriteString(row("Last synced:", lastSynced(m.status.LastSyncTime, now)))

	if list := m.failed.View(now); list != "" {
		b.WriteString("\n" + list)
	}
	if indicator := m.indicator.View(); indicator != "" {
		b.WriteString("\n" + indicator + "\n")
	}
	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice) + "\n")
	}

	return renderPage("SIMBAID SYNC", strings.TrimRight(b.String(), "\n"),
		m.help.ShortHelpView(keys.mainHelp(len(m.failed.items) > 0)))
}

func describeAction(msg actionDoneMsg) string {
	switch msg.action {
	case actionClear:
		return "Removed " + items(len(msg.removed))
	case actionRemove:
		if len(msg.removed) == 0 {
			return "Item was already gone"
		}
		return "Removed " + msg.removed[0]
	}

	r := msg.result
	if r.Skipped {
		return "Offline: " + string(msg.action) + " will run when the connection is back"
	}
	return "Delivered " + items(r.Delivered) + " of " + items(r.Attempted)
}

func (m statusModel) cmdLoadStatus() tea.Cmd {
	return func() tea.Msg {
		status, err := m.services.StatusService.GetStatus(m.ctx)
		return statusMsg{status: status, err: err}
	}
}

func (m statusModel) cmdLoadFailed() tea.Cmd {
	return func() tea.Msg {
		failed, err := m.services.QueueService.ListFailed(m.ctx)
		return failedLoadedMsg{items: failed, err: err}
	}
}

func (m statusModel) cmdSync() tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.SyncEngine.SyncPendingItems(m.ctx)
		return actionDoneMsg{action: actionSync, result: result, err: err}
	}
}

func (m statusModel) cmdRetryAll() tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.SyncEngine.RetryFailedItems(m.ctx)
		return actionDoneMsg{action: actionRetryAll, result: result, err: err}
	}
}

func (m statusModel) cmdRetryOne(id string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.SyncEngine.RetryFailedItem(m.ctx, id)
		return actionDoneMsg{action: actionRetryOne, result: result, err: err}
	}
}

func (m statusModel) cmdClear() tea.Cmd {
	return func() tea.Msg {
		removed, err := m.services.SyncEngine.ClearFailedItems(m.ctx)
		return actionDoneMsg{action: actionClear, removed: removed, err: err}
	}
}

func (m statusModel) cmdRemove(id string) tea.Cmd {
	return func() tea.Msg {
		removed, err := m.services.QueueService.RemoveFailed(m.ctx, id)
		return actionDoneMsg{action: actionRemove, removed: removed, err: err}
	}
}

func cmdCopy(id string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{id: id, err: writeClipboard(id)}
	}
}

func waitForStatus(updates <-chan models.SyncStatus) tea.Cmd {
	return func() tea.Msg {
		status, ok := <-updates
		if !ok {
			return statusClosedMsg{}
		}
		return statusMsg{status: status}
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func clearNoticeAfter() tea.Cmd {
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg { return clearNoticeMsg{} })
}
