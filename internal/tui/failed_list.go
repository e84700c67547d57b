package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/simbaid-sync/models"
)

const idWidth = 36

type failedList struct {
	items []models.QueueItem
	idx   int
}

func (l failedList) current() (models.QueueItem, bool) {
	if len(l.items) == 0 || l.idx < 0 || l.idx >= len(l.items) {
		return models.QueueItem{}, false
	}
	return l.items[l.idx], true
}

func (l *failedList) set(items []models.QueueItem) {
	l.items = items
	if l.idx >= len(l.items) {
		l.idx = len(l.items) - 1
	}
	if l.idx < 0 {
		l.idx = 0
	}
}

func (l *failedList) move(delta int) {
	if len(l.items) == 0 {
		return
	}
	l.idx = (l.idx + delta + len(l.items)) % len(l.items)
}

func (l failedList) View(now time.Time) string {
	if len(l.items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(failedStyle.Render("Failed items") + "\n")
	for i, item := range l.items {
		line := fmt.Sprintf("%-*s  %-20s  %d attempts  queued %s",
			idWidth, fitText(item.ID, idWidth), item.Kind, item.RetryCount,
			humanize.RelTime(item.EnqueuedAt, now, "ago", "from now"))
		if i == l.idx {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
