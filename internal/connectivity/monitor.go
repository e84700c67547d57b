package connectivity

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
	"github.com/MKhiriev/simbaid-sync/models"
)

const (
	defaultProbeInterval = 10 * time.Second
	maxProbeTimeout      = 5 * time.Second
)

// Monitor holds the boolean reachability signal of the remote.
type Monitor struct {
	prober   Prober
	interval time.Duration

	// mu orders transitions so every edge is published exactly once.
	mu     sync.Mutex
	online atomic.Bool

	events *utils.Notifier[models.ConnectivityEvent]
	logger *logger.Logger
}

// NewMonitor probes once synchronously so [Monitor.IsOnline] is meaningful
// right after construction. interval <= 0 falls back to 10 seconds.
func NewMonitor(ctx context.Context, prober Prober, interval time.Duration, log *logger.Logger) (*Monitor, error) {
	if prober == nil {
		return nil, ErrNilProber
	}
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	m := &Monitor{
		prober:   prober,
		interval: interval,
		events:   utils.NewNotifier[models.ConnectivityEvent](),
		logger:   log.WithComponent("connectivity"),
	}
	m.online.Store(m.probe(ctx))

	m.logger.Info().Bool("online", m.online.Load()).Msg("initial connectivity state")

	return m, nil
}

// IsOnline returns the current signal.
func (m *Monitor) IsOnline() bool {
	return m.online.Load()
}

// Set applies a reachability signal pushed by the host and reports whether
// it changed the state. An event is published only on a change.
func (m *Monitor) Set(online bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.online.Load() == online {
		return false
	}
	m.online.Store(online)

	m.logger.Info().Bool("online", online).Msg("connectivity changed")
	m.events.Publish(models.ConnectivityEvent{Online: online, At: time.Now()})

	return true
}

// Check runs one probe, applies its verdict and returns the new state.
func (m *Monitor) Check(ctx context.Context) bool {
	online := m.probe(ctx)
	m.Set(online)
	return online
}

// Subscribe streams connectivity edges. Call cancel to stop receiving.
func (m *Monitor) Subscribe(buf int) (<-chan models.ConnectivityEvent, func()) {
	return m.events.Subscribe(buf)
}

// Run polls the prober every interval until ctx is done.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.events.Close()
			return nil
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// probe runs the prober with a bounded timeout. A missing signal counts as
// online.
func (m *Monitor) probe(ctx context.Context) bool {
	timeout := min(m.interval, maxProbeTimeout)
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	online, err := m.prober.Probe(probeCtx)
	if err != nil {
		m.logger.Warn().Err(err).Msg("connectivity signal unavailable, assuming online")
		return true
	}

	return online
}
