package connectivity

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/models"
)

type proberFunc func(ctx context.Context) (bool, error)

func (f proberFunc) Probe(ctx context.Context) (bool, error) { return f(ctx) }

func receive(t *testing.T, ch <-chan models.ConnectivityEvent) models.ConnectivityEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no connectivity event")
		return models.ConnectivityEvent{}
	}
}

func assertNoEvent(t *testing.T, ch <-chan models.ConnectivityEvent) {
	t.Helper()
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestNewMonitor_InitialState(t *testing.T) {
	tests := []struct {
		name   string
		prober Prober
		want   bool
	}{
		{name: "online", prober: NewStaticProber(true), want: true},
		{name: "offline", prober: NewStaticProber(false), want: false},
		{
			name: "signal unavailable counts as online",
			prober: proberFunc(func(context.Context) (bool, error) {
				return false, ErrSignalUnavailable
			}),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMonitor(context.Background(), tt.prober, time.Second, logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.IsOnline())
		})
	}
}

func TestNewMonitor_NilProber(t *testing.T) {
	m, err := NewMonitor(context.Background(), nil, time.Second, logger.Nop())
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrNilProber)
}

func TestMonitor_Set_EmitsOncePerEdge(t *testing.T) {
	m, err := NewMonitor(context.Background(), NewStaticProber(false), time.Second, logger.Nop())
	require.NoError(t, err)

	events, cancel := m.Subscribe(4)
	defer cancel()

	assert.False(t, m.Set(false))
	assertNoEvent(t, events)

	assert.True(t, m.Set(true))
	assert.True(t, receive(t, events).Online)

	assert.False(t, m.Set(true))
	assertNoEvent(t, events)

	assert.True(t, m.Set(false))
	ev := receive(t, events)
	assert.False(t, ev.Online)
	assert.False(t, ev.At.IsZero())
	assert.False(t, m.IsOnline())
}

func TestMonitor_Check(t *testing.T) {
	prober := NewStaticProber(true)
	m, err := NewMonitor(context.Background(), prober, time.Second, logger.Nop())
	require.NoError(t, err)

	events, cancel := m.Subscribe(1)
	defer cancel()

	prober.Set(false)
	assert.False(t, m.Check(context.Background()))
	assert.False(t, receive(t, events).Online)

	assert.False(t, m.Check(context.Background()))
	assertNoEvent(t, events)
}

func TestMonitor_Run_PollsUntilCanceled(t *testing.T) {
	var calls atomic.Int32
	var online atomic.Bool
	prober := proberFunc(func(context.Context) (bool, error) {
		calls.Add(1)
		return online.Load(), nil
	})

	m, err := NewMonitor(context.Background(), prober, 5*time.Millisecond, logger.Nop())
	require.NoError(t, err)
	require.False(t, m.IsOnline())

	events, cancel := m.Subscribe(1)
	defer cancel()

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	online.Store(true)
	assert.True(t, receive(t, events).Online)
	assert.True(t, m.IsOnline())

	stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(2))

	_, ok := <-events
	assert.False(t, ok, "subscriptions are closed when Run stops")
}

func TestMonitor_ProbeIsBounded(t *testing.T) {
	prober := proberFunc(func(ctx context.Context) (bool, error) {
		<-ctx.Done()
		return false, errors.New("probe canceled")
	})

	start := time.Now()
	m, err := NewMonitor(context.Background(), prober, 10*time.Millisecond, logger.Nop())
	require.NoError(t, err)

	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, m.IsOnline())
}
