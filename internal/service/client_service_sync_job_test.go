package service_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/simbaid-sync/internal/connectivity"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/mock"
	"github.com/MKhiriev/simbaid-sync/internal/service"
	"github.com/MKhiriev/simbaid-sync/models"
)

func TestNewClientSyncJob_InvalidSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)

	job, err := service.NewClientSyncJob(mock.NewMockClientSyncEngine(ctrl), mock.NewMockConnectivityMonitor(ctrl), "every now and then", logger.Nop())

	assert.Nil(t, job)
	assert.ErrorIs(t, err, service.ErrInvalidConfig)
}

func TestClientSyncJob_InitialPassWhenOnline(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mock.NewMockClientSyncEngine(ctrl)
	monitor := mock.NewMockConnectivityMonitor(ctrl)

	events := make(chan models.ConnectivityEvent)
	var out <-chan models.ConnectivityEvent = events
	monitor.EXPECT().Subscribe(gomock.Any()).Return(out, func() {})
	monitor.EXPECT().IsOnline().Return(true)
	engine.EXPECT().TriggerSync(gomock.Any())
	engine.EXPECT().Wait().MinTimes(1)

	job, err := service.NewClientSyncJob(engine, monitor, "@every 1h", logger.Nop())
	require.NoError(t, err)

	require.NoError(t, job.Start(context.Background()))
	job.Stop()
}

func TestClientSyncJob_OnlineEdgeTriggersSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mock.NewMockClientSyncEngine(ctrl)
	monitor := mock.NewMockConnectivityMonitor(ctrl)

	events := make(chan models.ConnectivityEvent, 2)
	var out <-chan models.ConnectivityEvent = events
	monitor.EXPECT().Subscribe(gomock.Any()).Return(out, func() {})
	// initial check and the offline edge see offline, the online edge sees online
	monitor.EXPECT().IsOnline().Return(false).Times(2)
	monitor.EXPECT().IsOnline().Return(true).AnyTimes()
	engine.EXPECT().Wait().AnyTimes()

	triggered := make(chan struct{})
	engine.EXPECT().TriggerSync(gomock.Any()).Do(func(context.Context) { close(triggered) })

	job, err := service.NewClientSyncJob(engine, monitor, "", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, job.Start(context.Background()))
	defer job.Stop()

	events <- models.ConnectivityEvent{Online: false}
	events <- models.ConnectivityEvent{Online: true}

	select {
	case <-triggered:
	case <-time.After(time.Second):
		t.Fatal("going online did not trigger a sync pass")
	}
}

func TestClientSyncJob_ScheduledPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mock.NewMockClientSyncEngine(ctrl)
	monitor := mock.NewMockConnectivityMonitor(ctrl)

	var out <-chan models.ConnectivityEvent = make(chan models.ConnectivityEvent)
	monitor.EXPECT().Subscribe(gomock.Any()).Return(out, func() {})
	monitor.EXPECT().IsOnline().Return(false)
	engine.EXPECT().Wait().AnyTimes()

	ran := make(chan struct{}, 1)
	engine.EXPECT().SyncPendingItems(gomock.Any()).DoAndReturn(func(context.Context) (models.SyncPassResult, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return models.SyncPassResult{Skipped: true, SkipReason: models.SkipReasonOffline}, nil
	}).MinTimes(1)

	job, err := service.NewClientSyncJob(engine, monitor, "@every 1s", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, job.Start(context.Background()))
	defer job.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("scheduled sync pass did not run")
	}
}

func TestClientSyncJob_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mock.NewMockClientSyncEngine(ctrl)
	monitor := mock.NewMockConnectivityMonitor(ctrl)

	var out <-chan models.ConnectivityEvent = make(chan models.ConnectivityEvent)
	monitor.EXPECT().Subscribe(gomock.Any()).Return(out, func() {})
	monitor.EXPECT().IsOnline().Return(false)
	engine.EXPECT().Wait().MinTimes(1)

	job, err := service.NewClientSyncJob(engine, monitor, "@every 1h", logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- job.Run(ctx) }()

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestClientSyncJob_EveryOnlineEdgeTriggersSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mock.NewMockClientSyncEngine(ctrl)

	var triggers atomic.Int32
	engine.EXPECT().TriggerSync(gomock.Any()).Do(func(context.Context) { triggers.Add(1) }).AnyTimes()
	engine.EXPECT().Wait().AnyTimes()

	monitor, err := connectivity.NewMonitor(context.Background(), connectivity.NewStaticProber(true), time.Hour, logger.Nop())
	require.NoError(t, err)

	job, err := service.NewClientSyncJob(engine, monitor, "@every 1h", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, job.Start(context.Background()))
	defer job.Stop()

	require.Eventually(t, func() bool { return triggers.Load() == 1 }, time.Second, 5*time.Millisecond)

	for i := range 50 {
		before := triggers.Load()
		monitor.Set(false)
		monitor.Set(true)

		require.Eventuallyf(t, func() bool { return triggers.Load() > before }, time.Second, time.Millisecond,
			"flap %d: going back online did not trigger a sync pass", i)
	}
}

// Scenario A: a change made offline is delivered by the job once the
// connectivity signal comes back.
func TestClientSyncJob_OfflineChangeDeliveredWhenBackOnline(t *testing.T) {
	h := newSyncHarness(t, false)
	ctx := context.Background()

	item := h.enqueue(t, models.KindLoanApplication)

	status, err := h.status.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.IsOnline)
	assert.Equal(t, 1, status.PendingItems)

	h.remote.EXPECT().
		Deliver(gomock.Any(), gomock.Cond(func(r models.DeliveryRequest) bool { return r.ID == item.ID })).
		Return(nil)

	job, err := service.NewClientSyncJob(h.engine, h.monitor, "@every 1h", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, job.Start(ctx))
	defer job.Stop()

	require.True(t, h.monitor.Set(true))

	require.Eventually(t, func() bool {
		status, err := h.status.GetStatus(ctx)
		return err == nil && status.PendingItems == 0 && status.LastSyncTime != nil && !status.IsSyncing
	}, 2*time.Second, 10*time.Millisecond)

	status, err = h.status.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.IsOnline)
	assert.Zero(t, status.FailedItems)
}
