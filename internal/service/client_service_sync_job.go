package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
)

// DefaultSyncSchedule is used when the job is created with an empty
// schedule.
const DefaultSyncSchedule = "@every 5m"

type clientSyncJob struct {
	engine   ClientSyncEngine
	monitor  ConnectivityMonitor
	schedule cron.Schedule

	mu     sync.Mutex
	cancel context.CancelFunc
	cron   *cron.Cron
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a job that runs sync passes on schedule (a
// standard cron expression or a descriptor such as "@every 5m") and on every
// online edge of monitor. The job is idle until Start is called.
func NewClientSyncJob(engine ClientSyncEngine, monitor ConnectivityMonitor, schedule string, logger *logger.Logger) (ClientSyncJob, error) {
	if schedule == "" {
		schedule = DefaultSyncSchedule
	}

	parsed, err := cron.ParseStandard(schedule)
	if err != nil {
		return nil, fmt.Errorf("%w: sync schedule %q: %w", ErrInvalidConfig, schedule, err)
	}

	return &clientSyncJob{
		engine:   engine,
		monitor:  monitor,
		schedule: parsed,
		logger:   logger.WithComponent("sync-job"),
	}, nil
}

// Start implements ClientSyncJob. It runs an initial pass when online, then
// launches the cron scheduler and the connectivity listener. Both stop when
// ctx is canceled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context) error {
	j.Stop()

	j.mu.Lock()
	defer j.mu.Unlock()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{j.logger})))
	c.Schedule(j.schedule, cron.FuncJob(func() {
		j.sync(jobCtx, "schedule")
	}))
	c.Start()
	j.cron = c

	events, unsubscribe := j.monitor.Subscribe(1)
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		defer unsubscribe()

		for {
			select {
			case <-jobCtx.Done():
				return
			case _, ok := <-events:
				if !ok {
					return
				}
				// the event may be stale by now; the monitor holds the truth
				if j.monitor.IsOnline() {
					j.logger.Info().Msg("back online, triggering sync")
					j.engine.TriggerSync(jobCtx)
				}
			}
		}
	}()

	if j.monitor.IsOnline() {
		j.engine.TriggerSync(jobCtx)
	}

	j.logger.Info().Time("next", j.schedule.Next(time.Now())).Msg("sync job started")
	return nil
}

// Stop implements ClientSyncJob. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel, c := j.cancel, j.cron
	j.cancel, j.cron = nil, nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if c != nil {
		<-c.Stop().Done()
	}
	j.wg.Wait()
	j.engine.Wait()
}

func (j *clientSyncJob) Run(ctx context.Context) error {
	if err := j.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	j.Stop()
	return nil
}

func (j *clientSyncJob) sync(ctx context.Context, trigger string) {
	if ctx.Err() != nil {
		return
	}

	result, err := j.engine.SyncPendingItems(ctx)
	if err != nil {
		j.logger.Err(err).Str("trigger", trigger).Msg("scheduled sync pass finished with errors")
		return
	}
	if result.Skipped {
		j.logger.Debug().Str("trigger", trigger).Str("reason", string(result.SkipReason)).Msg("sync pass skipped")
	}
}

// cronLogger adapts the zerolog logger to cron.Logger.
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Err(err).Fields(keysAndValues).Msg(msg)
}
