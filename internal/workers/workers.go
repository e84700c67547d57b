package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
)

type named struct {
	name string
	Worker
}

// Workers runs a set of named workers concurrently.
type Workers struct {
	workers []named

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers w under name. Nil workers are ignored.
func (w *Workers) Add(name string, worker Worker) *Workers {
	if worker != nil {
		w.workers = append(w.workers, named{name: name, Worker: worker})
	}
	return w
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and waits for all of them. The first failure
// cancels the context of the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	group, gctx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		group.Go(func() error {
			if w.logger != nil {
				w.logger.Debug().Str("worker", worker.name).Msg("worker started")
			}
			if err := worker.Run(gctx); err != nil {
				return fmt.Errorf("worker %s: %w", worker.name, err)
			}
			if w.logger != nil {
				w.logger.Debug().Str("worker", worker.name).Msg("worker stopped")
			}
			return nil
		})
	}

	return group.Wait()
}
