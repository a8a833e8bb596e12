// Package workers holds the server's background jobs.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/store"
)

// Workers starts and stops the server's background jobs.
type Workers struct {
	sweeper *orphanSweeper

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewWorkers builds the worker set. A zero sweepInterval disables the
// orphan sweeper.
func NewWorkers(records store.RecordRepository, uploadsDir string, sweepInterval time.Duration, log *logger.Logger) *Workers {
	w := &Workers{}
	if sweepInterval > 0 {
		w.sweeper = newOrphanSweeper(records, uploadsDir, sweepInterval, log)
	}
	return w
}

// Run launches every enabled worker. It returns immediately; the workers
// run until Stop is called.
func (w *Workers) Run(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	if w.sweeper != nil {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.sweeper.run(ctx)
		}()
	}
}

// Stop signals every worker and waits for them to finish.
func (w *Workers) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
