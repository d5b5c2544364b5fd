package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/logger"
	"github.com/feral-file/ff-artbot/internal/metrics"
)

// Sweeper defines the interface for sweeper implementations
// Sweepers are long-running background tasks that run a routine on a schedule
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start begins the sweeper's main loop
	// This is a blocking call that runs until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop gracefully stops the sweeper
	// This waits for an in-progress run to complete
	Stop(ctx context.Context) error

	// Name returns the sweeper's name for logging and identification
	Name() string
}

// Routine is a Sweeper that runs a function after every wait until stopped.
// Errors are logged and never stop the loop.
type Routine struct {
	name    string
	clock   adapter.Clock
	metrics *metrics.Metrics
	// wait returns how long to sleep before the next run
	wait func(now time.Time) time.Duration
	run  func(ctx context.Context) error

	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

var _ Sweeper = (*Routine)(nil)

func newRoutine(name string, clock adapter.Clock, m *metrics.Metrics, wait func(time.Time) time.Duration, run func(context.Context) error) *Routine {
	return &Routine{
		name:      name,
		clock:     clock,
		metrics:   m,
		wait:      wait,
		run:       run,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (r *Routine) Name() string {
	return r.name
}

// Start runs the routine until the context is canceled or Stop is called
func (r *Routine) Start(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper %s already running", r.name)
	}
	defer func() {
		r.running.Store(false)
		close(r.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting sweeper", zap.String("sweeper", r.name))

	for {
		if !r.sleep(ctx, r.wait(r.clock.Now())) {
			logger.InfoCtx(ctx, "Sweeper stopping", zap.String("sweeper", r.name))
			return nil
		}

		if err := r.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, fmt.Errorf("sweeper %s: %w", r.name, err))
		}
	}
}

// RunOnce runs the routine immediately, outside the schedule
func (r *Routine) RunOnce(ctx context.Context) error {
	err := r.run(ctx)
	r.metrics.ObserveRoutine(r.name, err)
	return err
}

// Stop gracefully stops the sweeper with timeout support
func (r *Routine) Stop(ctx context.Context) error {
	if !r.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping sweeper", zap.String("sweeper", r.name))

	close(r.stopChan)

	select {
	case <-r.stoppedCh:
		logger.InfoCtx(ctx, "Sweeper stopped gracefully", zap.String("sweeper", r.name))
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Sweeper stop interrupted by context timeout", zap.String("sweeper", r.name))
		return ctx.Err()
	}
}

// sleep reports false when interrupted by cancellation or Stop
func (r *Routine) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-r.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-r.stopChan:
		return false
	}
}

// every waits a fixed interval between runs
func every(interval time.Duration) func(time.Time) time.Duration {
	return func(time.Time) time.Duration {
		return interval
	}
}

// nextMinute waits until the start of the next wall clock minute
func nextMinute(now time.Time) time.Duration {
	return now.Truncate(time.Minute).Add(time.Minute).Sub(now)
}
