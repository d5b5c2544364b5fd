package bot

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/logger"
	"github.com/feral-file/ff-artbot/internal/messaging"
)

const (
	DefaultPoolSize  = 16
	DefaultQueueSize = 256
)

// Dispatcher runs a message handler on a bounded worker pool. Handle returns
// as soon as the message is queued and blocks while the queue is full.
type Dispatcher struct {
	handler messaging.Handler
	pool    pond.Pool
	ready   func() bool
}

// DispatcherOption configures a Dispatcher
type DispatcherOption func(*Dispatcher)

// WithReadiness makes Handle refuse messages with domain.ErrDirectoryNotReady
// while ready reports false, so the transport leaves them for redelivery
func WithReadiness(ready func() bool) DispatcherOption {
	return func(d *Dispatcher) {
		d.ready = ready
	}
}

// NewDispatcher creates a dispatcher; zero sizes use the defaults
func NewDispatcher(ctx context.Context, handler messaging.Handler, poolSize, queueSize int, opts ...DispatcherOption) *Dispatcher {
	if poolSize <= 0 {
		poolSize = DefaultPoolSize
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	logger.InfoCtx(ctx, "Command worker pool created",
		zap.Int("workers", poolSize),
		zap.Int("queue_size", queueSize))

	d := &Dispatcher{
		handler: handler,
		pool: pond.NewPool(
			poolSize,
			pond.WithQueueSize(queueSize),
			pond.WithContext(ctx),
		),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle queues msg for the handler. Handler errors are logged; an error
// returned here means msg was not queued.
func (d *Dispatcher) Handle(ctx context.Context, msg messaging.InboundMessage) error {
	if d.pool.Stopped() {
		return fmt.Errorf("dispatcher stopped")
	}
	if d.ready != nil && !d.ready() {
		return domain.ErrDirectoryNotReady
	}

	d.pool.SubmitErr(func() error {
		if err := d.handler(ctx, msg); err != nil {
			logger.WarnCtx(ctx, "Command failed",
				zap.String("message_id", msg.ID),
				zap.String("channel_id", msg.ChannelID),
				zap.Error(err))
			return err
		}
		return nil
	})

	return nil
}

// Stop waits for queued commands to finish
func (d *Dispatcher) Stop() {
	logger.Info("Shutting down command worker pool",
		zap.Uint64("submitted", d.pool.SubmittedTasks()),
		zap.Uint64("waiting", d.pool.WaitingTasks()))

	d.pool.StopAndWait()

	logger.Info("Command worker pool shutdown complete",
		zap.Uint64("total_completed", d.pool.CompletedTasks()),
		zap.Uint64("total_failed", d.pool.FailedTasks()))
}
