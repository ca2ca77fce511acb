package reporter

import (
	"context"
	"errors"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

// Controller starts reporter runs in the background.
type Controller struct {
	runner Runner
	logger *zap.Logger
}

// NewController creates a Controller for runner.
func NewController(runner Runner, logger *zap.Logger) *Controller {
	return &Controller{runner: runner, logger: logger}
}

// Handle controls one background run.
type Handle struct {
	id       string
	cancel   context.CancelFunc
	done     chan struct{}
	err      error
	stopOnce sync.Once
}

// Start spawns a run with the bounds parsed from rawArgs and returns immediately.
func (c *Controller) Start(ctx context.Context, rawArgs string) *Handle {
	id, _ := gonanoid.New()
	runCtx, cancel := context.WithCancel(ctx)
	h := &Handle{
		id:     id,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	args := ParseArgs(rawArgs)
	logger := c.logger.With(zap.String("session", id))
	logger.Info("starting reporter", zap.String("args", rawArgs))

	go func() {
		defer close(h.done)
		defer cancel()

		err := c.runner.Run(runCtx, args)
		switch {
		case err == nil:
			logger.Info("reporter finished")
		case errors.Is(err, context.Canceled):
			logger.Info("reporter stopped on request")
			err = nil
		default:
			logger.Error("reporter terminated", zap.Error(err))
		}
		h.err = err
	}()
	return h
}

// Stop requests cooperative cancellation. It is safe to call more than once and after the run ended.
func (h *Handle) Stop() {
	h.stopOnce.Do(h.cancel)
}

// Done is closed once the run has returned.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err returns the error that ended the run. It is nil for normal completion and for a
// requested stop, and must only be read after Done is closed.
func (h *Handle) Err() error {
	return h.err
}

// ID identifies the run in logs.
func (h *Handle) ID() string {
	return h.id
}
