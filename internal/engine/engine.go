package engine

import (
	"context"
	"fmt"
	"sync"

	"transposer/internal/logging"
	"transposer/internal/pipeline"
	"transposer/internal/transport"
)

type Engine struct {
	transport *transport.Server
	runner    *pipeline.Runner

	mu      sync.Mutex // guards pipeErr
	pipeErr error
}

// Run serves gRPC until ctx is cancelled or the pipeline fails for good,
// then stops the transport and closes the pipeline. A pipeline failure is
// returned.
func (e *Engine) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watched := make(chan struct{})
	if e.runner == nil {
		close(watched)
	} else {
		go func() {
			defer close(watched)
			if err := e.runner.Wait(); err != nil {
				logging.For("engine").Error("pipeline failed, shutting down", "err", err)
				e.mu.Lock()
				e.pipeErr = err
				e.mu.Unlock()
				cancel()
			}
		}()
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		e.transport.Stop()
		if e.runner != nil {
			if err := e.runner.Close(); err != nil {
				logging.For("engine").Warn("pipeline close", "err", err)
			}
		}
	}()

	serveErr := e.transport.Serve()
	cancel()
	<-stopped
	<-watched

	// a pipeline failure can stop the server before Serve starts, so it
	// takes precedence over the error Serve reports for that
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pipeErr != nil {
		return fmt.Errorf("pipeline: %w", e.pipeErr)
	}
	return serveErr
}
