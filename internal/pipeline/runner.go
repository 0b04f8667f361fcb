package pipeline

import (
	"context"
	"errors"
	"sync"

	"transposer/frame"
	"transposer/sink"
	"transposer/source/kafka"
)

// Stage transforms one frame. Returning a nil frame and nil error drops it.
type Stage interface {
	Apply(*frame.Frame) (*frame.Frame, error)
}

type Runner struct {
	source kafka.Adapter
	stages []Stage
	sinks  []sink.Adapter

	wg     sync.WaitGroup
	mu     sync.Mutex
	runErr error
}

func NewRunner() *Runner { return &Runner{} }

func (r *Runner) AddSink(s sink.Adapter)    { r.sinks = append(r.sinks, s) }
func (r *Runner) AddStage(s Stage)          { r.stages = append(r.stages, s) }
func (r *Runner) SetSource(s kafka.Adapter) { r.source = s }

/*──────── frame routing ───────*/
func (r *Runner) pushFrame(f *frame.Frame) error {
	for _, st := range r.stages {
		var err error
		if f, err = st.Apply(f); err != nil {
			return err
		}
		if f == nil {
			return nil
		}
	}
	for _, s := range r.sinks {
		if err := s.Push(f); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) Start(ctx context.Context) error {
	if r.source == nil {
		return errors.New("runner: no source configured")
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.source.Run(ctx, r.pushFrame); err != nil && !errors.Is(err, context.Canceled) {
			r.mu.Lock()
			r.runErr = err
			r.mu.Unlock()
		}
	}()
	return nil
}

// Wait blocks until the source stops and returns its failure, if any.
func (r *Runner) Wait() error {
	r.wg.Wait()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runErr
}

// Close stops the source, waits for it, then closes every sink.
func (r *Runner) Close() error {
	var errs []error
	if r.source != nil {
		errs = append(errs, r.source.Close())
	}
	r.wg.Wait()
	for _, s := range r.sinks {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}
