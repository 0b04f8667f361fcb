package kafka

import (
	"context"
	"sync"
	"time"
)

// Throttle is a token bucket bounding how many messages the consumer emits
// per tick. A nil *Throttle never blocks.
type Throttle struct {
	capacity int64
	refill   int64

	mu     sync.Mutex
	tokens int64
	cond   *sync.Cond
	closed bool
	stop   chan struct{}
}

// NewThrottle returns nil when cfg.Capacity is not positive.
func NewThrottle(cfg ThrottleCfg) *Throttle {
	if cfg.Capacity <= 0 {
		return nil
	}
	if cfg.Tick <= 0 {
		cfg.Tick = time.Second
	}
	t := &Throttle{
		capacity: cfg.Capacity,
		refill:   cfg.Refill,
		tokens:   cfg.Capacity,
		stop:     make(chan struct{}),
	}
	t.cond = sync.NewCond(&t.mu)

	go func() {
		tick := time.NewTicker(cfg.Tick)
		defer tick.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-tick.C:
				t.mu.Lock()
				t.tokens = min(t.tokens+t.refill, t.capacity)
				t.mu.Unlock()
				t.cond.Broadcast()
			}
		}
	}()
	return t
}

// Acquire takes one token, waiting for a refill if the bucket is empty.
func (t *Throttle) Acquire(ctx context.Context) error {
	if t == nil {
		return nil
	}
	stop := context.AfterFunc(ctx, func() {
		t.mu.Lock()
		t.cond.Broadcast()
		t.mu.Unlock()
	})
	defer stop()

	t.mu.Lock()
	defer t.mu.Unlock()
	for t.tokens == 0 && !t.closed && ctx.Err() == nil {
		t.cond.Wait()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if t.closed {
		return context.Canceled
	}
	t.tokens--
	return nil
}

func (t *Throttle) Close() {
	if t == nil {
		return
	}
	t.mu.Lock()
	if !t.closed {
		t.closed = true
		close(t.stop)
	}
	t.mu.Unlock()
	t.cond.Broadcast()
}
