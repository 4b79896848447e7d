package session

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const DefaultTickInterval = time.Second

// Stopwatch measures play time on a recurring tick. The ticker goroutine is
// created by Start and torn down by the first Stop that follows it.
type Stopwatch struct {
	interval time.Duration
	onTick   func(elapsed time.Duration)

	mu      sync.Mutex
	elapsed time.Duration
	cancel  context.CancelFunc
	group   *errgroup.Group
}

// NewStopwatch returns a stopped stopwatch. onTick may be nil; it runs on the
// ticker goroutine and must not call Stop or Clear itself.
func NewStopwatch(interval time.Duration, onTick func(time.Duration)) *Stopwatch {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Stopwatch{interval: interval, onTick: onTick}
}

// Start zeroes the elapsed time and begins ticking. It reports false if the
// stopwatch is already running.
func (w *Stopwatch) Start() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	w.cancel, w.group, w.elapsed = cancel, g, 0

	start := time.Now()
	g.Go(func() error {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case t := <-ticker.C:
				elapsed := t.Sub(start)
				w.mu.Lock()
				w.elapsed = elapsed
				w.mu.Unlock()
				if w.onTick != nil {
					w.onTick(elapsed)
				}
			}
		}
	})
	return true
}

// Stop halts the ticker and waits for its goroutine to exit. Only the first
// call after Start does anything; it reports whether it stopped a ticker.
func (w *Stopwatch) Stop() bool {
	w.mu.Lock()
	cancel, g := w.cancel, w.group
	w.cancel, w.group = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return false
	}
	cancel()
	_ = g.Wait()
	return true
}

// Clear stops the stopwatch and zeroes the elapsed time.
func (w *Stopwatch) Clear() {
	w.Stop()
	w.mu.Lock()
	w.elapsed = 0
	w.mu.Unlock()
}

func (w *Stopwatch) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cancel != nil
}

// Elapsed is the play time as of the last tick.
func (w *Stopwatch) Elapsed() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.elapsed
}
