package gallery

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the carousel auto-advance period.
const DefaultInterval = 5 * time.Second

// AutoAdvance owns the repeating timer that drives a carousel forward. At
// most one ticker goroutine exists at a time: Pause stops it and waits for
// it to exit, Resume starts a fresh one, Stop ends it for good.
//
// tick runs on the timer goroutine and must not call Pause, Resume or Stop.
type AutoAdvance struct {
	interval time.Duration
	tick     func()

	mu      sync.Mutex
	parent  context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	paused  bool
	stopped bool
}

// NewAutoAdvance creates a stopped timer. A non-positive interval uses
// DefaultInterval.
func NewAutoAdvance(interval time.Duration, tick func()) *AutoAdvance {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &AutoAdvance{interval: interval, tick: tick}
}

// Start begins ticking. Cancelling ctx has the same effect as Stop. Start
// on a running, paused or stopped timer does nothing.
func (a *AutoAdvance) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped || a.parent != nil {
		return
	}
	a.parent = ctx
	a.startLocked()
}

// Pause stops ticking until Resume. The pending tick, if any, is
// discarded.
func (a *AutoAdvance) Pause() {
	a.mu.Lock()
	if a.stopped || a.paused || a.parent == nil {
		a.mu.Unlock()
		return
	}
	a.paused = true
	done := a.haltLocked()
	a.mu.Unlock()
	wait(done)
}

// Resume restarts ticking after Pause with a full interval.
func (a *AutoAdvance) Resume() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped || !a.paused {
		return
	}
	a.paused = false
	a.startLocked()
}

// Stop ends ticking permanently and waits for the timer goroutine to
// exit. It is safe to call more than once.
func (a *AutoAdvance) Stop() {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	a.stopped = true
	done := a.haltLocked()
	a.mu.Unlock()
	wait(done)
}

// Running reports whether a ticker goroutine is active.
func (a *AutoAdvance) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil && a.parent.Err() == nil
}

// Paused reports whether the timer is paused.
func (a *AutoAdvance) Paused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.paused
}

func (a *AutoAdvance) startLocked() {
	if a.parent.Err() != nil {
		return
	}
	ctx, cancel := context.WithCancel(a.parent)
	done := make(chan struct{})
	a.cancel = cancel
	a.done = done
	go func() {
		defer close(done)
		a.run(ctx)
	}()
}

func (a *AutoAdvance) haltLocked() chan struct{} {
	if a.cancel == nil {
		return nil
	}
	a.cancel()
	done := a.done
	a.cancel = nil
	a.done = nil
	return done
}

func (a *AutoAdvance) run(ctx context.Context) {
	t := time.NewTicker(a.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if ctx.Err() != nil {
				return
			}
			a.tick()
		}
	}
}

func wait(done chan struct{}) {
	if done != nil {
		<-done
	}
}
