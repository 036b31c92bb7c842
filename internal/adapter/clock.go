package adapter

import (
	"context"
	"sync"
	"time"
)

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers.
type Clock interface {
	NewTicker(period time.Duration) Ticker
}

// SystemClock is a Clock backed by time.Ticker.
type SystemClock struct{}

// NewSystemClock creates a SystemClock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// NewTicker implements Clock.
func (SystemClock) NewTicker(period time.Duration) Ticker {
	return systemTicker{t: time.NewTicker(period)}
}

type systemTicker struct {
	t *time.Ticker
}

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }

// ManualClock is a Clock whose tickers only fire when Advance is called.
// It backs deterministic runs and tests.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
	created int
}

// NewManualClock creates a ManualClock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// NewTicker implements Clock.
func (c *ManualClock) NewTicker(period time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &manualTicker{
		clock:  c,
		period: period,
		ch:     make(chan time.Time),
		done:   make(chan struct{}),
	}
	c.tickers = append(c.tickers, t)
	c.created++

	return t
}

// Live returns the number of tickers that have not been stopped.
func (c *ManualClock) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.tickers)
}

// Created returns how many tickers were ever created.
func (c *ManualClock) Created() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.created
}

// Advance moves the clock forward by one period of the live ticker and
// delivers the tick. It blocks until the tick is received, the ticker is
// stopped, or ctx is done. It reports whether a tick was delivered.
func (c *ManualClock) Advance(ctx context.Context) (bool, error) {
	c.mu.Lock()
	if len(c.tickers) == 0 {
		c.mu.Unlock()
		return false, nil
	}

	t := c.tickers[len(c.tickers)-1]
	c.now = c.now.Add(t.period)
	now := c.now
	c.mu.Unlock()

	select {
	case t.ch <- now:
		return true, nil
	case <-t.done:
		return false, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *ManualClock) remove(t *manualTicker) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, live := range c.tickers {
		if live == t {
			c.tickers = append(c.tickers[:i], c.tickers[i+1:]...)
			return
		}
	}
}

type manualTicker struct {
	clock    *ManualClock
	period   time.Duration
	ch       chan time.Time
	done     chan struct{}
	stopOnce sync.Once
}

func (t *manualTicker) C() <-chan time.Time { return t.ch }

func (t *manualTicker) Stop() {
	t.stopOnce.Do(func() {
		close(t.done)
		t.clock.remove(t)
	})
}
