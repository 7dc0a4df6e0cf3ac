package stopwatch_test

import (
	"sync"
	"time"

	"lapwatch/internal/core/stopwatch"
)

// manualClock is a Clock whose time only moves when the test advances it.
type manualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (clock *manualClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *manualClock) Advance(delta time.Duration) {
	clock.mu.Lock()
	clock.now = clock.now.Add(delta)
	clock.mu.Unlock()
}

func (clock *manualClock) NewTicker(interval time.Duration) stopwatch.Ticker {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	ticker := &manualTicker{interval: interval, ch: make(chan time.Time, 1)}
	clock.tickers = append(clock.tickers, ticker)
	return ticker
}

func (clock *manualClock) Tickers() []*manualTicker {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return append([]*manualTicker(nil), clock.tickers...)
}

type manualTicker struct {
	mu       sync.Mutex
	interval time.Duration
	ch       chan time.Time
	stopped  bool
}

func (ticker *manualTicker) C() <-chan time.Time {
	return ticker.ch
}

func (ticker *manualTicker) Stop() {
	ticker.mu.Lock()
	ticker.stopped = true
	ticker.mu.Unlock()
}

func (ticker *manualTicker) Stopped() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.stopped
}

func (ticker *manualTicker) Fire(at time.Time) {
	ticker.ch <- at
}
