package stopwatch

import "time"

// Ticker delivers sampling ticks. It matches the subset of *time.Ticker the
// engine needs so tests can drive ticks by hand.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock provides the wall-clock source and the tick scheduler used by Engine.
type Clock interface {
	Now() time.Time
	NewTicker(interval time.Duration) Ticker
}

// SystemClock is the default Clock backed by the time package.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) NewTicker(interval time.Duration) Ticker {
	return &systemTicker{ticker: time.NewTicker(interval)}
}

type systemTicker struct {
	ticker *time.Ticker
}

func (ticker *systemTicker) C() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker *systemTicker) Stop() {
	ticker.ticker.Stop()
}
