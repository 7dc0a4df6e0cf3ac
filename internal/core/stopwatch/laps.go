package stopwatch

import (
	"fmt"
	"sync"
	"time"
)

// Lap is a snapshot of elapsed time paired with the time since the previous lap.
type Lap struct {
	Number int
	Total  time.Duration
	Delta  time.Duration
}

// Label returns the display index of the lap, e.g. "#3".
func (lap Lap) Label() string {
	return fmt.Sprintf("#%d", lap.Number)
}

// LapRecorder keeps laps in recording order.
//
// The recorder never reads a clock: callers pass the engine's elapsed time
// at the moment of recording, and must pass non-decreasing totals.
type LapRecorder struct {
	mu   sync.RWMutex
	laps []Lap
}

// NewLapRecorder creates an empty recorder.
func NewLapRecorder() *LapRecorder {
	return &LapRecorder{}
}

// Record appends a lap for the given total and returns it.
func (recorder *LapRecorder) Record(total time.Duration) Lap {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	var last time.Duration
	if count := len(recorder.laps); count > 0 {
		last = recorder.laps[count-1].Total
	}
	lap := Lap{
		Number: len(recorder.laps) + 1,
		Total:  total,
		Delta:  total - last,
	}
	recorder.laps = append(recorder.laps, lap)
	return lap
}

// Clear removes every recorded lap.
func (recorder *LapRecorder) Clear() {
	recorder.mu.Lock()
	recorder.laps = nil
	recorder.mu.Unlock()
}

// All returns a copy of the recorded laps in recording order.
func (recorder *LapRecorder) All() []Lap {
	recorder.mu.RLock()
	defer recorder.mu.RUnlock()
	return append([]Lap(nil), recorder.laps...)
}

// Len returns the number of recorded laps.
func (recorder *LapRecorder) Len() int {
	recorder.mu.RLock()
	defer recorder.mu.RUnlock()
	return len(recorder.laps)
}

// Last returns the most recent lap.
func (recorder *LapRecorder) Last() (Lap, bool) {
	recorder.mu.RLock()
	defer recorder.mu.RUnlock()
	if len(recorder.laps) == 0 {
		return Lap{}, false
	}
	return recorder.laps[len(recorder.laps)-1], true
}
