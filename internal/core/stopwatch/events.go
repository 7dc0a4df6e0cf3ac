package stopwatch

import "time"

// State represents the current Engine mode.
type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
)

// EventType defines the type of Engine event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventReset       EventType = "reset"
	EventLap         EventType = "lap"
	EventLapsCleared EventType = "laps_cleared"
)

// Event represents an Engine update for observers.
type Event struct {
	Type     EventType
	State    State
	Elapsed  time.Duration
	Lap      Lap
	LapCount int
	Controls Controls
	At       time.Time
}
