package stopwatch

import "time"

// Snapshot is a consistent view of engine and recorder state.
type Snapshot struct {
	Running  bool
	Started  bool
	Elapsed  time.Duration
	LapCount int
}

// Controls lists which user operations are currently allowed.
type Controls struct {
	Start     bool
	Stop      bool
	Reset     bool
	Lap       bool
	ClearLaps bool
}

// Availability derives the allowed operations from a snapshot.
func Availability(snapshot Snapshot) Controls {
	hasLaps := snapshot.LapCount > 0
	switch {
	case snapshot.Running:
		return Controls{Stop: true, Reset: true, Lap: true, ClearLaps: hasLaps}
	case snapshot.Started:
		return Controls{Start: true, Reset: true, ClearLaps: hasLaps}
	default:
		return Controls{Start: true}
	}
}
