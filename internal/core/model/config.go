package model

import "time"

// DefaultSampleInterval is the re-render cadence used when none is configured.
const DefaultSampleInterval = 10 * time.Millisecond

// StopwatchConfig contains runtime settings for the stopwatch engine.
type StopwatchConfig struct {
	// SampleInterval controls how often observers are told to re-render.
	// It never affects measured time.
	SampleInterval time.Duration
}
