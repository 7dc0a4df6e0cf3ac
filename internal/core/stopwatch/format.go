package stopwatch

import (
	"fmt"
	"time"
)

// Readout is an elapsed duration split into display fields.
type Readout struct {
	Hours   int
	Minutes int
	Seconds int
	Centis  int
}

// Split breaks a duration into hours, minutes, seconds and centiseconds.
// Hours are not wrapped at 24.
func Split(value time.Duration) Readout {
	if value < 0 {
		value = 0
	}
	millis := value.Milliseconds()
	totalSeconds := millis / 1000
	return Readout{
		Hours:   int(totalSeconds / 3600),
		Minutes: int(totalSeconds % 3600 / 60),
		Seconds: int(totalSeconds % 60),
		Centis:  int(millis % 1000 / 10),
	}
}

// String renders the readout as HH:MM:SS.CC.
func (readout Readout) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%02d", readout.Hours, readout.Minutes, readout.Seconds, readout.Centis)
}

// Format renders a duration as HH:MM:SS.CC.
func Format(value time.Duration) string {
	return Split(value).String()
}

// FormatDelta renders a lap delta as +HH:MM:SS.CC.
func FormatDelta(value time.Duration) string {
	return "+" + Format(value)
}
