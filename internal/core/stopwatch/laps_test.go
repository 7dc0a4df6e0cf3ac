package stopwatch_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lapwatch/internal/core/stopwatch"
)

func TestLapRecorder_DeltasSumToTotals(t *testing.T) {
	recorder := stopwatch.NewLapRecorder()
	totals := []time.Duration{
		400 * time.Millisecond,
		400 * time.Millisecond,
		1300 * time.Millisecond,
		59 * time.Second,
		2*time.Hour + 5*time.Millisecond,
	}
	for _, total := range totals {
		recorder.Record(total)
	}

	laps := recorder.All()
	require.Len(t, laps, len(totals))

	var sum time.Duration
	for i, lap := range laps {
		var previous time.Duration
		if i > 0 {
			previous = laps[i-1].Total
		}
		assert.Equal(t, i+1, lap.Number)
		assert.Equal(t, totals[i], lap.Total)
		assert.Equal(t, lap.Total-previous, lap.Delta)
		assert.GreaterOrEqual(t, lap.Delta, time.Duration(0))

		sum += lap.Delta
		assert.Equal(t, lap.Total, sum)
	}

	assert.Zero(t, laps[1].Delta, "two laps at the same total have a zero delta")
}

func TestLapRecorder_FirstLapDeltaIsTotal(t *testing.T) {
	recorder := stopwatch.NewLapRecorder()

	lap := recorder.Record(1500 * time.Millisecond)

	assert.Equal(t, 1500*time.Millisecond, lap.Delta)
	assert.Equal(t, "#1", lap.Label())
}

func TestLapRecorder_ClearRestartsNumbering(t *testing.T) {
	recorder := stopwatch.NewLapRecorder()
	recorder.Record(time.Second)
	recorder.Record(2 * time.Second)

	recorder.Clear()
	_, ok := recorder.Last()
	assert.False(t, ok)
	assert.Zero(t, recorder.Len())

	lap := recorder.Record(3 * time.Second)
	assert.Equal(t, stopwatch.Lap{Number: 1, Total: 3 * time.Second, Delta: 3 * time.Second}, lap)
}

func TestLapRecorder_AllReturnsCopy(t *testing.T) {
	recorder := stopwatch.NewLapRecorder()
	recorder.Record(time.Second)

	laps := recorder.All()
	laps[0].Total = time.Hour

	last, ok := recorder.Last()
	require.True(t, ok)
	assert.Equal(t, time.Second, last.Total)
}
