package stopwatch

import (
	"sync"
	"time"

	"lapwatch/internal/core/model"
)

// Config contains runtime collaborators for Engine.
type Config struct {
	Clock Clock
	Laps  *LapRecorder
}

// Engine is a state machine that tracks elapsed time across start/stop cycles.
//
// Elapsed time is always derived from clock deltas. Sampling ticks only tell
// observers when to re-render.
type Engine struct {
	mu          sync.Mutex
	config      model.StopwatchConfig
	clock       Clock
	laps        *LapRecorder
	running     bool
	started     bool
	accumulated time.Duration
	runStart    time.Time
	events      []chan Event
	stopCh      chan struct{}
	closed      bool
}

// New creates a stopped Engine with zero elapsed time.
func New(config model.StopwatchConfig, options Config) *Engine {
	if config.SampleInterval <= 0 {
		config.SampleInterval = model.DefaultSampleInterval
	}
	if options.Clock == nil {
		options.Clock = SystemClock
	}
	if options.Laps == nil {
		options.Laps = NewLapRecorder()
	}

	return &Engine{
		config: config,
		clock:  options.Clock,
		laps:   options.Laps,
	}
}

// Laps returns the recorder attached to the engine.
func (engine *Engine) Laps() *LapRecorder {
	return engine.laps
}

// Subscribe registers a new observer channel. The sampling loop only runs
// while at least one observer is registered.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	if engine.running && engine.stopCh == nil {
		engine.startSamplingLocked()
	}
	return ch
}

// Start begins a run. Calling Start while running does nothing.
func (engine *Engine) Start() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.running || engine.closed {
		return
	}

	now := engine.clock.Now()
	engine.running = true
	engine.started = true
	engine.runStart = now
	engine.startSamplingLocked()

	engine.emitLocked(engine.eventLocked(EventStateChange, now))
}

// Stop ends the current run and freezes elapsed time. Calling Stop while
// stopped does nothing.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.running {
		return
	}

	now := engine.clock.Now()
	engine.accumulated = engine.rawElapsedLocked(now)
	engine.runStart = time.Time{}
	engine.running = false
	engine.stopSamplingLocked()

	engine.emitLocked(engine.eventLocked(EventStateChange, now))
}

// Reset stops the engine if needed, zeroes elapsed time and clears laps.
// It does nothing on an engine that has not started since the last reset.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.started && engine.laps.Len() == 0 {
		return
	}

	engine.stopSamplingLocked()
	engine.running = false
	engine.started = false
	engine.accumulated = 0
	engine.runStart = time.Time{}
	engine.laps.Clear()

	engine.emitLocked(engine.eventLocked(EventReset, engine.clock.Now()))
}

// Elapsed returns the current elapsed time at millisecond resolution.
func (engine *Engine) Elapsed() time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.elapsedLocked(engine.clock.Now())
}

// ElapsedMillis returns Elapsed in whole milliseconds.
func (engine *Engine) ElapsedMillis() int64 {
	return engine.Elapsed().Milliseconds()
}

// Running reports whether the engine is between a start and a stop.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.running
}

// Lap records the current elapsed time on the attached recorder.
func (engine *Engine) Lap() Lap {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	now := engine.clock.Now()
	lap := engine.laps.Record(engine.elapsedLocked(now))
	event := engine.eventLocked(EventLap, now)
	event.Lap = lap
	engine.emitLocked(event)
	return lap
}

// ClearLaps removes all recorded laps without touching elapsed time.
func (engine *Engine) ClearLaps() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.laps.Clear()
	engine.emitLocked(engine.eventLocked(EventLapsCleared, engine.clock.Now()))
}

// Snapshot returns the engine and recorder state read under one lock.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked(engine.clock.Now())
}

// Controls returns the operations allowed in the current state.
func (engine *Engine) Controls() Controls {
	return Availability(engine.Snapshot())
}

// UpdateConfig applies a new sampling cadence. A running sampling loop is
// restarted with the new interval.
func (engine *Engine) UpdateConfig(config model.StopwatchConfig) {
	if config.SampleInterval <= 0 {
		config.SampleInterval = model.DefaultSampleInterval
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.config = config
	if engine.running {
		engine.stopSamplingLocked()
		engine.startSamplingLocked()
	}
}

// Close terminates the sampling loop and closes observers.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.closed = true
	engine.stopSamplingLocked()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) startSamplingLocked() {
	if len(engine.events) == 0 {
		return
	}
	stopCh := make(chan struct{})
	engine.stopCh = stopCh
	go engine.run(engine.clock.NewTicker(engine.config.SampleInterval), stopCh)
}

func (engine *Engine) stopSamplingLocked() {
	if engine.stopCh != nil {
		close(engine.stopCh)
		engine.stopCh = nil
	}
}

func (engine *Engine) run(ticker Ticker, stopCh <-chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C():
			engine.tick(stopCh)
		}
	}
}

func (engine *Engine) tick(stopCh <-chan struct{}) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	// A tick can race with Stop; only the live loop may emit.
	if !engine.running || engine.stopCh != stopCh {
		return
	}
	engine.emitLocked(engine.eventLocked(EventTick, engine.clock.Now()))
}

// elapsedLocked is the reported value. Only the result is truncated;
// accumulated keeps full clock precision across runs.
func (engine *Engine) elapsedLocked(now time.Time) time.Duration {
	return engine.rawElapsedLocked(now).Truncate(time.Millisecond)
}

func (engine *Engine) rawElapsedLocked(now time.Time) time.Duration {
	elapsed := engine.accumulated
	if engine.running {
		if delta := now.Sub(engine.runStart); delta > 0 {
			elapsed += delta
		}
	}
	return elapsed
}

func (engine *Engine) snapshotLocked(now time.Time) Snapshot {
	return Snapshot{
		Running:  engine.running,
		Started:  engine.started,
		Elapsed:  engine.elapsedLocked(now),
		LapCount: engine.laps.Len(),
	}
}

func (engine *Engine) eventLocked(eventType EventType, now time.Time) Event {
	snapshot := engine.snapshotLocked(now)
	state := StateStopped
	if snapshot.Running {
		state = StateRunning
	}
	return Event{
		Type:     eventType,
		State:    state,
		Elapsed:  snapshot.Elapsed,
		LapCount: snapshot.LapCount,
		Controls: Availability(snapshot),
		At:       now,
	}
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
