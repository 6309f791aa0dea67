// Package engine converts time-source readings into analog hand angles and
// manages the clock/stopwatch mode lifecycle.
package engine

import (
	"math"
	"time"

	"chronograph/internal/domain"
	"chronograph/internal/ring"
)

// Ring geometry for each hand. The hour ring has one position per minute of
// a 12-hour sweep so the hour hand advances smoothly.
const (
	secondsPositions = 60
	minutesPositions = 60
	hoursPositions   = 720

	secondsDegreesPerStep = 6.0
	minutesDegreesPerStep = 6.0
	hoursDegreesPerStep   = 0.5
)

// Snapshot holds the three hand angles read at one instant.
type Snapshot struct {
	SecondsAngle float64
	MinutesAngle float64
	HoursAngle   float64
}

// Engine owns the three hand rings and the stopwatch bookkeeping. All state
// is mutated in place without locking; callers must confine the engine to a
// single goroutine or synchronize externally.
type Engine struct {
	clock   domain.Clock
	seconds *ring.Ring
	minutes *ring.Ring
	hours   *ring.Ring

	mode        domain.Mode
	running     bool
	accumulated time.Duration
	startedAt   time.Time // zero iff not running
}

// New creates an engine in clock mode reading from the given clock.
// A nil clock defaults to the system clock.
func New(clock domain.Clock) *Engine {
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Engine{
		clock:   clock,
		seconds: mustRing(secondsPositions, secondsDegreesPerStep),
		minutes: mustRing(minutesPositions, minutesDegreesPerStep),
		hours:   mustRing(hoursPositions, hoursDegreesPerStep),
		mode:    domain.ModeClock,
	}
}

func mustRing(positions int, degreesPerStep float64) *ring.Ring {
	r, err := ring.New(positions, degreesPerStep)
	if err != nil {
		// The geometry constants above are known good.
		panic("engine: building hand ring: " + err.Error())
	}
	return r
}

// Mode returns the current display mode.
func (e *Engine) Mode() domain.Mode {
	return e.mode
}

// SetMode switches between clock and stopwatch display. Switching to clock
// halts a running stopwatch and clears its start time, but the accumulated
// duration is kept. Switching to stopwatch does not start it. Returns
// domain.ErrInvalidMode for a value outside the known modes.
func (e *Engine) SetMode(mode domain.Mode) error {
	if !mode.Valid() {
		return domain.ErrInvalidMode
	}
	if mode == e.mode {
		return nil
	}
	if mode == domain.ModeClock {
		e.running = false
		e.startedAt = time.Time{}
	}
	e.mode = mode
	return nil
}

// StartStopwatch begins (or resumes) stopwatch timing, switching to
// stopwatch mode first if needed. Already running is a no-op.
func (e *Engine) StartStopwatch() {
	if e.mode != domain.ModeStopwatch {
		// Cannot fail: ModeStopwatch is a known mode.
		_ = e.SetMode(domain.ModeStopwatch)
	}
	if e.running {
		return
	}
	e.running = true
	e.startedAt = e.clock.Now()
}

// StopStopwatch halts timing, folding the current run into the accumulated
// duration. Not running is a no-op.
func (e *Engine) StopStopwatch() {
	if !e.running {
		return
	}
	e.accumulated += e.clock.Now().Sub(e.startedAt)
	e.running = false
	e.startedAt = time.Time{}
}

// ResetStopwatch zeroes the accumulated duration. A running stopwatch keeps
// running with its elapsed time restarted from zero.
func (e *Engine) ResetStopwatch() {
	e.accumulated = 0
	if e.running {
		e.startedAt = e.clock.Now()
	} else {
		e.startedAt = time.Time{}
	}
}

// IsStopwatchRunning reports whether the stopwatch is timing.
func (e *Engine) IsStopwatchRunning() bool {
	return e.running
}

// StopwatchElapsed returns the total stopwatch time across all start/stop
// cycles since the last reset, including the in-flight run.
func (e *Engine) StopwatchElapsed() time.Duration {
	return e.elapsedAt(e.clock.Now())
}

func (e *Engine) elapsedAt(now time.Time) time.Duration {
	elapsed := e.accumulated
	if e.running {
		elapsed += now.Sub(e.startedAt)
	}
	return elapsed
}

// CurrentTime returns the time source's current reading, for digital
// display formatting by the presentation layer.
func (e *Engine) CurrentTime() time.Time {
	return e.clock.Now()
}

// Snapshot reads the time source once and returns the three hand angles for
// that instant. In clock mode angles follow the wall clock; in stopwatch
// mode they follow the elapsed stopwatch duration.
func (e *Engine) Snapshot() Snapshot {
	now := e.clock.Now()

	var secondsFloat, minutesFloat, totalMinutes float64
	if e.mode == domain.ModeStopwatch {
		elapsedSeconds := e.elapsedAt(now).Seconds()
		minutesTotal := elapsedSeconds / 60
		secondsFloat = math.Mod(elapsedSeconds, 60)
		minutesFloat = math.Mod(minutesTotal, 60)
		totalMinutes = math.Mod(minutesTotal, 720)
	} else {
		secondsFloat = float64(now.Second()) + float64(now.Nanosecond())/1e9
		minutesFloat = float64(now.Minute()) + secondsFloat/60
		totalMinutes = float64(now.Hour()%12)*60 + minutesFloat
	}

	return Snapshot{
		SecondsAngle: handAngle(e.seconds, secondsFloat),
		MinutesAngle: handAngle(e.minutes, minutesFloat),
		HoursAngle:   handAngle(e.hours, totalMinutes),
	}
}

// handAngle moves the hand's ring cursor to the whole-unit index and
// interpolates the remainder toward the next position.
func handAngle(r *ring.Ring, value float64) float64 {
	index := int(math.Floor(value)) % r.Len()
	if index < 0 {
		index += r.Len()
	}
	fraction := value - math.Floor(value)
	r.MoveToIndex(index)
	return r.AngleWithFraction(fraction)
}
