// Package service exposes the chronograph engine behind a single
// synchronized owner. The engine itself is unguarded; this facade is the one
// place that serializes access so concurrent HTTP handlers can share it.
package service

import (
	"sync"
	"time"

	"chronograph/internal/domain"
	"chronograph/internal/engine"
)

// Chronograph serializes all access to one exclusively-owned Engine.
type Chronograph struct {
	mu     sync.Mutex
	engine *engine.Engine
}

// New creates a Chronograph owning a fresh engine driven by the given clock.
func New(clock domain.Clock) *Chronograph {
	return &Chronograph{engine: engine.New(clock)}
}

// Snapshot returns the hand angles for one time-source reading.
func (c *Chronograph) Snapshot() engine.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Snapshot()
}

// Mode returns the current display mode.
func (c *Chronograph) Mode() domain.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Mode()
}

// SetMode switches the display mode.
func (c *Chronograph) SetMode(mode domain.Mode) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.SetMode(mode)
}

// StartStopwatch begins or resumes stopwatch timing.
func (c *Chronograph) StartStopwatch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.StartStopwatch()
}

// StopStopwatch halts stopwatch timing.
func (c *Chronograph) StopStopwatch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.StopStopwatch()
}

// ResetStopwatch zeroes the accumulated stopwatch duration.
func (c *Chronograph) ResetStopwatch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.ResetStopwatch()
}

// IsStopwatchRunning reports whether the stopwatch is timing.
func (c *Chronograph) IsStopwatchRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.IsStopwatchRunning()
}

// StopwatchElapsed returns the total stopwatch time since the last reset.
func (c *Chronograph) StopwatchElapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.StopwatchElapsed()
}

// CurrentTime returns the time source's current reading.
func (c *Chronograph) CurrentTime() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.CurrentTime()
}
