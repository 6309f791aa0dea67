package domain

import "time"

// Clock provides time readings for the chronograph.
// This abstraction allows deterministic testing without time.Sleep.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock implements Clock with controllable time for testing.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a MockClock set to the given time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// Now returns the mock's current time.
func (c *MockClock) Now() time.Time {
	return c.current
}

// Advance moves the clock forward by the given duration.
func (c *MockClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// Set sets the clock to a specific time.
func (c *MockClock) Set(t time.Time) {
	c.current = t
}

// ScriptedClock implements Clock with a predetermined sequence of instants.
// Each Now call consumes the next instant; once the script is exhausted the
// last instant repeats. Useful for asserting behavior across a series of
// readings.
type ScriptedClock struct {
	instants []time.Time
	next     int
}

// NewScriptedClock creates a ScriptedClock that will return the given
// instants in order. At least one instant is required.
func NewScriptedClock(instants ...time.Time) *ScriptedClock {
	if len(instants) == 0 {
		panic("domain: ScriptedClock requires at least one instant")
	}
	return &ScriptedClock{instants: instants}
}

// Now returns the next scripted instant.
func (c *ScriptedClock) Now() time.Time {
	if c.next >= len(c.instants) {
		return c.instants[len(c.instants)-1]
	}
	t := c.instants[c.next]
	c.next++
	return t
}

// Remaining reports how many scripted instants have not been consumed yet.
func (c *ScriptedClock) Remaining() int {
	if c.next >= len(c.instants) {
		return 0
	}
	return len(c.instants) - c.next
}
