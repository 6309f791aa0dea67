// Package ring implements the fixed circular position sequence backing each
// chronograph hand.
package ring

import (
	"chronograph/internal/domain"
)

// Position is one discrete stop on the ring.
type Position struct {
	Index        int
	AngleDegrees float64
}

// Ring is a fixed-size circular sequence of positions with a movable cursor.
// Positions are created once at construction and never change; only the
// cursor moves. Not safe for concurrent use.
type Ring struct {
	positions      []Position
	cursor         int
	degreesPerStep float64
}

// New builds a ring of the given number of positions, each degreesPerStep
// apart, with the cursor at index 0. Returns domain.ErrInvalidPositions
// when positions is not positive.
func New(positions int, degreesPerStep float64) (*Ring, error) {
	if positions <= 0 {
		return nil, domain.ErrInvalidPositions
	}
	seq := make([]Position, positions)
	for i := range seq {
		seq[i] = Position{Index: i, AngleDegrees: float64(i) * degreesPerStep}
	}
	return &Ring{positions: seq, degreesPerStep: degreesPerStep}, nil
}

// Len returns the number of positions on the ring.
func (r *Ring) Len() int {
	return len(r.positions)
}

// DegreesPerStep returns the angular distance between adjacent positions.
func (r *Ring) DegreesPerStep() float64 {
	return r.degreesPerStep
}

// CurrentIndex returns the index under the cursor.
func (r *Ring) CurrentIndex() int {
	r.mustNotBeEmpty()
	return r.positions[r.cursor].Index
}

// BaseAngle returns the angle of the position under the cursor.
func (r *Ring) BaseAngle() float64 {
	r.mustNotBeEmpty()
	return r.positions[r.cursor].AngleDegrees
}

// StepForward advances the cursor clockwise by steps positions, wrapping
// around, and returns the position it lands on.
func (r *Ring) StepForward(steps int) Position {
	r.mustNotBeEmpty()
	n := len(r.positions)
	for i := 0; i < normalize(steps, n); i++ {
		r.cursor = (r.cursor + 1) % n
	}
	return r.positions[r.cursor]
}

// StepBackward moves the cursor counter-clockwise by steps positions,
// wrapping around, and returns the position it lands on.
func (r *Ring) StepBackward(steps int) Position {
	r.mustNotBeEmpty()
	n := len(r.positions)
	for i := 0; i < normalize(steps, n); i++ {
		r.cursor = (r.cursor - 1 + n) % n
	}
	return r.positions[r.cursor]
}

// MoveToIndex moves the cursor to target (normalized modulo the ring size)
// along the shorter rotational direction, stepping forward on ties. It
// returns the signed number of steps walked: positive forward, negative
// backward, zero when the cursor is already at target.
func (r *Ring) MoveToIndex(target int) int {
	r.mustNotBeEmpty()
	n := len(r.positions)
	normalized := normalize(target, n)

	forward := normalize(normalized-r.cursor, n)
	backward := normalize(r.cursor-normalized, n)
	if forward <= backward {
		r.StepForward(forward)
		return forward
	}
	r.StepBackward(backward)
	return -backward
}

// Find returns the first position, in ring order from index 0, for which
// match returns true. The cursor does not move.
func (r *Ring) Find(match func(Position) bool) (Position, bool) {
	for _, p := range r.positions {
		if match(p) {
			return p, true
		}
	}
	return Position{}, false
}

// AngleWithFraction returns the cursor angle plus a fractional progression
// toward the next position. The fraction is clamped to [0, 1].
func (r *Ring) AngleWithFraction(fraction float64) float64 {
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	return r.BaseAngle() + fraction*r.degreesPerStep
}

// mustNotBeEmpty guards cursor operations against a zero-value Ring.
// Construction via New makes this unreachable.
func (r *Ring) mustNotBeEmpty() {
	if len(r.positions) == 0 {
		panic(domain.ErrEmptyRing)
	}
}

// normalize reduces v modulo n into [0, n).
func normalize(v, n int) int {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}
