package domain

import "errors"

var (
	// ErrInvalidPositions indicates a ring was constructed with a
	// non-positive position count.
	ErrInvalidPositions = errors.New("positions must be positive")

	// ErrEmptyRing indicates a cursor operation on a ring with no positions.
	ErrEmptyRing = errors.New("ring is empty")

	// ErrInvalidMode indicates a mode value outside the known set.
	ErrInvalidMode = errors.New("invalid chronograph mode")
)
