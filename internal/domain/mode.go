package domain

import "fmt"

// Mode selects what the chronograph displays.
type Mode int

const (
	// ModeClock displays wall-clock time.
	ModeClock Mode = iota
	// ModeStopwatch displays accumulated stopwatch time.
	ModeStopwatch
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeClock || m == ModeStopwatch
}

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeClock:
		return "clock"
	case ModeStopwatch:
		return "stopwatch"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a mode name to its Mode value.
// Returns ErrInvalidMode for unknown names.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "clock":
		return ModeClock, nil
	case "stopwatch":
		return ModeStopwatch, nil
	default:
		return 0, fmt.Errorf("parsing mode %q: %w", s, ErrInvalidMode)
	}
}
