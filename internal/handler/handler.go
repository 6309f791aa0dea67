package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"chronograph/internal/domain"
	"chronograph/internal/engine"
)

// Chronograph defines the service interface the handlers poll and control.
// This allows testing handlers without a real engine behind them.
type Chronograph interface {
	Snapshot() engine.Snapshot
	Mode() domain.Mode
	SetMode(mode domain.Mode) error
	StartStopwatch()
	StopStopwatch()
	ResetStopwatch()
	IsStopwatchRunning() bool
	StopwatchElapsed() time.Duration
	CurrentTime() time.Time
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	chrono   Chronograph
	location *time.Location
}

// New creates a Handler presenting times in the given location.
// A nil location defaults to UTC.
func New(chrono Chronograph, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		chrono:   chrono,
		location: location,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: message,
	})
}
