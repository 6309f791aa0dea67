package handler

import (
	"net/http"
	"time"
)

// Snapshot handles GET /snapshot requests. Each call produces a fresh,
// internally consistent set of hand angles.
func (h *Handler) Snapshot(w http.ResponseWriter, _ *http.Request) {
	snap := h.chrono.Snapshot()

	h.writeJSON(w, http.StatusOK, SnapshotResponse{
		SecondsAngle: snap.SecondsAngle,
		MinutesAngle: snap.MinutesAngle,
		HoursAngle:   snap.HoursAngle,
	})
}

// Time handles GET /time requests, exposing the raw time-source reading for
// digital display formatting.
func (h *Handler) Time(w http.ResponseWriter, _ *http.Request) {
	now := h.chrono.CurrentTime().In(h.location)

	h.writeJSON(w, http.StatusOK, TimeResponse{
		Time:     now.Format(time.RFC3339Nano),
		Timezone: h.location.String(),
	})
}
