package handler

import "net/http"

// StartStopwatch handles POST /stopwatch/start requests. Starting while in
// clock mode switches to stopwatch mode first.
func (h *Handler) StartStopwatch(w http.ResponseWriter, _ *http.Request) {
	h.chrono.StartStopwatch()
	h.stopwatchState(w)
}

// StopStopwatch handles POST /stopwatch/stop requests.
func (h *Handler) StopStopwatch(w http.ResponseWriter, _ *http.Request) {
	h.chrono.StopStopwatch()
	h.stopwatchState(w)
}

// ResetStopwatch handles POST /stopwatch/reset requests.
func (h *Handler) ResetStopwatch(w http.ResponseWriter, _ *http.Request) {
	h.chrono.ResetStopwatch()
	h.stopwatchState(w)
}

// Stopwatch handles GET /stopwatch requests.
func (h *Handler) Stopwatch(w http.ResponseWriter, _ *http.Request) {
	h.stopwatchState(w)
}

func (h *Handler) stopwatchState(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusOK, StopwatchResponse{
		Running:        h.chrono.IsStopwatchRunning(),
		ElapsedSeconds: h.chrono.StopwatchElapsed().Seconds(),
	})
}
