package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"chronograph/internal/domain"
)

// GetMode handles GET /mode requests.
func (h *Handler) GetMode(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, ModeResponse{Mode: h.chrono.Mode().String()})
}

// SetMode handles PUT /mode requests.
func (h *Handler) SetMode(w http.ResponseWriter, r *http.Request) {
	var req SetModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	mode, err := domain.ParseMode(req.Mode)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_mode", err.Error())
		return
	}

	if err := h.chrono.SetMode(mode); err != nil {
		if errors.Is(err, domain.ErrInvalidMode) {
			h.writeError(w, http.StatusBadRequest, "invalid_mode", err.Error())
			return
		}
		h.writeError(w, http.StatusInternalServerError, "internal_error", "failed to set mode")
		return
	}

	h.writeJSON(w, http.StatusOK, ModeResponse{Mode: mode.String()})
}
