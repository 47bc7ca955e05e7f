package rpc

import (
	"net/http"

	"udm/internal/controller"
)

func (h *Handler) stop(w http.ResponseWriter, r *http.Request) {
	var req controller.StopEmergencyRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.svc.StopEmergency(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
