package rpc

import (
	"net/http"

	"udm/internal/controller"
)

func (h *Handler) dispense(w http.ResponseWriter, r *http.Request) {
	var req controller.DispenseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.svc.DispenseDrink(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
