package rpc

import (
	"net/http"

	"udm/internal/controller"
)

func (h *Handler) poll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.PollDrinkStream(r.Context(), controller.PollDrinkStreamRequest{})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
