package rpc

import "net/http"

func (h *Handler) resetDB(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetDB(r.Context()); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeOK(w)
}
