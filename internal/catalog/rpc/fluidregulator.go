package rpc

import (
	"net/http"

	"udm/internal/apperr"
	"udm/internal/model"
)

func (h *Handler) addFluidRegulator(w http.ResponseWriter, r *http.Request) {
	var fr model.FluidRegulator
	if err := decodeBody(r, &fr); err != nil {
		writeError(w, h.logger, err)
		return
	}
	id, err := h.svc.AddFluidRegulator(r.Context(), fr)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeID(w, id)
}

func (h *Handler) updateFluidRegulator(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	var fr model.FluidRegulator
	if err := decodeBody(r, &fr); err != nil {
		writeError(w, h.logger, err)
		return
	}
	fr.ID = id
	if err := h.svc.UpdateFluidRegulator(r.Context(), fr); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeOK(w)
}

func (h *Handler) removeFluidRegulator(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if err := h.svc.RemoveFluidRegulator(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeOK(w)
}

func (h *Handler) collectFluidRegulators(w http.ResponseWriter, r *http.Request) {
	regs, err := h.svc.CollectFluidRegulators(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if regs == nil {
		regs = []model.FluidRegulator{}
	}
	writeJSON(w, http.StatusOK, regs)
}

// pathID extracts and parses the {id} route parameter shared by every
// update/remove route.
func pathID(r *http.Request) (int64, error) {
	raw := urlParamID(r)
	id, err := parseID(raw)
	if err != nil {
		return 0, apperr.Wrap(apperr.InvalidInput, "invalid id path parameter", err)
	}
	return id, nil
}
