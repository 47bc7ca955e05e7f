package rpc

import (
	"net/http"

	"udm/internal/model"
)

func (h *Handler) addInstruction(w http.ResponseWriter, r *http.Request) {
	var in model.Instruction
	if err := decodeBody(r, &in); err != nil {
		writeError(w, h.logger, err)
		return
	}
	id, err := h.svc.AddInstruction(r.Context(), in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeID(w, id)
}

func (h *Handler) updateInstruction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	var in model.Instruction
	if err := decodeBody(r, &in); err != nil {
		writeError(w, h.logger, err)
		return
	}
	in.ID = id
	if err := h.svc.UpdateInstruction(r.Context(), in); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeOK(w)
}

func (h *Handler) removeInstruction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if err := h.svc.RemoveInstruction(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeOK(w)
}

func (h *Handler) collectInstructions(w http.ResponseWriter, r *http.Request) {
	ins, err := h.svc.CollectInstructions(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if ins == nil {
		ins = []model.Instruction{}
	}
	writeJSON(w, http.StatusOK, ins)
}
