package rpc

import (
	"net/http"

	"udm/internal/model"
)

func (h *Handler) addRecipe(w http.ResponseWriter, r *http.Request) {
	var rec model.Recipe
	if err := decodeBody(r, &rec); err != nil {
		writeError(w, h.logger, err)
		return
	}
	id, err := h.svc.AddRecipe(r.Context(), rec)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeID(w, id)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	var rec model.Recipe
	if err := decodeBody(r, &rec); err != nil {
		writeError(w, h.logger, err)
		return
	}
	rec.ID = id
	if err := h.svc.UpdateRecipe(r.Context(), rec); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeOK(w)
}

func (h *Handler) removeRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if err := h.svc.RemoveRecipe(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeOK(w)
}

func (h *Handler) collectRecipes(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.CollectRecipes(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if recs == nil {
		recs = []model.Recipe{}
	}
	writeJSON(w, http.StatusOK, recs)
}
