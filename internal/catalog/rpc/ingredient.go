package rpc

import (
	"net/http"

	"udm/internal/model"
)

func (h *Handler) addIngredient(w http.ResponseWriter, r *http.Request) {
	var ing model.Ingredient
	if err := decodeBody(r, &ing); err != nil {
		writeError(w, h.logger, err)
		return
	}
	id, err := h.svc.AddIngredient(r.Context(), ing)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeID(w, id)
}

// updateIngredient's cascade flags are carried as query parameters since
// they are routing metadata, not part of the ingredient's own shape
// (spec.md §4.5 update-ingredient: update-regulator and update-instruction
// gate whether the embedded FluidRegulator/Instruction are themselves
// updated alongside the ingredient row).
func (h *Handler) updateIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	var ing model.Ingredient
	if err := decodeBody(r, &ing); err != nil {
		writeError(w, h.logger, err)
		return
	}
	ing.ID = id
	updateRegulator := r.URL.Query().Get("update_regulator") == "true"
	updateInstruction := r.URL.Query().Get("update_instruction") == "true"
	if err := h.svc.UpdateIngredient(r.Context(), ing, updateRegulator, updateInstruction); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeOK(w)
}

func (h *Handler) removeIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if err := h.svc.RemoveIngredient(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeOK(w)
}

func (h *Handler) collectIngredients(w http.ResponseWriter, r *http.Request) {
	ings, err := h.svc.CollectIngredients(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if ings == nil {
		ings = []model.Ingredient{}
	}
	writeJSON(w, http.StatusOK, ings)
}
