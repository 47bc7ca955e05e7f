package rpc

import (
	"net/http"

	"udm/internal/model"
)

func (h *Handler) addRecipeInstructionOrder(w http.ResponseWriter, r *http.Request) {
	var o model.RecipeInstructionOrder
	if err := decodeBody(r, &o); err != nil {
		writeError(w, h.logger, err)
		return
	}
	id, err := h.svc.AddRecipeInstructionOrder(r.Context(), o)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeID(w, id)
}

// updateRecipeInstructionOrder binds a single-entry PATCH onto the
// Service's batch UpdateRecipeInstructionOrders, which de-duplicates by
// (id, recipe id, instruction id, position) regardless of batch size.
func (h *Handler) updateRecipeInstructionOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	var o model.RecipeInstructionOrder
	if err := decodeBody(r, &o); err != nil {
		writeError(w, h.logger, err)
		return
	}
	o.ID = id
	if err := h.svc.UpdateRecipeInstructionOrders(r.Context(), []model.RecipeInstructionOrder{o}); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeOK(w)
}

func (h *Handler) removeRecipeInstructionOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if err := h.svc.RemoveRecipeInstructionOrder(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeOK(w)
}

func (h *Handler) collectRecipeInstructionOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.CollectRecipeInstructionOrders(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if orders == nil {
		orders = []model.RecipeInstructionOrder{}
	}
	writeJSON(w, http.StatusOK, orders)
}
