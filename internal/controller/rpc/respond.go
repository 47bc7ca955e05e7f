// Package rpc binds internal/controller's Service onto the HTTP/JSON
// surface described by spec.md §6 (redesigned from the teacher's
// Connect-RPC transport onto plain HTTP/1.1 + JSON, see SPEC_FULL.md
// REDESIGN FLAGS §1).
package rpc

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"udm/internal/apperr"
)

// errorResponse is the body every failed route returns (spec.md §6.4).
type errorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError logs the error at error level with source attribution and maps
// it to a status via apperr.HTTPStatus (spec.md §7).
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Error("rpc request failed", "error", err)

	kind := "unknown"
	if k, ok := apperr.KindOf(err); ok {
		kind = string(k)
	}

	writeJSON(w, apperr.HTTPStatus(err), errorResponse{Kind: kind, Message: err.Error()})
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "malformed request body", err)
	}
	return nil
}
