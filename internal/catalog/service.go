// Package catalog implements the catalog daemon's request handlers: CRUD
// over the five catalog entities, the recipe-instruction-order join table,
// the object-graph rehydration engine, and the factory-reset operation
// (spec.md §4.5). Service holds nothing but a storage.Backend — it never
// branches on which concrete adapter is behind it.
package catalog

import (
	"context"

	"udm/internal/storage"
)

// Service answers the catalog RPC surface.
type Service struct {
	backend storage.Backend
}

// New constructs a Service over an already-opened, already-schema'd
// backend.
func New(backend storage.Backend) *Service {
	return &Service{backend: backend}
}

// ResetDB truncates every catalog table and the controller's pump_log
// table, so both schemas must exist. Used by the factory-reset RPC
// (spec.md §4.5 reset-db).
func (s *Service) ResetDB(ctx context.Context) error {
	return s.backend.TruncateSchema(ctx)
}
