package controller

import (
	"context"
	"time"

	"github.com/google/uuid"

	"udm/internal/model"
	"udm/internal/query"
)

// writePumpLog appends one audit row and returns its generated id. The
// UUID is generated client-side before the write so retries are
// idempotent on the application side (spec.md §5).
func (s *Service) writePumpLog(ctx context.Context, kind model.RequestKind, fluidID *int64) (uuid.UUID, error) {
	id := uuid.New()
	entry := model.PumpLog{
		RequestID:   id,
		RequestKind: kind,
		FluidID:     fluidID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.backend.InsertWithUUID(ctx, query.InsertPumpLog(entry)); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
