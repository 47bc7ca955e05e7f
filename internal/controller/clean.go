package controller

import (
	"context"

	"github.com/google/uuid"

	"udm/internal/model"
)

// CleanRequest identifies the fluid regulator being cleaned, if known.
type CleanRequest struct {
	FluidID *int64 `json:"fluid_id,omitempty"`
}

// CleanResponse carries the pump-log id the request was recorded under.
type CleanResponse struct {
	RequestID uuid.UUID `json:"request_id"`
}

// CleanCycle writes a pump-log row and returns its id, mirroring
// DispenseDrink's not-yet-driving-the-pin contract (spec.md §4.6).
func (s *Service) CleanCycle(ctx context.Context, req CleanRequest) (CleanResponse, error) {
	id, err := s.writePumpLog(ctx, model.RequestCleaning, req.FluidID)
	if err != nil {
		return CleanResponse{}, err
	}
	return CleanResponse{RequestID: id}, nil
}
