package controller

import (
	"context"

	"github.com/google/uuid"

	"udm/internal/model"
)

// DispenseRequest identifies the fluid regulator the drink is being
// dispensed through, if known.
type DispenseRequest struct {
	FluidID *int64 `json:"fluid_id,omitempty"`
}

// DispenseResponse carries the pump-log id the request was recorded under.
type DispenseResponse struct {
	RequestID uuid.UUID `json:"request_id"`
}

// DispenseDrink writes a pump-log row and returns its id. This revision
// does not drive the pin: the log entry is committed before the pin would
// be energised, so recovery can replay or compensate (spec.md §4.6).
func (s *Service) DispenseDrink(ctx context.Context, req DispenseRequest) (DispenseResponse, error) {
	id, err := s.writePumpLog(ctx, model.RequestDispense, req.FluidID)
	if err != nil {
		return DispenseResponse{}, err
	}
	return DispenseResponse{RequestID: id}, nil
}
