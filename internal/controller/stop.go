package controller

import (
	"context"

	"github.com/google/uuid"

	"udm/internal/apperr"
	"udm/internal/controller/gpio"
	"udm/internal/model"
)

// StopEmergencyRequest identifies the regulator to de-energise.
type StopEmergencyRequest struct {
	FluidID *int64 `json:"fluid_id,omitempty"`
	GPIOPin int    `json:"gpio_pin"`
}

// StopEmergencyResponse carries the audit row id.
type StopEmergencyResponse struct {
	RequestID uuid.UUID `json:"request_id"`
}

// StopEmergency de-energises req.GPIOPin immediately and writes an audit
// row (spec.md §4.6: "the specified behaviour is to de-energise the pin
// immediately and write an audit row" — unlike dispense/clean/poll, this
// one is fully specified, so it is implemented in full).
func (s *Service) StopEmergency(ctx context.Context, req StopEmergencyRequest) (StopEmergencyResponse, error) {
	pin, err := s.gpio.Open(req.GPIOPin)
	if err != nil {
		return StopEmergencyResponse{}, apperr.Wrap(apperr.GpioError, "open gpio pin", err)
	}
	defer pin.Close()

	if err := pin.SetLevel(gpio.LevelLow); err != nil {
		return StopEmergencyResponse{}, apperr.Wrap(apperr.GpioError, "de-energise gpio pin", err)
	}

	requestID, err := s.writePumpLog(ctx, model.RequestEmergencyStop, req.FluidID)
	if err != nil {
		return StopEmergencyResponse{}, err
	}
	return StopEmergencyResponse{RequestID: requestID}, nil
}
