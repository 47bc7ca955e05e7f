package controller

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"udm/internal/apperr"
	"udm/internal/controller/gpio"
	"udm/internal/model"
)

// GetPumpGPIOInfoRequest locates a fluid regulator either by pump number
// or by gpio pin; when both are set, pump number wins (spec.md §8
// boundary behaviour). FluidID, if known, is recorded on the audit row.
type GetPumpGPIOInfoRequest struct {
	FluidID    *int64 `json:"fluid_id,omitempty"`
	PumpNumber *int   `json:"pump_number,omitempty"`
	GPIOPin    *int   `json:"gpio_pin,omitempty"`
}

// GetPumpGPIOInfoResponse reports the addressed pin's current direction
// and level alongside the audit row id.
type GetPumpGPIOInfoResponse struct {
	RequestID uuid.UUID      `json:"request_id"`
	Mode      gpio.Direction `json:"mode"`
	Level     gpio.Level     `json:"level"`
}

// GetPumpGPIOInfo resolves req to exactly one fluid regulator via the
// catalog client, opens its pin, and reports mode/level (spec.md §4.6).
func (s *Service) GetPumpGPIOInfo(ctx context.Context, req GetPumpGPIOInfoRequest) (GetPumpGPIOInfoResponse, error) {
	requestID, err := s.writePumpLog(ctx, model.RequestGetPumpInfo, req.FluidID)
	if err != nil {
		return GetPumpGPIOInfoResponse{}, err
	}

	filterText, err := req.filterText()
	if err != nil {
		return GetPumpGPIOInfoResponse{}, err
	}

	regulators, err := s.catalog.CollectFluidRegulators(ctx, filterText)
	if err != nil {
		return GetPumpGPIOInfoResponse{}, err
	}
	if len(regulators) != 1 {
		return GetPumpGPIOInfoResponse{}, apperr.Newf(apperr.ApiFailure, "expected exactly one fluid regulator match, got %d", len(regulators))
	}
	regulator := regulators[0]
	if regulator.GPIOPin == nil {
		return GetPumpGPIOInfoResponse{}, apperr.New(apperr.GpioError, "matched fluid regulator has no gpio pin bound")
	}

	pin, err := s.gpio.Open(*regulator.GPIOPin)
	if err != nil {
		return GetPumpGPIOInfoResponse{}, apperr.Wrap(apperr.GpioError, "open gpio pin", err)
	}
	defer pin.Close()

	return GetPumpGPIOInfoResponse{RequestID: requestID, Mode: pin.Mode(), Level: pin.Level()}, nil
}

// filterText builds the internal/filter clause text used to look up the
// addressed regulator, preferring pump number over gpio pin when both are
// supplied.
func (req GetPumpGPIOInfoRequest) filterText() (string, error) {
	switch {
	case req.PumpNumber != nil:
		return "pump_number=" + strconv.Itoa(*req.PumpNumber), nil
	case req.GPIOPin != nil:
		return "gpio_pin=" + strconv.Itoa(*req.GPIOPin), nil
	default:
		return "", apperr.New(apperr.InvalidInput, "get-pump-gpio-info requires pump_number or gpio_pin")
	}
}
