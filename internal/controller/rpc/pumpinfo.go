package rpc

import (
	"net/http"
	"strconv"

	"udm/internal/apperr"
	"udm/internal/controller"
)

func (h *Handler) pumpInfo(w http.ResponseWriter, r *http.Request) {
	req, err := parsePumpInfoQuery(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.svc.GetPumpGPIOInfo(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func parsePumpInfoQuery(r *http.Request) (controller.GetPumpGPIOInfoRequest, error) {
	q := r.URL.Query()
	var req controller.GetPumpGPIOInfoRequest

	if v := q.Get("fluid_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, apperr.Wrap(apperr.InvalidInput, "parse fluid_id", err)
		}
		req.FluidID = &n
	}
	if v := q.Get("pump_number"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, apperr.Wrap(apperr.InvalidInput, "parse pump_number", err)
		}
		req.PumpNumber = &n
	}
	if v := q.Get("gpio_pin"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, apperr.Wrap(apperr.InvalidInput, "parse gpio_pin", err)
		}
		req.GPIOPin = &n
	}
	return req, nil
}
