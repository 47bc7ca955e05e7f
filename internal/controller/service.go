// Package controller implements the drink-controller RPC surface
// (spec.md §4.6): dispense-drink, clean-cycle, get-pump-gpio-info,
// stop-emergency, poll-drink-stream, all backed by an append-only pump-log
// and a GPIO facade opened once per handler call.
package controller

import (
	"udm/internal/catalog/catalogclient"
	"udm/internal/controller/gpio"
	"udm/internal/storage"
)

// Service answers the controller RPC surface.
type Service struct {
	backend storage.Backend
	catalog *catalogclient.Client
	gpio    gpio.Facade
}

// New constructs a Service. catalogClient is the controller's single
// long-lived connection to the catalog daemon, opened once after the
// supervisor's readiness signal fires (spec.md §4.6, §4.7).
func New(backend storage.Backend, catalogClient *catalogclient.Client, gpioFacade gpio.Facade) *Service {
	return &Service{backend: backend, catalog: catalogClient, gpio: gpioFacade}
}
