package rpc

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"udm/internal/controller"
	"udm/internal/logging"
)

// Handler binds a controller.Service onto chi routes.
type Handler struct {
	svc    *controller.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler. A nil logger discards all output
// (internal/logging.Default).
func NewHandler(svc *controller.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logging.Default(logger).With("component", "controller-rpc")}
}

// NewRouter mounts every controller RPC route under the returned
// chi.Router. Callers mount this at /v1/controller (spec.md §6.4);
// metrics, if non-nil, wraps every route with a request counter and
// latency histogram.
func NewRouter(h *Handler, metrics *Metrics) chi.Router {
	r := chi.NewRouter()

	mount := func(pattern string, fn func(r chi.Router)) {
		r.Route(pattern, func(sub chi.Router) {
			if metrics != nil {
				sub.Use(metrics.Middleware(pattern))
			}
			fn(sub)
		})
	}

	mount("/dispense", func(sub chi.Router) { sub.Post("/", h.dispense) })
	mount("/clean", func(sub chi.Router) { sub.Post("/", h.clean) })
	mount("/pumps/info", func(sub chi.Router) { sub.Get("/", h.pumpInfo) })
	mount("/stop", func(sub chi.Router) { sub.Post("/", h.stop) })
	mount("/poll", func(sub chi.Router) { sub.Get("/", h.poll) })

	return r
}
