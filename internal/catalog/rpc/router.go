package rpc

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"udm/internal/catalog"
	"udm/internal/logging"
)

// Handler binds a catalog.Service onto chi routes.
type Handler struct {
	svc    *catalog.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler. A nil logger discards all output
// (internal/logging.Default).
func NewHandler(svc *catalog.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logging.Default(logger).With("component", "catalog-rpc")}
}

// NewRouter mounts every catalog RPC route under the returned chi.Router.
// Callers mount this at /v1/catalog (spec.md §6.4); metrics, if non-nil,
// wraps every route with a request counter and latency histogram.
func NewRouter(h *Handler, metrics *Metrics) chi.Router {
	r := chi.NewRouter()

	mount := func(pattern string, fn func(chi.Router)) {
		r.Route(pattern, func(sub chi.Router) {
			if metrics != nil {
				sub.Use(metrics.Middleware(pattern))
			}
			fn(sub)
		})
	}

	mount("/fluid-regulators", func(sub chi.Router) {
		sub.Post("/", h.addFluidRegulator)
		sub.Get("/", h.collectFluidRegulators)
		sub.Patch("/{id}", h.updateFluidRegulator)
		sub.Delete("/{id}", h.removeFluidRegulator)
	})
	mount("/instructions", func(sub chi.Router) {
		sub.Post("/", h.addInstruction)
		sub.Get("/", h.collectInstructions)
		sub.Patch("/{id}", h.updateInstruction)
		sub.Delete("/{id}", h.removeInstruction)
	})
	mount("/ingredients", func(sub chi.Router) {
		sub.Post("/", h.addIngredient)
		sub.Get("/", h.collectIngredients)
		sub.Patch("/{id}", h.updateIngredient)
		sub.Delete("/{id}", h.removeIngredient)
	})
	mount("/recipes", func(sub chi.Router) {
		sub.Post("/", h.addRecipe)
		sub.Get("/", h.collectRecipes)
		sub.Patch("/{id}", h.updateRecipe)
		sub.Delete("/{id}", h.removeRecipe)
	})
	mount("/recipe-instruction-orders", func(sub chi.Router) {
		sub.Post("/", h.addRecipeInstructionOrder)
		sub.Get("/", h.collectRecipeInstructionOrders)
		sub.Patch("/{id}", h.updateRecipeInstructionOrder)
		sub.Delete("/{id}", h.removeRecipeInstructionOrder)
	})
	r.Post("/reset-db", h.resetDB)

	return r
}

func urlParamID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
