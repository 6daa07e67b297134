package currency

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the static currency table at /currencies.
func RegisterRoutes(r chi.Router) {
	r.Get("/currencies", List)
}

// Mount adds the workspace converter endpoints to a workspace router.
func (h *Handler) Mount(r chi.Router) {
	r.Route("/currency", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/amount", h.SetAmount)
		r.Put("/from", h.SetFrom)
		r.Put("/to", h.SetTo)
		r.Post("/swap", h.Swap)
		r.Post("/convert", h.Convert)
	})
}
