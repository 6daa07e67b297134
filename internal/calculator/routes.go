package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the stateless calculator endpoints under /calculator.
func RegisterRoutes(r chi.Router) {
	r.Route("/calculator", func(r chi.Router) {
		r.Post("/evaluate", Evaluate)
	})
}

// Mount adds the workspace calculator endpoints to a workspace router.
func (h *Handler) Mount(r chi.Router) {
	r.Route("/calculator", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/keys", h.Press)
	})
}
