package counter

import "github.com/go-chi/chi/v5"

// Mount adds the workspace counter endpoints to a workspace router.
func (h *Handler) Mount(r chi.Router) {
	r.Route("/counter", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/actions", h.Dispatch)
	})
}
