package workspace

import "github.com/go-chi/chi/v5"

// Widget is a domain handler that mounts its endpoints under a workspace.
type Widget interface {
	Mount(r chi.Router)
}

// RegisterRoutes mounts the workspace lifecycle endpoints and every widget
// under /workspaces/{workspaceID}.
func (h *Handler) RegisterRoutes(r chi.Router, widgets ...Widget) {
	r.Route("/workspaces", func(r chi.Router) {
		r.Post("/", h.Create)

		r.Route("/{workspaceID}", func(r chi.Router) {
			r.Use(h.Middleware)

			r.Get("/", h.Get)
			r.Delete("/", h.Delete)
			r.Post("/theme/toggle", h.ToggleTheme)

			for _, widget := range widgets {
				widget.Mount(r)
			}
		})
	})
}
