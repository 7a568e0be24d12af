// internal/app/features/snapshots/routes.go
package snapshots

import (
	"github.com/go-chi/chi/v5"
)

// Routes builds the nested snapshot router. The admin gate is applied
// by the parent companies router, and "{id}" there is the owning
// company.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Delete("/{snapID}", h.HandleDelete)

	return r
}
