// internal/app/features/collaborators/routes.go
package collaborators

import (
	"github.com/go-chi/chi/v5"
)

// Routes builds the nested collaborator router. The admin gate is
// applied by the parent companies router, and "{id}" there is the
// owning company.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Put("/{colID}", h.HandleUpdate)
	r.Delete("/{colID}", h.HandleDelete)

	return r
}
