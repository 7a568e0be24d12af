// internal/app/features/initiatives/routes.go
package initiatives

import (
	"github.com/dalemusser/impacthub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// PublicRoutes mounts the public initiative listing.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)
	return r
}

// AdminRoutes mounts the back-office CRUD behind the admin gate.
func AdminRoutes(h *Handler, gate *auth.Gate) chi.Router {
	r := chi.NewRouter()
	r.Use(gate.RequireAdmin)

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
