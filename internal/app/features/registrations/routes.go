// internal/app/features/registrations/routes.go
package registrations

import (
	"github.com/dalemusser/impacthub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// PublicRoutes mounts the public registration endpoint.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleCreate)
	return r
}

// AdminRoutes mounts the review endpoints behind the admin gate.
func AdminRoutes(h *Handler, gate *auth.Gate) chi.Router {
	r := chi.NewRouter()
	r.Use(gate.RequireAdmin)

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)
	r.Patch("/{id}/status", h.HandleStatus)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
