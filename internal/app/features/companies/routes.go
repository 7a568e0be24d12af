// internal/app/features/companies/routes.go
package companies

import (
	"net/http"

	"github.com/dalemusser/impacthub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// PublicRoutes mounts the read-only company directory plus the company
// dashboard. dashboard serves GET /{id}/dashboard.
func PublicRoutes(h *Handler, dashboard http.HandlerFunc) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)
	r.Get("/{id}/dashboard", dashboard)
	return r
}

// AdminRoutes mounts the back-office CRUD behind the admin gate.
// collaborators and snapshots are the nested per-company routers.
func AdminRoutes(h *Handler, gate *auth.Gate, collaborators, snapshots chi.Router) chi.Router {
	r := chi.NewRouter()
	r.Use(gate.RequireAdmin)

	r.Get("/", h.ServeAdminList)
	r.Get("/{id}", h.ServeDetail)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Patch("/{id}/visibility", h.HandleVisibility)
	r.Delete("/{id}", h.HandleDelete)

	r.Mount("/{id}/collaborators", collaborators)
	r.Mount("/{id}/snapshots", snapshots)

	return r
}
