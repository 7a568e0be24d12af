// internal/app/features/facets/routes.go
package facets

import (
	"github.com/dalemusser/impacthub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// PublicRoutes serves the lookup lists that drive the filter UIs.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{kind}", h.ServeList)
	return r
}

// AdminRoutes mounts facet management behind the admin gate. The ODS
// list is fixed and seeded, so it is read-only even here.
func AdminRoutes(h *Handler, gate *auth.Gate) chi.Router {
	r := chi.NewRouter()
	r.Use(gate.RequireAdmin)

	r.Get("/{kind}", h.ServeList)
	r.Post("/{kind}", h.HandleCreate)
	r.Put("/{kind}/{id}", h.HandleUpdate)
	r.Delete("/{kind}/{id}", h.HandleDelete)

	return r
}
