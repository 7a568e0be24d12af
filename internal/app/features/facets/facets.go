// internal/app/features/facets/facets.go
package facets

import (
	"net/http"

	facetstore "github.com/dalemusser/impacthub/internal/app/store/facets"
	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/app/system/listparams"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"github.com/dalemusser/impacthub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// ServeList handles GET /{kind}: the full lookup list, unpaged.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	store, err := h.storeFor(chi.URLParam(r, "kind"))
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	all, err := store.List(r.Context())
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	if all == nil {
		all = []models.Facet{}
	}
	webjson.OK(w, all)
}

type payload struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// HandleCreate handles POST /{kind}.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	store, err := h.storeFor(chi.URLParam(r, "kind"))
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	if store.Kind() == facetstore.ODS {
		h.Errs.WriteError(w, r, apperr.New(apperr.Validation, "the ods list is fixed"))
		return
	}

	var p payload
	if err := webjson.Decode(r, &p); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	created, err := store.Create(r.Context(), models.Facet{Name: p.Name, Icon: p.Icon})
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.Created(w, created)
}

// HandleUpdate handles PUT /{kind}/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	store, err := h.storeFor(chi.URLParam(r, "kind"))
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	if store.Kind() == facetstore.ODS {
		h.Errs.WriteError(w, r, apperr.New(apperr.Validation, "the ods list is fixed"))
		return
	}

	id, err := listparams.PathID(r, "id")
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	var p payload
	if err := webjson.Decode(r, &p); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	updated, err := store.Update(r.Context(), id, p.Name, p.Icon)
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.OK(w, updated)
}

// HandleDelete handles DELETE /{kind}/{id}. Referenced facets cannot
// be deleted; the error names what still points at them.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	store, err := h.storeFor(chi.URLParam(r, "kind"))
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	id, err := listparams.PathID(r, "id")
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	if err := store.Delete(r.Context(), id); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.NoContent(w)
}
