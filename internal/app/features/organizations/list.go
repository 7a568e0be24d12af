// internal/app/features/organizations/list.go
package organizations

import (
	"net/http"

	organizationstore "github.com/dalemusser/impacthub/internal/app/store/organizations"
	"github.com/dalemusser/impacthub/internal/app/system/listparams"
	"github.com/dalemusser/impacthub/internal/app/system/paging"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
)

func filterFromQuery(r *http.Request) organizationstore.Filter {
	return organizationstore.Filter{
		Query:              listparams.String(r, "q"),
		ODS:                listparams.IDList(r, "ods"),
		Areas:              listparams.IDList(r, "areas"),
		CollaborationTypes: listparams.IDList(r, "colaboracao"),
		Location:           listparams.String(r, "localizacao"),
	}
}

// ServeList handles the public directory listing. Visibility defaults
// to true; a caller that explicitly passes visivel=false gets the
// hidden set instead.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := filterFromQuery(r)
	f.Visible = listparams.Bool(r, "visivel")
	if f.Visible == nil {
		visible := true
		f.Visible = &visible
	}

	page, err := h.Store.List(r.Context(), f,
		listparams.PageRequest(r, paging.DefaultLimit), listparams.String(r, "sort"))
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.List(w, page)
}

// ServeAdminList is the back-office listing: same filters, but
// visibility is tri-state ("visivel" absent means unconstrained).
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	f := filterFromQuery(r)
	f.Visible = listparams.Bool(r, "visivel")

	page, err := h.Store.List(r.Context(), f,
		listparams.PageRequest(r, paging.DefaultLimit), listparams.String(r, "sort"))
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.List(w, page)
}

// ServeDetail handles GET /{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id, err := listparams.PathID(r, "id")
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	org, err := h.Store.GetByID(r.Context(), id)
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.OK(w, org)
}
