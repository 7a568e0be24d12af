// internal/app/features/companies/list.go
package companies

import (
	"net/http"

	companystore "github.com/dalemusser/impacthub/internal/app/store/companies"
	"github.com/dalemusser/impacthub/internal/app/system/listparams"
	"github.com/dalemusser/impacthub/internal/app/system/paging"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
)

func filterFromQuery(r *http.Request) companystore.Filter {
	return companystore.Filter{
		Query:        listparams.String(r, "q"),
		ODS:          listparams.IDList(r, "ods"),
		Causes:       listparams.IDList(r, "causas"),
		SupportTypes: listparams.IDList(r, "tiposApoio"),
		Sector:       listparams.String(r, "setor"),
		Location:     listparams.String(r, "localizacao"),
	}
}

// ServeList handles the public company directory. Visibility defaults
// to true unless the caller explicitly passes visivel=false.
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

// ServeAdminList is the back-office listing with tri-state visibility.
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
	co, err := h.Store.GetByID(r.Context(), id)
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.OK(w, co)
}
