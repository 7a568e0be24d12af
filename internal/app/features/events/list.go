// internal/app/features/events/list.go
package events

import (
	"net/http"
	"strconv"
	"time"

	eventstore "github.com/dalemusser/impacthub/internal/app/store/events"
	"github.com/dalemusser/impacthub/internal/app/system/listparams"
	"github.com/dalemusser/impacthub/internal/app/system/paging"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
)

func filterFromQuery(r *http.Request) eventstore.Filter {
	return eventstore.Filter{
		Query:            listparams.String(r, "q"),
		ODS:              listparams.IDList(r, "ods"),
		Areas:            listparams.IDList(r, "areas"),
		Location:         listparams.String(r, "localizacao"),
		Modality:         listparams.String(r, "modalidade"),
		OrganizationID:   listparams.ID(r, "organizacaoId"),
		RegistrationOpen: listparams.Bool(r, "registrationOpen"),
	}
}

// ServeList handles the public event listing. Visibility defaults to
// true unless the caller explicitly passes visivel=false, and past
// events are excluded unless includePast=true.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := filterFromQuery(r)
	f.Visible = listparams.Bool(r, "visivel")
	if f.Visible == nil {
		visible := true
		f.Visible = &visible
	}

	if ok, _ := strconv.ParseBool(listparams.String(r, "includePast")); !ok {
		now := time.Now().UTC()
		f.From = &now
	}

	page, err := h.Store.List(r.Context(), f,
		listparams.PageRequest(r, paging.WideLimit), listparams.String(r, "sort"))
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.List(w, page)
}

// ServeAdminList is the back-office listing: tri-state visibility and
// no date cutoff.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	f := filterFromQuery(r)
	f.Visible = listparams.Bool(r, "visivel")

	page, err := h.Store.List(r.Context(), f,
		listparams.PageRequest(r, paging.WideLimit), listparams.String(r, "sort"))
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
	ev, err := h.Store.GetByID(r.Context(), id)
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.OK(w, ev)
}
