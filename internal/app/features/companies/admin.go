// internal/app/features/companies/admin.go
package companies

import (
	"net/http"

	companystore "github.com/dalemusser/impacthub/internal/app/store/companies"
	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/app/system/listparams"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"github.com/dalemusser/impacthub/internal/domain/models"
)

type createPayload struct {
	Name        string `json:"name"`
	Mission     string `json:"mission"`
	Description string `json:"description"`
	Sector      string `json:"setor"`
	Size        string `json:"size"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	Location    string `json:"localizacao"`
	Visible     *bool  `json:"visivel"`

	ODS        []string `json:"ods"`
	Causas     []string `json:"causas"`
	TiposApoio []string `json:"tiposApoio"`
}

type updatePayload struct {
	Name        *string `json:"name"`
	Mission     *string `json:"mission"`
	Description *string `json:"description"`
	Sector      *string `json:"setor"`
	Size        *string `json:"size"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Website     *string `json:"website"`
	Location    *string `json:"localizacao"`
	Visible     *bool   `json:"visivel"`

	ODS        *[]string `json:"ods"`
	Causas     *[]string `json:"causas"`
	TiposApoio *[]string `json:"tiposApoio"`
}

// HandleCreate handles POST /.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var p createPayload
	if err := webjson.Decode(r, &p); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	co := models.Company{
		Name:        p.Name,
		Mission:     p.Mission,
		Description: p.Description,
		Sector:      p.Sector,
		Size:        p.Size,
		Email:       p.Email,
		Phone:       p.Phone,
		Website:     p.Website,
		Location:    p.Location,
		Visible:     p.Visible == nil || *p.Visible,

		ODSIDs:         listparams.IDsFromStrings(p.ODS),
		CauseIDs:       listparams.IDsFromStrings(p.Causas),
		SupportTypeIDs: listparams.IDsFromStrings(p.TiposApoio),
	}

	created, err := h.Store.Create(r.Context(), co)
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.Created(w, created)
}

// HandleUpdate handles PUT /{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := listparams.PathID(r, "id")
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	var p updatePayload
	if err := webjson.Decode(r, &p); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	upd := companystore.Update{
		Name:        p.Name,
		Mission:     p.Mission,
		Description: p.Description,
		Sector:      p.Sector,
		Size:        p.Size,
		Email:       p.Email,
		Phone:       p.Phone,
		Website:     p.Website,
		Location:    p.Location,
		Visible:     p.Visible,
	}
	if p.ODS != nil {
		ids := listparams.IDsFromStrings(*p.ODS)
		upd.ODSIDs = &ids
	}
	if p.Causas != nil {
		ids := listparams.IDsFromStrings(*p.Causas)
		upd.CauseIDs = &ids
	}
	if p.TiposApoio != nil {
		ids := listparams.IDsFromStrings(*p.TiposApoio)
		upd.SupportTypeIDs = &ids
	}

	updated, err := h.Store.Update(r.Context(), id, upd)
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.OK(w, updated)
}

// HandleVisibility handles PATCH /{id}/visibility.
func (h *Handler) HandleVisibility(w http.ResponseWriter, r *http.Request) {
	id, err := listparams.PathID(r, "id")
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	var p struct {
		Visible *bool `json:"visivel"`
	}
	if err := webjson.Decode(r, &p); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	if p.Visible == nil {
		h.Errs.WriteError(w, r, apperr.Invalid("visivel", "must be provided"))
		return
	}

	if err := h.Store.SetVisibility(r.Context(), id, *p.Visible); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.NoContent(w)
}

// HandleDelete handles DELETE /{id}. Everything the company owns goes
// with it.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := listparams.PathID(r, "id")
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	if err := h.Store.Delete(r.Context(), id); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.NoContent(w)
}
