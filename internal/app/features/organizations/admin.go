// internal/app/features/organizations/admin.go
package organizations

import (
	"net/http"

	organizationstore "github.com/dalemusser/impacthub/internal/app/store/organizations"
	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/app/system/listparams"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"github.com/dalemusser/impacthub/internal/domain/models"
)

// createPayload is the admin create body. Facet associations arrive as
// plain id arrays under the facet's own key.
type createPayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Mission     string   `json:"mission"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Website     string   `json:"website"`
	Location    string   `json:"localizacao"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Impact      []string `json:"impact"`
	Visible     *bool    `json:"visivel"`

	ODS         []string `json:"ods"`
	Areas       []string `json:"areas"`
	Colaboracao []string `json:"colaboracao"`
}

// updatePayload mirrors createPayload but every field is optional:
// absent keys leave the stored value untouched, and an explicitly
// empty facet array clears the association set.
type updatePayload struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Mission     *string   `json:"mission"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Website     *string   `json:"website"`
	Location    *string   `json:"localizacao"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Impact      *[]string `json:"impact"`
	Visible     *bool     `json:"visivel"`

	ODS         *[]string `json:"ods"`
	Areas       *[]string `json:"areas"`
	Colaboracao *[]string `json:"colaboracao"`
}

// HandleCreate handles POST /.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var p createPayload
	if err := webjson.Decode(r, &p); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	org := models.Organization{
		Name:        p.Name,
		Description: p.Description,
		Mission:     p.Mission,
		Email:       p.Email,
		Phone:       p.Phone,
		Website:     p.Website,
		Location:    p.Location,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Impact:      p.Impact,
		Visible:     p.Visible == nil || *p.Visible,

		ODSIDs:               listparams.IDsFromStrings(p.ODS),
		AreaIDs:              listparams.IDsFromStrings(p.Areas),
		CollaborationTypeIDs: listparams.IDsFromStrings(p.Colaboracao),
	}

	created, err := h.Store.Create(r.Context(), org)
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

	upd := organizationstore.Update{
		Name:        p.Name,
		Description: p.Description,
		Mission:     p.Mission,
		Email:       p.Email,
		Phone:       p.Phone,
		Website:     p.Website,
		Location:    p.Location,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Impact:      p.Impact,
		Visible:     p.Visible,
	}
	if p.ODS != nil {
		ids := listparams.IDsFromStrings(*p.ODS)
		upd.ODSIDs = &ids
	}
	if p.Areas != nil {
		ids := listparams.IDsFromStrings(*p.Areas)
		upd.AreaIDs = &ids
	}
	if p.Colaboracao != nil {
		ids := listparams.IDsFromStrings(*p.Colaboracao)
		upd.CollaborationTypeIDs = &ids
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

// HandleDelete handles DELETE /{id}.
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
