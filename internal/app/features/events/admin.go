// internal/app/features/events/admin.go
package events

import (
	"net/http"
	"time"

	eventstore "github.com/dalemusser/impacthub/internal/app/store/events"
	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/app/system/listparams"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"github.com/dalemusser/impacthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createPayload struct {
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	OrganizationID   string    `json:"organizacaoId"`
	StartsAt         time.Time `json:"startsAt"`
	EndsAt           time.Time `json:"endsAt"`
	Address          string    `json:"address"`
	Location         string    `json:"localizacao"`
	Modality         string    `json:"modalidade"`
	Capacity         int       `json:"capacity"`
	RegistrationOpen *bool     `json:"registrationOpen"`
	Visible          *bool     `json:"visivel"`

	ODS   []string `json:"ods"`
	Areas []string `json:"areas"`
}

type updatePayload struct {
	Name             *string    `json:"name"`
	Description      *string    `json:"description"`
	StartsAt         *time.Time `json:"startsAt"`
	EndsAt           *time.Time `json:"endsAt"`
	Address          *string    `json:"address"`
	Location         *string    `json:"localizacao"`
	Modality         *string    `json:"modalidade"`
	Capacity         *int       `json:"capacity"`
	RegistrationOpen *bool      `json:"registrationOpen"`
	Visible          *bool      `json:"visivel"`

	ODS   *[]string `json:"ods"`
	Areas *[]string `json:"areas"`
}

// HandleCreate handles POST /.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var p createPayload
	if err := webjson.Decode(r, &p); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	orgID, err := primitive.ObjectIDFromHex(p.OrganizationID)
	if err != nil {
		h.Errs.WriteError(w, r, apperr.Invalid("organizacaoId", "malformed id"))
		return
	}

	ev := models.Event{
		Name:             p.Name,
		Description:      p.Description,
		OrganizationID:   orgID,
		StartsAt:         p.StartsAt,
		EndsAt:           p.EndsAt,
		Address:          p.Address,
		Location:         p.Location,
		Modality:         p.Modality,
		Capacity:         p.Capacity,
		RegistrationOpen: p.RegistrationOpen == nil || *p.RegistrationOpen,
		Visible:          p.Visible == nil || *p.Visible,

		ODSIDs:  listparams.IDsFromStrings(p.ODS),
		AreaIDs: listparams.IDsFromStrings(p.Areas),
	}

	created, err := h.Store.Create(r.Context(), ev)
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

	upd := eventstore.Update{
		Name:             p.Name,
		Description:      p.Description,
		StartsAt:         p.StartsAt,
		EndsAt:           p.EndsAt,
		Address:          p.Address,
		Location:         p.Location,
		Modality:         p.Modality,
		Capacity:         p.Capacity,
		RegistrationOpen: p.RegistrationOpen,
		Visible:          p.Visible,
	}
	if p.ODS != nil {
		ids := listparams.IDsFromStrings(*p.ODS)
		upd.ODSIDs = &ids
	}
	if p.Areas != nil {
		ids := listparams.IDsFromStrings(*p.Areas)
		upd.AreaIDs = &ids
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
