// internal/app/features/registrations/registrations.go
package registrations

import (
	"net/http"

	registrationstore "github.com/dalemusser/impacthub/internal/app/store/registrations"
	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/app/system/listparams"
	"github.com/dalemusser/impacthub/internal/app/system/paging"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"github.com/dalemusser/impacthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// createPayload is the public registration body. Exactly one of
// eventId/initiativeId must be present; the store enforces it.
type createPayload struct {
	EventID      string `json:"eventId"`
	InitiativeID string `json:"initiativeId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Message      string `json:"message"`
}

// HandleCreate handles the public POST /registrations.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var p createPayload
	if err := webjson.Decode(r, &p); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	reg := models.Registration{
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Message: p.Message,
	}
	if p.EventID != "" {
		id, err := primitive.ObjectIDFromHex(p.EventID)
		if err != nil {
			h.Errs.WriteError(w, r, apperr.Invalid("eventId", "malformed id"))
			return
		}
		reg.EventID = &id
	}
	if p.InitiativeID != "" {
		id, err := primitive.ObjectIDFromHex(p.InitiativeID)
		if err != nil {
			h.Errs.WriteError(w, r, apperr.Invalid("initiativeId", "malformed id"))
			return
		}
		reg.InitiativeID = &id
	}

	created, err := h.Store.Create(r.Context(), reg)
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.Created(w, created)
}

// ServeList handles the admin GET /registrations.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := registrationstore.Filter{
		EventID:      listparams.ID(r, "eventId"),
		InitiativeID: listparams.ID(r, "initiativeId"),
		Status:       listparams.String(r, "status"),
		Email:        listparams.String(r, "email"),
	}

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
	reg, err := h.Store.GetByID(r.Context(), id)
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.OK(w, reg)
}

// HandleStatus handles PATCH /{id}/status.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := listparams.PathID(r, "id")
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	var p struct {
		Status string `json:"status"`
	}
	if err := webjson.Decode(r, &p); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	updated, err := h.Store.UpdateStatus(r.Context(), id, p.Status)
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.OK(w, updated)
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
