// internal/app/features/initiatives/initiatives.go
package initiatives

import (
	"net/http"
	"time"

	initiativestore "github.com/dalemusser/impacthub/internal/app/store/initiatives"
	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/app/system/listparams"
	"github.com/dalemusser/impacthub/internal/app/system/paging"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"github.com/dalemusser/impacthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList handles GET / for both the public and admin listings;
// initiatives have no visibility flag, so the two views coincide.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := initiativestore.Filter{
		Query:        listparams.String(r, "q"),
		Causes:       listparams.IDList(r, "causas"),
		SupportTypes: listparams.IDList(r, "tiposApoio"),
		Status:       listparams.String(r, "status"),
		CompanyID:    listparams.ID(r, "empresaId"),
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
	in, err := h.Store.GetByID(r.Context(), id)
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.OK(w, in)
}

type createPayload struct {
	Title         string     `json:"title"`
	CompanyID     string     `json:"empresaId"`
	CauseID       string     `json:"causaId"`
	SupportTypeID string     `json:"tipoApoioId"`
	Status        string     `json:"status"`
	StartDate     *time.Time `json:"startDate"`
}

type updatePayload struct {
	Title         *string    `json:"title"`
	CauseID       *string    `json:"causaId"`
	SupportTypeID *string    `json:"tipoApoioId"`
	Status        *string    `json:"status"`
	StartDate     *time.Time `json:"startDate"`
}

// HandleCreate handles POST /.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var p createPayload
	if err := webjson.Decode(r, &p); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	in := models.Initiative{Title: p.Title, Status: p.Status}
	var err error
	if in.CompanyID, err = primitive.ObjectIDFromHex(p.CompanyID); err != nil {
		h.Errs.WriteError(w, r, apperr.Invalid("empresaId", "malformed id"))
		return
	}
	if in.CauseID, err = primitive.ObjectIDFromHex(p.CauseID); err != nil {
		h.Errs.WriteError(w, r, apperr.Invalid("causaId", "malformed id"))
		return
	}
	if in.SupportTypeID, err = primitive.ObjectIDFromHex(p.SupportTypeID); err != nil {
		h.Errs.WriteError(w, r, apperr.Invalid("tipoApoioId", "malformed id"))
		return
	}
	if p.StartDate != nil {
		in.StartDate = *p.StartDate
	}

	created, err := h.Store.Create(r.Context(), in)
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

	upd := initiativestore.Update{
		Title:     p.Title,
		Status:    p.Status,
		StartDate: p.StartDate,
	}
	if p.CauseID != nil {
		cid, err := primitive.ObjectIDFromHex(*p.CauseID)
		if err != nil {
			h.Errs.WriteError(w, r, apperr.Invalid("causaId", "malformed id"))
			return
		}
		upd.CauseID = &cid
	}
	if p.SupportTypeID != nil {
		sid, err := primitive.ObjectIDFromHex(*p.SupportTypeID)
		if err != nil {
			h.Errs.WriteError(w, r, apperr.Invalid("tipoApoioId", "malformed id"))
			return
		}
		upd.SupportTypeID = &sid
	}

	updated, err := h.Store.Update(r.Context(), id, upd)
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
