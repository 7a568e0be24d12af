// internal/app/features/collaborators/collaborators.go
package collaborators

import (
	"net/http"

	collaboratorstore "github.com/dalemusser/impacthub/internal/app/store/collaborators"
	"github.com/dalemusser/impacthub/internal/app/system/listparams"
	"github.com/dalemusser/impacthub/internal/app/system/paging"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"github.com/dalemusser/impacthub/internal/domain/models"
)

// ServeList handles GET /, scoped to the owning company.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	companyID, err := listparams.PathID(r, "id")
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	page, err := h.Store.List(r.Context(), companyID,
		listparams.PageRequest(r, paging.WideLimit), listparams.String(r, "sort"))
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.List(w, page)
}

type payload struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// HandleCreate handles POST /.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	companyID, err := listparams.PathID(r, "id")
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	var p payload
	if err := webjson.Decode(r, &p); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	created, err := h.Store.Create(r.Context(), models.Collaborator{
		CompanyID: companyID,
		Name:      p.Name,
		Role:      p.Role,
		Email:     p.Email,
		Phone:     p.Phone,
	})
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.Created(w, created)
}

type updatePayload struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// HandleUpdate handles PUT /{colID}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	colID, err := listparams.PathID(r, "colID")
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	var p updatePayload
	if err := webjson.Decode(r, &p); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	updated, err := h.Store.Update(r.Context(), colID, collaboratorstore.Update{
		Name:  p.Name,
		Role:  p.Role,
		Email: p.Email,
		Phone: p.Phone,
	})
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.OK(w, updated)
}

// HandleDelete handles DELETE /{colID}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	colID, err := listparams.PathID(r, "colID")
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	if err := h.Store.Delete(r.Context(), colID); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.NoContent(w)
}
