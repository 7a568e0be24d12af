// internal/app/features/snapshots/snapshots.go
package snapshots

import (
	"net/http"

	"github.com/dalemusser/impacthub/internal/app/system/listparams"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"github.com/dalemusser/impacthub/internal/domain/models"
)

// ServeList handles GET /, chronological, optionally from a year on.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	companyID, err := listparams.PathID(r, "id")
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}

	snaps, err := h.Store.ListByCompany(r.Context(), companyID, listparams.Int(r, "fromYear"))
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	if snaps == nil {
		snaps = []models.ImpactSnapshot{}
	}
	webjson.OK(w, snaps)
}

type payload struct {
	Year           int     `json:"year"`
	Month          int     `json:"month"`
	VolunteerHours int64   `json:"volunteerHours"`
	ProjectCount   int64   `json:"projectCount"`
	VolunteerCount int64   `json:"volunteerCount"`
	DonationValue  float64 `json:"donationValue"`
}

// HandleCreate handles POST /. A period already written is a conflict,
// not an overwrite.
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

	created, err := h.Store.Create(r.Context(), models.ImpactSnapshot{
		CompanyID:      companyID,
		Year:           p.Year,
		Month:          p.Month,
		VolunteerHours: p.VolunteerHours,
		ProjectCount:   p.ProjectCount,
		VolunteerCount: p.VolunteerCount,
		DonationValue:  p.DonationValue,
	})
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.Created(w, created)
}

// HandleDelete handles DELETE /{snapID}, kept for admin corrections.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	snapID, err := listparams.PathID(r, "snapID")
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	if err := h.Store.Delete(r.Context(), snapID); err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.NoContent(w)
}
