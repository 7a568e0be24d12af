// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	impactstore "github.com/dalemusser/impacthub/internal/app/store/impact"
	"github.com/dalemusser/impacthub/internal/app/system/listparams"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the company impact dashboard.
type Handler struct {
	Engine *impactstore.Store
	Errs   *webjson.ErrorWriter
	Log    *zap.Logger
}

// NewHandler constructs a Dashboard handler bound to a DB and logger.
// The logger is shared with the aggregation engine, which logs widget
// failures instead of propagating them.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Engine: impactstore.New(db, logger),
		Errs:   webjson.NewErrorWriter(logger),
		Log:    logger,
	}
}

// ServeDashboard handles GET /companies/{id}/dashboard. A widget whose
// data access failed comes back zeroed; the response itself is 200 for
// any well-formed id.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	id, err := listparams.PathID(r, "id")
	if err != nil {
		h.Errs.WriteError(w, r, err)
		return
	}
	webjson.OK(w, h.Engine.Dashboard(r.Context(), id))
}
