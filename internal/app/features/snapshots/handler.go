// internal/app/features/snapshots/handler.go
package snapshots

import (
	snapshotstore "github.com/dalemusser/impacthub/internal/app/store/snapshots"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler manages monthly impact snapshots. Its routes are mounted
// under /companies/{id}/snapshots, so every operation is company-scoped.
type Handler struct {
	Store *snapshotstore.Store
	Errs  *webjson.ErrorWriter
	Log   *zap.Logger
}

// NewHandler constructs a Snapshots handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: snapshotstore.New(db),
		Errs:  webjson.NewErrorWriter(logger),
		Log:   logger,
	}
}
