// internal/app/features/collaborators/handler.go
package collaborators

import (
	collaboratorstore "github.com/dalemusser/impacthub/internal/app/store/collaborators"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler manages company collaborators. Its routes are mounted under
// /companies/{id}/collaborators, so every operation is company-scoped.
type Handler struct {
	Store *collaboratorstore.Store
	Errs  *webjson.ErrorWriter
	Log   *zap.Logger
}

// NewHandler constructs a Collaborators handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: collaboratorstore.New(db),
		Errs:  webjson.NewErrorWriter(logger),
		Log:   logger,
	}
}
