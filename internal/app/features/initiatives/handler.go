// internal/app/features/initiatives/handler.go
package initiatives

import (
	initiativestore "github.com/dalemusser/impacthub/internal/app/store/initiatives"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Initiatives.
type Handler struct {
	Store *initiativestore.Store
	Errs  *webjson.ErrorWriter
	Log   *zap.Logger
}

// NewHandler constructs an Initiatives handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: initiativestore.New(db),
		Errs:  webjson.NewErrorWriter(logger),
		Log:   logger,
	}
}
