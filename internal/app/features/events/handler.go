// internal/app/features/events/handler.go
package events

import (
	eventstore "github.com/dalemusser/impacthub/internal/app/store/events"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Events.
type Handler struct {
	Store *eventstore.Store
	Errs  *webjson.ErrorWriter
	Log   *zap.Logger
}

// NewHandler constructs an Events handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: eventstore.New(db),
		Errs:  webjson.NewErrorWriter(logger),
		Log:   logger,
	}
}
