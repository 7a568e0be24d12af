// internal/app/features/registrations/handler.go
package registrations

import (
	registrationstore "github.com/dalemusser/impacthub/internal/app/store/registrations"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Registrations. Creation
// is public; review and listing are admin operations.
type Handler struct {
	Store *registrationstore.Store
	Errs  *webjson.ErrorWriter
	Log   *zap.Logger
}

// NewHandler constructs a Registrations handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: registrationstore.New(db, logger),
		Errs:  webjson.NewErrorWriter(logger),
		Log:   logger,
	}
}
