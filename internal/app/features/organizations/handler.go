// internal/app/features/organizations/handler.go
package organizations

import (
	organizationstore "github.com/dalemusser/impacthub/internal/app/store/organizations"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Organizations.
type Handler struct {
	Store *organizationstore.Store
	Errs  *webjson.ErrorWriter
	Log   *zap.Logger
}

// NewHandler constructs an Organizations handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: organizationstore.New(db),
		Errs:  webjson.NewErrorWriter(logger),
		Log:   logger,
	}
}
