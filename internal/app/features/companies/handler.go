// internal/app/features/companies/handler.go
package companies

import (
	companystore "github.com/dalemusser/impacthub/internal/app/store/companies"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Companies.
type Handler struct {
	Store *companystore.Store
	Errs  *webjson.ErrorWriter
	Log   *zap.Logger
}

// NewHandler constructs a Companies handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: companystore.New(db),
		Errs:  webjson.NewErrorWriter(logger),
		Log:   logger,
	}
}
