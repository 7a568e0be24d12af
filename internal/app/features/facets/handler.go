// internal/app/features/facets/handler.go
package facets

import (
	facetstore "github.com/dalemusser/impacthub/internal/app/store/facets"
	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/app/system/webjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// slugs maps URL path segments to facet kinds. The segment names are
// the ones the filter UIs use as query keys.
var slugs = map[string]facetstore.Kind{
	"ods":         facetstore.ODS,
	"causas":      facetstore.Cause,
	"areas":       facetstore.Area,
	"tipos-apoio": facetstore.SupportType,
	"colaboracao": facetstore.CollaborationType,
}

// Handler serves all five facet lookup kinds from one place.
type Handler struct {
	stores map[facetstore.Kind]*facetstore.Store
	Errs   *webjson.ErrorWriter
	Log    *zap.Logger
}

// NewHandler constructs a Facets handler with one store per kind.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	stores := make(map[facetstore.Kind]*facetstore.Store, len(facetstore.Kinds))
	for _, kind := range facetstore.Kinds {
		stores[kind] = facetstore.New(db, kind)
	}
	return &Handler{
		stores: stores,
		Errs:   webjson.NewErrorWriter(logger),
		Log:    logger,
	}
}

func (h *Handler) storeFor(slug string) (*facetstore.Store, error) {
	kind, ok := slugs[slug]
	if !ok {
		return nil, apperr.Newf(apperr.NotFound, "unknown facet kind %q", slug)
	}
	return h.stores[kind], nil
}
