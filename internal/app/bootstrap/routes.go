// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	collaboratorsfeature "github.com/dalemusser/impacthub/internal/app/features/collaborators"
	companiesfeature "github.com/dalemusser/impacthub/internal/app/features/companies"
	dashboardfeature "github.com/dalemusser/impacthub/internal/app/features/dashboard"
	eventsfeature "github.com/dalemusser/impacthub/internal/app/features/events"
	facetsfeature "github.com/dalemusser/impacthub/internal/app/features/facets"
	healthfeature "github.com/dalemusser/impacthub/internal/app/features/health"
	initiativesfeature "github.com/dalemusser/impacthub/internal/app/features/initiatives"
	organizationsfeature "github.com/dalemusser/impacthub/internal/app/features/organizations"
	registrationsfeature "github.com/dalemusser/impacthub/internal/app/features/registrations"
	snapshotsfeature "github.com/dalemusser/impacthub/internal/app/features/snapshots"
	"github.com/dalemusser/impacthub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed.
//
// The public surface serves the directory: organizations, companies and
// their dashboards, events, initiatives, facet lookup lists, and the
// registration endpoint. Everything under /admin carries the same
// handlers with the visibility scoping lifted, plus the write
// operations, behind the admin gate.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	gate := auth.NewGate(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, appCfg.AdminTokenHash, logger)

	db := deps.MongoDatabase

	orgHandler := organizationsfeature.NewHandler(db, logger)
	companyHandler := companiesfeature.NewHandler(db, logger)
	eventHandler := eventsfeature.NewHandler(db, logger)
	initiativeHandler := initiativesfeature.NewHandler(db, logger)
	registrationHandler := registrationsfeature.NewHandler(db, logger)
	facetHandler := facetsfeature.NewHandler(db, logger)
	collaboratorHandler := collaboratorsfeature.NewHandler(db, logger)
	snapshotHandler := snapshotsfeature.NewHandler(db, logger)
	dashboardHandler := dashboardfeature.NewHandler(db, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Public directory
	r.Mount("/organizations", organizationsfeature.PublicRoutes(orgHandler))
	r.Mount("/companies", companiesfeature.PublicRoutes(companyHandler, dashboardHandler.ServeDashboard))
	r.Mount("/events", eventsfeature.PublicRoutes(eventHandler))
	r.Mount("/initiatives", initiativesfeature.PublicRoutes(initiativeHandler))
	r.Mount("/registrations", registrationsfeature.PublicRoutes(registrationHandler))
	r.Mount("/facets", facetsfeature.PublicRoutes(facetHandler))

	// Back office
	r.Route("/admin", func(admin chi.Router) {
		admin.Mount("/organizations", organizationsfeature.AdminRoutes(orgHandler, gate))
		admin.Mount("/companies", companiesfeature.AdminRoutes(companyHandler, gate,
			collaboratorsfeature.Routes(collaboratorHandler),
			snapshotsfeature.Routes(snapshotHandler)))
		admin.Mount("/events", eventsfeature.AdminRoutes(eventHandler, gate))
		admin.Mount("/initiatives", initiativesfeature.AdminRoutes(initiativeHandler, gate))
		admin.Mount("/registrations", registrationsfeature.AdminRoutes(registrationHandler, gate))
		admin.Mount("/facets", facetsfeature.AdminRoutes(facetHandler, gate))
	})

	return r, nil
}
