// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/dalemusser/mentorhub/internal/app/features/health"
	notificationsfeature "github.com/dalemusser/mentorhub/internal/app/features/notifications"
	portfoliosfeature "github.com/dalemusser/mentorhub/internal/app/features/portfolios"
	projectstudiesfeature "github.com/dalemusser/mentorhub/internal/app/features/projectstudies"
	portfoliosvc "github.com/dalemusser/mentorhub/internal/app/services/portfolio"
	projectstudysvc "github.com/dalemusser/mentorhub/internal/app/services/projectstudy"
	notificationstore "github.com/dalemusser/mentorhub/internal/app/store/notifications"
	portfoliostore "github.com/dalemusser/mentorhub/internal/app/store/portfolios"
	projectstudystore "github.com/dalemusser/mentorhub/internal/app/store/projectstudies"
	userstore "github.com/dalemusser/mentorhub/internal/app/store/users"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// MentorHub builds the store and service layers over the shared Mongo
// database and mounts the JSON API feature routers under /api, plus the
// health endpoint for load balancers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	// Stores
	portfolios := portfoliostore.New(db)
	projectStudies := projectstudystore.New(db)
	notifications := notificationstore.New(db)
	users := userstore.New(db)

	// Services
	portfolioSvc := portfoliosvc.New(portfolios, users, logger)
	projectStudySvc := projectstudysvc.New(projectStudies, notifications, users, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api", func(r chi.Router) {
		portfoliosHandler := portfoliosfeature.NewHandler(portfolioSvc, logger)
		r.Mount("/portfolios", portfoliosfeature.Routes(portfoliosHandler))

		projectStudiesHandler := projectstudiesfeature.NewHandler(projectStudySvc, logger)
		r.Mount("/project-studies", projectstudiesfeature.Routes(projectStudiesHandler))

		notificationsHandler := notificationsfeature.NewHandler(notifications, logger)
		r.Mount("/notifications", notificationsfeature.Routes(notificationsHandler))
	})

	return r, nil
}
