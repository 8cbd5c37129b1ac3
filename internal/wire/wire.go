// internal/wire/wire.go
package wire

import (
	"net/http"

	"gifboard/internal/adaptor"
	"gifboard/internal/data/repository"
	"gifboard/internal/usecase"
	"gifboard/pkg/giphy"
	"gifboard/pkg/middleware"
	"gifboard/pkg/token"
	"gifboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes from the shared handles.
func Wiring(
	repo *repository.Repository,
	db adaptor.Pinger,
	issuer token.Issuer,
	searcher giphy.Searcher,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, issuer, searcher, config, logger)
	handler := adaptor.NewHandler(service, logger)
	health := adaptor.NewHealthHandler(db, logger)
	metrics := middleware.NewMetrics("gifboard")

	router := setupRouter(handler, health, metrics, issuer, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	health *adaptor.HealthHandler,
	metrics *middleware.Metrics,
	issuer token.Issuer,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))
	r.Use(metrics.Middleware)

	requireAuth := middleware.Auth(issuer, logger)

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, requireAuth)
	wireComment(r, handler.Comment, requireAuth)
	wireRating(r, handler.Rating, requireAuth)
	wireSearch(r, handler.Search)

	// Operational endpoints
	r.Get("/", health.Root)
	r.Get("/health", health.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	return r
}
