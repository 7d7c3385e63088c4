package router

import (
	"encoding/json"
	"net/http"

	"github.com/Cdhernandezr/abchroy-crm/internal/auth"
	"github.com/Cdhernandezr/abchroy-crm/internal/config"
	"github.com/Cdhernandezr/abchroy-crm/internal/database"
	"github.com/Cdhernandezr/abchroy-crm/internal/http/handler"
	"github.com/Cdhernandezr/abchroy-crm/internal/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/Cdhernandezr/abchroy-crm/docs" // swagger spec
)

// Handlers groups the API handlers mounted under /api/v1
type Handlers struct {
	Pipeline  *handler.PipelineHandler
	Analytics *handler.AnalyticsHandler
	Dashboard *handler.DashboardHandler
	Deal      *handler.DealHandler
	Goal      *handler.GoalHandler
	// Snapshot is nil when the snapshot export is disabled
	Snapshot *handler.SnapshotHandler
}

type Router struct {
	cfg            *config.Config
	logger         *zap.Logger
	db             *gorm.DB
	authMiddleware *auth.Middleware
	rateLimiter    *middleware.RateLimiter
	handlers       Handlers
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	handlers Handlers,
) *Router {
	return &Router{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
		handlers:       handlers,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)
	if timeout := rt.cfg.Server.RequestTimeoutDuration(); timeout > 0 {
		r.Use(chimiddleware.Timeout(timeout))
	}

	// Liveness probe
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Readiness probe with connection pool stats
	r.Get("/health/db", rt.databaseHealth)

	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rt.authMiddleware.Authenticate)

		r.Get("/pipelines", rt.handlers.Pipeline.List)
		r.Get("/pipelines/{id}/board", rt.handlers.Pipeline.GetBoard)

		r.Get("/analytics", rt.handlers.Analytics.GetCharts)
		if rt.handlers.Snapshot != nil {
			r.Get("/analytics/snapshots/{pipelineId}/{date}", rt.handlers.Snapshot.Get)
		}
		r.Get("/dashboard/metrics", rt.handlers.Dashboard.GetMetrics)

		r.Route("/deals", func(r chi.Router) {
			r.Post("/", rt.handlers.Deal.Create)
			r.Put("/{id}", rt.handlers.Deal.Update)
			r.Delete("/{id}", rt.handlers.Deal.Delete)
			r.Post("/{id}/move", rt.handlers.Deal.Move)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Get("/{year}", rt.handlers.Goal.Get)
			r.Put("/{year}", rt.handlers.Goal.Upsert)
		})
	})

	return r
}

func (rt *Router) databaseHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	stats, err := database.HealthCheckWithStats(r.Context(), rt.db)
	if err != nil {
		rt.logger.Error("Database health check failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "unhealthy",
			"error":   err.Error(),
			"service": "database",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "healthy",
		"service": "database",
		"stats":   stats,
	})
}
