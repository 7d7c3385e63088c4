package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/docs"
	"github.com/Cdhernandezr/abchroy-crm/internal/analytics"
	"github.com/Cdhernandezr/abchroy-crm/internal/auth"
	"github.com/Cdhernandezr/abchroy-crm/internal/config"
	"github.com/Cdhernandezr/abchroy-crm/internal/database"
	"github.com/Cdhernandezr/abchroy-crm/internal/http/handler"
	"github.com/Cdhernandezr/abchroy-crm/internal/http/middleware"
	"github.com/Cdhernandezr/abchroy-crm/internal/http/router"
	"github.com/Cdhernandezr/abchroy-crm/internal/jobs"
	"github.com/Cdhernandezr/abchroy-crm/internal/logger"
	"github.com/Cdhernandezr/abchroy-crm/internal/repository"
	"github.com/Cdhernandezr/abchroy-crm/internal/service"
	"github.com/Cdhernandezr/abchroy-crm/internal/storage"
	"go.uber.org/zap"
)

// @title ABCHROY CRM API
// @version 1.0
// @description Sales pipeline board and analytics API

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session JWT Bearer token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description Admin API key for system operations

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Basic configuration first, for logging setup
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	if basicCfg.App.Environment == "development" || basicCfg.App.Environment == "local" {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	} else {
		docs.SwaggerInfo.Host = ""
	}

	// Secrets come from Key Vault in staging/production, the environment otherwise
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connected", zap.String("host", cfg.Database.Host), zap.String("name", cfg.Database.Name))

	location := cfg.App.Location()
	clock := analytics.SystemClock{Location: location}
	log.Info("Analytics clock configured", zap.String("timezone", location.String()))

	// Repositories
	pipelineRepo := repository.NewPipelineRepository(db)
	stageRepo := repository.NewStageRepository(db)
	dealRepo := repository.NewDealRepository(db)
	userRepo := repository.NewUserRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	goalRepo := repository.NewGoalRepository(db)

	// Services
	analyticsService := service.NewAnalyticsService(pipelineRepo, stageRepo, dealRepo, userRepo, accountRepo, goalRepo, clock, log)
	dashboardService := service.NewDashboardService(pipelineRepo, stageRepo, dealRepo, clock, log)
	boardService := service.NewBoardService(pipelineRepo, stageRepo, dealRepo, userRepo, accountRepo, clock, log)
	goalService := service.NewGoalService(goalRepo, log)

	// Nightly analytics export and its read-back endpoint
	var (
		store           storage.Storage
		snapshotHandler *handler.SnapshotHandler
	)
	if cfg.Snapshot.Enabled {
		store, err = storage.NewStorage(&cfg.Storage, log)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))
		snapshotHandler = handler.NewSnapshotHandler(service.NewSnapshotService(store, cfg.Snapshot.Prefix, log), log)
	} else {
		log.Info("Analytics snapshot export disabled")
	}

	rt := router.NewRouter(
		cfg,
		log,
		db,
		auth.NewMiddleware(cfg, log),
		middleware.NewRateLimiter(&cfg.RateLimit, log),
		router.Handlers{
			Pipeline:  handler.NewPipelineHandler(boardService, log),
			Analytics: handler.NewAnalyticsHandler(analyticsService, log),
			Dashboard: handler.NewDashboardHandler(dashboardService, log),
			Deal:      handler.NewDealHandler(boardService, log),
			Goal:      handler.NewGoalHandler(goalService, log),
			Snapshot:  snapshotHandler,
		},
	)

	var scheduler *jobs.Scheduler
	if store != nil {
		scheduler = jobs.NewScheduler(log)
		job := jobs.NewSnapshotJob(analyticsService, store, cfg.Snapshot.Prefix, cfg.Snapshot.TimeoutDuration(), cfg.Snapshot.RetentionDays, clock, log)
		if err := jobs.RegisterSnapshotJob(scheduler, job, cfg.Snapshot.Cron); err != nil {
			return fmt.Errorf("failed to register snapshot job: %w", err)
		}
		scheduler.Start()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			<-scheduler.Stop().Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		log.Info("Server stopped gracefully")
	}

	return nil
}
