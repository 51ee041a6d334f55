package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/doacao-api/internal/config"
	appointmentHandler "github.com/jwalitptl/doacao-api/internal/handler/appointment"
	donorHandler "github.com/jwalitptl/doacao-api/internal/handler/donor"
	"github.com/jwalitptl/doacao-api/internal/handler/health"
	"github.com/jwalitptl/doacao-api/internal/handler/prometheus"
	reportHandler "github.com/jwalitptl/doacao-api/internal/handler/report"
	stockHandler "github.com/jwalitptl/doacao-api/internal/handler/stock"
	"github.com/jwalitptl/doacao-api/internal/middleware"
	"github.com/jwalitptl/doacao-api/internal/repository/postgres"
	"github.com/jwalitptl/doacao-api/internal/router"
	appointmentService "github.com/jwalitptl/doacao-api/internal/service/appointment"
	donorService "github.com/jwalitptl/doacao-api/internal/service/donor"
	reportService "github.com/jwalitptl/doacao-api/internal/service/report"
	stockService "github.com/jwalitptl/doacao-api/internal/service/stock"
	"github.com/jwalitptl/doacao-api/internal/worker"
	"github.com/jwalitptl/doacao-api/pkg/event"
	"github.com/jwalitptl/doacao-api/pkg/logger"
	"github.com/jwalitptl/doacao-api/pkg/messaging"
	"github.com/jwalitptl/doacao-api/pkg/messaging/redis"
	"github.com/jwalitptl/doacao-api/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.Setup(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if !cfg.Log.Pretty {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()
	log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("connected to database")

	if cfg.Database.AutoMigrate {
		n, err := postgres.MigrateUp(db)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
		log.Info().Int("applied", n).Msg("database migrated")
	}

	metricsHandler := prometheus.New(cfg.Monitoring.MetricsPrefix)
	m := metricsHandler.Metrics()

	// Initialize repositories
	donorRepo := postgres.NewDonorRepository(db, m)
	appointmentRepo := postgres.NewAppointmentRepository(db, m)
	stockRepo := postgres.NewStockRepository(db, m)
	reportRepo := postgres.NewReportRepository(db, m)

	// Change events go to Redis when configured
	var broker messaging.Broker = messaging.NoopBroker{}
	if cfg.Redis.URL != "" {
		broker, err = redis.NewRedisBroker(redis.Config{URL: cfg.Redis.URL}, appLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		log.Info().Str("prefix", cfg.Redis.Channel).Msg("publishing change events to Redis")
	}
	defer broker.Close()
	events := event.NewService(broker, cfg.Redis.Channel, m)
	eventTracker := event.NewEventTrackerMiddleware(events)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	if cfg.Monitoring.StockCheckInterval > 0 {
		go worker.NewStockMonitor(stockRepo, events, cfg.Monitoring.StockCheckInterval).Start(workerCtx)
	}

	// Setup router
	r := router.NewRouter(router.Handlers{
		Health:      health.NewHandler(db, cfg.Monitoring.ReadyCacheTTL),
		Donor:       donorHandler.NewHandler(donorService.NewService(donorRepo)),
		Appointment: appointmentHandler.NewHandler(appointmentService.NewService(appointmentRepo)),
		Stock:       stockHandler.NewHandler(stockService.NewService(stockRepo)),
		Report:      reportHandler.NewHandler(reportService.NewService(reportRepo, stockRepo)),
		Metrics:     metricsHandler,
	}, eventTracker, router.RouterConfig{
		RateLimit:    rate.Limit(cfg.RateLimit.RequestsPerSecond),
		RateBurst:    cfg.RateLimit.Burst,
		CORSConfig:   middleware.DefaultCORSConfig(cfg.CORS.AllowedOrigins),
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		MetricsPath:  cfg.Monitoring.MetricsPath,
	})
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
