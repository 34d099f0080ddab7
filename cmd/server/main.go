package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fincoach/internal/config"
	"fincoach/internal/database"
	"fincoach/internal/handlers"
	"fincoach/internal/middleware"
	"fincoach/internal/repositories"
	"fincoach/internal/services"
	"fincoach/internal/validation"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.Driver == config.DriverPostgres {
		sqlDB, err := db.DB.DB()
		if err != nil {
			slog.Error("failed to access sql.DB", "error", err)
			os.Exit(1)
		}
		runner := database.NewMigrationRunner(sqlDB)
		if err := runner.WaitForDatabase(); err != nil {
			slog.Error("database never became ready", "error", err)
			os.Exit(1)
		}
		if err := runner.RunMigrations(); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	} else {
		if err := db.AutoMigrate(); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	transactionRepo := repositories.NewTransactionRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	insightService := services.NewInsightService()
	ingestService := services.NewStatementIngestService(transactionRepo)

	var coachModel services.CoachModelInterface
	if model, err := services.NewWorkersAIClient(&cfg.Coach); err != nil {
		slog.Warn("coach model not configured, /ai-coach will be unavailable", "error", err)
	} else {
		breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
		coachModel = services.NewBreakerModel(model, breaker)
	}
	coachService := services.NewCoachService(transactionRepo, coachModel, cfg.Coach.Timeout)

	e := newServer(cfg, db, transactionRepo, insightService, ingestService, coachService, metrics)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("server starting", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func newServer(
	cfg *config.Config,
	db *database.DB,
	transactionRepo repositories.TransactionRepositoryInterface,
	insightService services.InsightServiceInterface,
	ingestService services.StatementIngestServiceInterface,
	coachService services.CoachServiceInterface,
	metrics services.MetricsRecorderInterface,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
	}))

	v := validation.GetValidator()
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, v, metrics)
	uploadHandler := handlers.NewUploadHandler(ingestService, metrics)
	coachHandler := handlers.NewCoachHandler(coachService, v, metrics)
	analyticsHandler := handlers.NewAnalyticsHandler(transactionRepo, insightService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", handlers.ResolveOwner())
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.DELETE("/transactions", transactionHandler.DeleteTransaction)
	api.POST("/upload", uploadHandler.UploadStatement)
	api.POST("/ai-coach", coachHandler.Chat)
	api.GET("/analytics/summary", analyticsHandler.GetSummary)
	api.GET("/analytics/insights", analyticsHandler.GetInsights)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(transactionRepo)
		api.POST("/dev/seed", devHandler.SeedLedger)
	}

	return e
}
