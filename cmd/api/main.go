// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/folio-api/internal/admin"
	"github.com/carterperez-dev/folio-api/internal/auth"
	"github.com/carterperez-dev/folio-api/internal/config"
	"github.com/carterperez-dev/folio-api/internal/contact"
	"github.com/carterperez-dev/folio-api/internal/content"
	"github.com/carterperez-dev/folio-api/internal/core"
	"github.com/carterperez-dev/folio-api/internal/experience"
	"github.com/carterperez-dev/folio-api/internal/health"
	"github.com/carterperez-dev/folio-api/internal/middleware"
	"github.com/carterperez-dev/folio-api/internal/projects"
	"github.com/carterperez-dev/folio-api/internal/server"
	"github.com/carterperez-dev/folio-api/internal/skills"
	"github.com/carterperez-dev/folio-api/internal/storage"
	"github.com/carterperez-dev/folio-api/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	userRepo := user.NewRepository(db.DB)

	authRepo := auth.NewRepository(db.DB)
	authSvc := auth.NewService(authRepo, userRepo, cfg.Session.Duration)
	authHandler := auth.NewHandler(authSvc, auth.CookieSettings{
		Name:   cfg.Session.CookieName,
		Secure: cfg.IsProduction(),
	})

	contentSvc := content.NewService(db.DB)
	contentHandler := content.NewHandler(contentSvc)

	skillsSvc := skills.NewService(db.DB)
	skillsHandler := skills.NewHandler(skillsSvc)

	experienceSvc := experience.NewService(db.DB)
	experienceHandler := experience.NewHandler(experienceSvc)

	projectsSvc := projects.NewService(db.DB, contentSvc)
	projectsHandler := projects.NewHandler(projectsSvc)

	mailer := contact.NewSMTPMailer(
		cfg.Mail.Host,
		cfg.Mail.Port,
		cfg.Mail.From,
		cfg.Mail.To,
	)
	contactHandler := contact.NewHandler(contact.NewService(mailer))

	storageSvc, err := storage.NewService(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	storageHandler := storage.NewHandler(storageSvc)

	adminHandler := admin.NewHandler(db.DB, db.Stats, redis.PoolStats)

	healthHandler := health.NewHandler(db, redis)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(authSvc, cfg.Session.CookieName)

	loginLimiter := middleware.NewRateLimiter(
		redis.Client,
		middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.LoginPerMinute,
				cfg.RateLimit.LoginPerMinute,
			),
			KeyFunc: keyedBy("login"),
		},
	).Handler

	contactLimiter := middleware.NewRateLimiter(
		redis.Client,
		middleware.RateLimitConfig{
			Limit: middleware.PerHour(
				cfg.RateLimit.ContactPerHour,
				cfg.RateLimit.ContactPerHour,
			),
			KeyFunc: keyedBy("contact"),
		},
	).Handler

	router.Route("/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator, loginLimiter)

		skillsHandler.RegisterRoutes(r)
		experienceHandler.RegisterRoutes(r)
		projectsHandler.RegisterRoutes(r)
		contentHandler.RegisterRoutes(r)
		contactHandler.RegisterRoutes(r, contactLimiter)

		skillsHandler.RegisterAdminRoutes(r, authenticator)
		experienceHandler.RegisterAdminRoutes(r, authenticator)
		projectsHandler.RegisterAdminRoutes(r, authenticator)
		contentHandler.RegisterAdminRoutes(r, authenticator)
		storageHandler.RegisterAdminRoutes(r, authenticator)
		adminHandler.RegisterRoutes(r, authenticator)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// keyedBy namespaces the rate limit key so the per-route limiters do not
// share counters with the global one.
func keyedBy(scope string) func(*http.Request) string {
	return func(r *http.Request) string {
		return scope + ":" + middleware.KeyByIP(r)
	}
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
