// Package main is the entrypoint for the ApplyTrack API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/applytrack/applytrack/internal/cache"
	"github.com/applytrack/applytrack/internal/config"
	"github.com/applytrack/applytrack/internal/handler"
	"github.com/applytrack/applytrack/internal/metrics"
	"github.com/applytrack/applytrack/internal/middleware"
	"github.com/applytrack/applytrack/internal/repository"
	"github.com/applytrack/applytrack/internal/server"
	"github.com/applytrack/applytrack/internal/service"
	"github.com/applytrack/applytrack/internal/token"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Run migrations before opening the runtime pool
	if err := repository.Migrate(ctx, cfg.DatabaseURL); err != nil {
		logger.Error(
			"failed to run migrations",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	logger.Info("migrations applied")

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	// Initialize cache (backs the rate limiter)
	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	defer cacheClient.Close()
	logger.Info("connected to Redis")

	// Initialize services
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTLifespan)
	recorder := metrics.NewInMemory()
	authService := service.NewAuthService(repo, tokens, recorder)
	jobService := service.NewJobService(repo, recorder)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	metricsHandler := handler.NewMetricsHandler(recorder)
	authHandler := handler.NewAuthHandler(authService, logger)
	jobHandler := handler.NewJobHandler(jobService, logger)

	// Setup router
	r := setupRouter(routerDeps{
		base:    h,
		health:  healthHandler,
		metrics: metricsHandler,
		auth:    authHandler,
		jobs:    jobHandler,
		tokens:  tokens,
		cache:   cacheClient,
		rec:     recorder,
		cfg:     cfg,
		logger:  logger,
	})

	// Create and run server
	srv := server.New(r, server.Config{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	srv.OnShutdown("database", func(context.Context) error {
		repo.Close()
		return nil
	})
	srv.OnShutdown("redis", func(context.Context) error {
		return cacheClient.Close()
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type routerDeps struct {
	base    *handler.Handler
	health  *handler.HealthHandler
	metrics *handler.MetricsHandler
	auth    *handler.AuthHandler
	jobs    *handler.JobHandler
	tokens  *token.Manager
	cache   *cache.Cache
	rec     metrics.Recorder
	cfg     *config.Config
	logger  *slog.Logger
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.logger))
	r.Use(middleware.Recoverer(deps.logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment: deps.cfg.IsDevelopment(),
	}))
	r.Use(middleware.MaxBodySize(deps.cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = deps.cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Health endpoints (no auth required)
	r.Get("/healthz", deps.health.Healthz)
	r.Get("/readyz", deps.health.Readyz)
	r.Get("/metrics", deps.metrics.Metrics)

	// Root info endpoint
	r.Get("/", deps.base.Hello)

	authCfg := middleware.AuthConfig{
		Logger:  deps.logger,
		Tokens:  deps.tokens,
		Metrics: deps.rec,
	}

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:   deps.logger,
		Cache:    deps.cache,
		Enabled:  deps.cfg.RateLimitEnabled,
		Requests: deps.cfg.RateLimitRequests,
		Window:   deps.cfg.RateLimitWindow,
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(rateLimitCfg))

		// Auth routes are open
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.auth.Register)
			r.Post("/login", deps.auth.Login)
		})

		// Job routes require a valid token
		r.Route("/jobs", func(r chi.Router) {
			r.Use(middleware.Auth(authCfg))

			r.Get("/", deps.jobs.List)
			r.Post("/", deps.jobs.Create)
			r.Get("/{id}", deps.jobs.Get)
			r.Patch("/{id}", deps.jobs.Update)
			r.Delete("/{id}", deps.jobs.Delete)
		})
	})

	// 404 and 405 handlers
	r.NotFound(deps.base.NotFound)
	r.MethodNotAllowed(deps.base.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
