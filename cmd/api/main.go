package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zhasna/Mental-Wellness-App/internal/auth"
	"github.com/Zhasna/Mental-Wellness-App/internal/config"
	"github.com/Zhasna/Mental-Wellness-App/internal/database"
	"github.com/Zhasna/Mental-Wellness-App/internal/handlers"
	middlewareCustom "github.com/Zhasna/Mental-Wellness-App/internal/middleware"
	"github.com/Zhasna/Mental-Wellness-App/internal/repositories"
	"github.com/Zhasna/Mental-Wellness-App/internal/routes"
	"github.com/Zhasna/Mental-Wellness-App/internal/services"
	pkghttp "github.com/Zhasna/Mental-Wellness-App/pkg/http"
	pkglogger "github.com/Zhasna/Mental-Wellness-App/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.Info("configuration loaded", slog.String("env", cfg.Server.Env))

	// Initialize database
	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(logger); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	entryRepo := repositories.NewEntryRepository(db)
	goalRepo := repositories.NewGoalRepository(db)
	moodRepo := repositories.NewMoodRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	// Session store and login throttle live in process memory; restart
	// logs everyone out, which is acceptable for this service.
	sessions := auth.NewSessionStore(cfg.Auth.SessionTTL)
	throttle := services.NewLoginThrottle(services.ThrottleConfig{
		MaxAttempts: cfg.Auth.LoginMaxAttempts,
		Window:      cfg.Auth.LoginAttemptWindow,
	}, logger)

	timingDelay := auth.NewTimingDelay(auth.TimingConfig{
		BaseDelayMs:    cfg.Auth.TimingDelayBaseMs,
		RandomDelayMs:  cfg.Auth.TimingDelayRandomMs,
		DelayOnSuccess: cfg.Auth.TimingDelayOnSuccess,
	})

	auditLogger := pkglogger.NewAuditLogger(logger)

	// Initialize services
	authService := services.NewAuthService(userRepo, sessions, throttle, timingDelay, logger, auditLogger)
	entryService := services.NewEntryService(entryRepo, logger)
	goalService := services.NewGoalService(goalRepo, logger)
	moodService := services.NewMoodService(moodRepo, logger)
	profileService := services.NewProfileService(userRepo, logger, auditLogger)
	statsService := services.NewStatsService(statsRepo, logger)

	// Initialize handlers
	ipConfig := &pkghttp.IPConfig{TrustedProxies: cfg.Server.TrustedProxies}
	cookieConfig := auth.CookieConfig{
		Secure:   cfg.Server.Env == "production",
		SameSite: "lax",
	}

	authHandler := handlers.NewAuthHandler(authService, ipConfig, cookieConfig)
	entryHandler := handlers.NewEntryHandler(entryService)
	goalHandler := handlers.NewGoalHandler(goalService)
	moodHandler := handlers.NewMoodHandler(moodService)
	profileHandler := handlers.NewProfileHandler(profileService, ipConfig)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Setup router
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middlewareCustom.SecurityHeaders(middlewareCustom.SecurityHeadersConfig{Env: cfg.Server.Env}))
	router.Use(middlewareCustom.CORS(middlewareCustom.DefaultCORSConfig(cfg.Server.AllowedOrigins)))
	router.Use(middlewareCustom.SecureLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// Register routes
	routes.RegisterRoutes(router, sessions,
		authHandler, entryHandler, goalHandler, moodHandler, profileHandler, statsHandler,
		cfg.Auth.RegisterRatePerMin,
	)

	// Health check with database
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.HealthCheck(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unhealthy","database":"down"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","database":"up"}`))
	})

	// Create server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server
	go func() {
		logger.Info("starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	logger.Info("server stopped")
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
