// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/lucaskane/eventboard/internal/auth"
	"github.com/lucaskane/eventboard/internal/config"
	"github.com/lucaskane/eventboard/internal/database"
	"github.com/lucaskane/eventboard/internal/handler"
	"github.com/lucaskane/eventboard/internal/repository"
	"github.com/lucaskane/eventboard/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	logger := config.NewLogger(cfg)

	// ── 1. Connect to PostgreSQL and apply migrations ────────────────────
	pool, err := database.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to postgres")

	if err := database.MigrateUp(cfg.MigrateURL(), cfg.MigrationsPath); err != nil {
		logger.Fatal().Err(err).Msg("migrations")
	}

	// ── 2. Wire up layers ────────────────────────────────────────────────
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry, cfg.JWTIssuer)

	userRepo := repository.NewUserRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	regRepo := repository.NewRegistrationRepository(pool)

	authSvc := service.NewAuthService(userRepo, tokens)
	eventSvc := service.NewEventService(eventRepo)
	regSvc := service.NewRegistrationService(eventRepo, regRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	regHandler := handler.NewRegistrationHandler(regSvc)

	requireAuth := handler.RequireAuth(tokens)

	// ── 3. Build the router ───────────────────────────────────────────────
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(handler.RequestLogging(logger))
	r.Use(handler.Metrics)
	r.Use(handler.CORS)

	// Health & metrics
	r.Get("/health", handler.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/status", handler.Status(pool))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", eventHandler.ListEvents)
			r.Get("/{id}", eventHandler.GetEvent)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", eventHandler.CreateEvent)
				r.Delete("/{id}", eventHandler.DeleteEvent)
			})
		})

		r.Route("/registrations", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", regHandler.Register)
			r.Get("/my-registrations", regHandler.MyRegistrations)
			r.Get("/event/{eventId}/attendees", regHandler.Attendees)
		})
	})

	// Static frontend – serve the web/ directory at the root when present.
	if _, err := os.Stat(cfg.WebDir); err == nil {
		r.Handle("/*", http.FileServer(http.Dir(cfg.WebDir)))
	}

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("server stopped")
}
