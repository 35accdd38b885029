// Package server sets up the HTTP server, router, and all route definitions.
//
// This package is the "wiring" layer — it connects handlers, middleware, and
// routes. It decides which URL patterns map to which handler functions, what
// middleware runs on which routes, and how the server starts and stops
// gracefully.
//
// DEPENDENCY INJECTION FLOW:
// main.go creates the config, logger, repository (already seeded) and the
// mail bridge, and hands them all to New(). The server then assembles the
// rest of the chain:
//
//	repository → ContentService → handlers
//	mailer     → ContactService → ContactHandler
//
// This is the "composition root" pattern — all dependencies are wired in one
// place rather than scattered across the codebase. Note that seeding is NOT
// done here: the store arrives ready, and a seed failure has already aborted
// startup before the server exists.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/desenroladireito/desenrola-direito/internal/config"
	"github.com/desenroladireito/desenrola-direito/internal/handler"
	"github.com/desenroladireito/desenrola-direito/internal/mail"
	"github.com/desenroladireito/desenrola-direito/internal/middleware"
	"github.com/desenroladireito/desenrola-direito/internal/repository"
	"github.com/desenroladireito/desenrola-direito/internal/service"
)

// Server holds the router and everything it needs to run.
type Server struct {
	router *chi.Mux
	config *config.Config
	logger *slog.Logger
}

// New assembles the full dependency chain and registers every route.
//
// Each layer only receives what it needs: the service gets the repository
// interface (not the concrete in-memory store), and handlers get services
// (never the repository).
func New(cfg *config.Config, logger *slog.Logger, repo repository.ContentRepository, mailer mail.Mailer) *Server {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
	}
	s.setupRoutes(repo, mailer)
	return s
}

// Router exposes the configured handler, mostly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRoutes configures all middleware and route handlers.
//
// MIDDLEWARE ORDER MATTERS — middleware executes in the order it's added:
// 1. RequestID — assigns a unique ID to each request (for tracing)
// 2. RealIP — extracts the real client IP from proxy headers (the contact
// rate limiter keys on it, so it must run first)
// 3. Logger — logs each request with timing info
// 4. Recoverer — catches panics and returns 500 instead of crashing
func (s *Server) setupRoutes(repo repository.ContentRepository, mailer mail.Mailer) {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)

	contentService := service.NewContentService(repo, s.logger)
	contactService := service.NewContactService(mailer, s.logger)

	categoryHandler := handler.NewCategoryHandler(contentService, s.logger)
	articleHandler := handler.NewArticleHandler(contentService, s.logger)
	solutionHandler := handler.NewSolutionHandler(contentService, s.logger)
	contactHandler := handler.NewContactHandler(contactService, s.logger)
	calculatorHandler := handler.NewCalculatorHandler(s.logger)
	downloadHandler := handler.NewDownloadHandler(s.config.DocsDir, s.logger)

	contactLimiter := middleware.NewRateLimiter(s.config.ContactRateLimit)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/categories", categoryHandler.HandleList)
		r.Post("/categories", categoryHandler.HandleCreate)
		r.Get("/categories/{slug}", categoryHandler.HandleGetBySlug)

		// Fixed paths before the {slug} wildcard so "featured" is never
		// looked up as an article slug.
		r.Get("/articles", articleHandler.HandleList)
		r.Post("/articles", articleHandler.HandleCreate)
		r.Get("/articles/featured", articleHandler.HandleFeatured)
		r.Get("/articles/recent", articleHandler.HandleRecent)
		r.Get("/articles/search", articleHandler.HandleSearch)
		r.Get("/articles/category/{slug}", articleHandler.HandleByCategory)
		r.Get("/articles/{slug}", articleHandler.HandleGetBySlug)

		r.Get("/solutions", solutionHandler.HandleList)
		r.Post("/solutions", solutionHandler.HandleCreate)

		r.With(contactLimiter.Handler).Post("/contact", contactHandler.HandleSubmit)

		r.Post("/calculators/severance", calculatorHandler.HandleSeverance)
		r.Post("/calculators/traffic-fine", calculatorHandler.HandleTrafficFine)
		r.Post("/calculators/moral-damages", calculatorHandler.HandleMoralDamages)
		r.Post("/calculators/child-support", calculatorHandler.HandleChildSupport)

		r.Get("/download/{filename}", downloadHandler.HandleDownload)

		r.Delete("/maintenance/articles/{slug}", articleHandler.HandleRemove)
	})

	// Root-level static assets. These are individual well-known files, not a
	// browsable directory, so each gets an explicit route instead of a
	// FileServer mount.
	s.serveStatic("/ads.txt")
	s.serveStatic("/robots.txt")
	s.serveStatic("/favicon.ico")
	s.serveStatic("/favicon.svg")
	s.serveStatic("/favicon.png")
}

// serveStatic registers a GET route that serves one file from PublicDir.
func (s *Server) serveStatic(route string) {
	path := filepath.Join(s.config.PublicDir, filepath.Base(route))
	s.router.Get(route, func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	})
}

// Start runs the HTTP server and blocks until shutdown.
//
// GRACEFUL SHUTDOWN:
// 1. Stop accepting new HTTP connections
// 2. Wait for in-flight requests to finish (30s timeout)
//
// There is nothing to flush afterwards — the store is in-memory and its
// contents are rebuilt from the seed on the next start.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         s.config.Addr(),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.String("addr", s.config.Addr()),
			slog.String("env", s.config.Env),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
