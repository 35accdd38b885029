// Package main is the entry point for the Desenrola Direito API server.
//
// The main package is kept minimal — its job is to:
// 1. Read configuration (env vars, optionally from a .env file)
// 2. Create dependencies (logger, content store, mail bridge)
// 3. Start the application
//
// All actual logic lives in imported packages (internal/server,
// internal/handler, etc.). This separation keeps the components testable.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/desenroladireito/desenrola-direito/internal/config"
	"github.com/desenroladireito/desenrola-direito/internal/mail"
	"github.com/desenroladireito/desenrola-direito/internal/repository/memory"
	"github.com/desenroladireito/desenrola-direito/internal/server"
)

func main() {
	// A .env file is a development convenience; in production the variables
	// come from the environment directly, so a missing file is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// The store starts empty and is filled by an explicit seed. A seed
	// failure is fatal: serving an empty catalogue would look like a healthy
	// site with no content, which is worse than not starting.
	store := memory.New(logger)
	if err := store.Seed(context.Background()); err != nil {
		logger.Error("failed to seed content store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Without an API key the contact endpoint stays up but every send
	// reports the service as unavailable.
	var mailer mail.Mailer = mail.Disabled{}
	if cfg.ResendAPIKey != "" {
		mailer = mail.NewResend(cfg.ResendAPIKey, cfg.ContactFrom, cfg.ContactTo, "")
	}

	srv := server.New(cfg, logger, store, mailer)

	// Start() blocks until the server is shut down (Ctrl+C or SIGTERM).
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
