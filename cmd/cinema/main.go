// Package main is the entry point for the cinema console application.
//
// main stays minimal: read configuration, build the dependency graph
// (logger → database → services → menu), run the menu loop, exit. All
// actual behaviour lives in the internal packages.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sakif/cinebox/internal/auth"
	"github.com/sakif/cinebox/internal/config"
	"github.com/sakif/cinebox/internal/console"
	"github.com/sakif/cinebox/internal/repository/sqlite"
	"github.com/sakif/cinebox/internal/service"
)

func main() {
	cfg := config.Load()

	// Logs go to stderr so they never interleave with the menus and
	// prompts on stdout.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run exists so every exit path releases the database; os.Exit in main
// would skip the defers.
func run(cfg config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	// Ensure the directory for the database file exists (mkdir -p).
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	digests := auth.NewDigestService()
	authSvc := service.NewAuthService(db, digests, logger)
	catalogSvc := service.NewCatalogService(db, logger)
	bookingSvc := service.NewBookingService(db, db, logger)

	// The schema is in place (sqlite.New ran the migrations); seed the
	// default concession items. Safe on every startup.
	if err := catalogSvc.Seed(ctx); err != nil {
		return err
	}

	prompt := console.NewPrompter(os.Stdin, os.Stdout)
	render := console.NewRenderer(os.Stdout, cfg.ClearScreen)
	menu := console.NewMenu(authSvc, catalogSvc, bookingSvc, prompt, render, logger)

	logger.Info("cinema started", slog.String("db", cfg.DBPath))

	return menu.Run(ctx)
}
