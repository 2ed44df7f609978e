package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/curatedcellar/curator/internal/api"
	"github.com/curatedcellar/curator/internal/catalog"
	"github.com/curatedcellar/curator/internal/config"
	"github.com/curatedcellar/curator/internal/db"
	"github.com/curatedcellar/curator/internal/store"
	"github.com/curatedcellar/curator/internal/web"
)

// loadConfig parses args for the named command and resolves the configuration.
// It also installs the logger; the returned cleanup closes the log file.
func loadConfig(name string, args []string) (config.Config, *pflag.FlagSet, func(), error) {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	config.Flags(flags)
	flags.Usage = func() { fmt.Fprint(os.Stdout, usage) }

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		return config.Config{}, nil, nil, err
	}

	cfg, err := config.Load(flags, ".env")
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	closeLog, err := setupLogger(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, flags, closeLog, nil
}

func cmdServe(args []string) error {
	cfg, flags, closeLog, err := loadConfig("serve", args)
	if err != nil {
		return err
	}
	defer closeLog()

	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flags.Arg(0))
	}

	_, statErr := os.Stat(cfg.DBPath)
	fresh := errors.Is(statErr, os.ErrNotExist)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	// Ensure schema exists (idempotent).
	if err := db.EnsureSchema(database); err != nil {
		return fmt.Errorf("ensuring database schema: %w", err)
	}

	ctx := context.Background()
	if fresh {
		n, err := store.SeedProducts(ctx, database)
		if err != nil {
			return err
		}
		slog.Info("database created", "path", cfg.DBPath, "seeded", n)
	}

	cat, err := catalog.Load(ctx, store.Products{DB: database}, catalog.WithPriceCeiling(cfg.PriceMax))
	if err != nil {
		return err
	}
	slog.Info("catalog loaded", "path", cfg.DBPath, "products", cat.Len())

	webRouter, err := web.NewRouter(cat)
	if err != nil {
		return fmt.Errorf("setting up web router: %w", err)
	}

	// API routes take priority, web routes handle the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(cat, database))
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.RequestID(api.LoggingMiddleware(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}

	slog.Info("server stopped, closing database")
	return nil
}
