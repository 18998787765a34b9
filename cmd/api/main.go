package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookshelf/internal/app"
	"bookshelf/internal/catalog"
	"bookshelf/internal/platform/logging"
)

func main() {
	app.LoadEnvFiles()
	logging.Setup()

	cfg, err := app.ConfigFromEnv()
	if err != nil {
		fatal("invalid configuration", err)
	}
	if cfg.JWTSecret == "" {
		fatal("missing required environment variable", errors.New("JWT_SECRET"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lib, _, err := app.LoadLibrary(ctx, cfg)
	if err != nil {
		fatal("cannot load catalog", err)
	}
	svc := catalog.NewService(lib)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(ctx, cfg, svc),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "addr", cfg.Addr, "source", cfg.Source, "books", lib.Len())
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fatal("server error", err)
	}
	slog.Info("server stopped")
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
