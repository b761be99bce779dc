// Command rosterserver wires the REST surface, structured logging and
// the Postgres-backed audit store into a long-running HTTP server,
// mirroring the workflow engine's own cmd/server graceful-shutdown
// structure.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flightops/rostercore/internal/infrastructure/api/rest"
	"github.com/flightops/rostercore/internal/infrastructure/auth"
	"github.com/flightops/rostercore/internal/infrastructure/config"
	"github.com/flightops/rostercore/internal/infrastructure/logger"
	"github.com/flightops/rostercore/internal/infrastructure/storage"
)

func main() {
	var (
		port      = flag.String("port", "", "server port (overrides config)")
		jwtSecret = flag.String("jwt-secret", "", "HMAC secret for bearer auth; empty disables auth")
	)
	flag.Parse()

	cfg := config.Load()
	if *port != "" {
		cfg.Port = *port
	}

	log := logger.Setup(cfg.LogLevel)
	log.Info("starting roster assignment core server", "port", cfg.Port)

	var store storage.Store
	if cfg.DatabaseDSN != "" {
		bunStore := storage.NewBunStore(cfg.DatabaseDSN)
		ctx := context.Background()
		if err := bunStore.InitSchema(ctx); err != nil {
			log.Error("failed to initialize database schema", "error", err)
			os.Exit(1)
		}
		store = bunStore
		log.Info("using BunStore (PostgreSQL) for solve run audit log")
	} else {
		store = storage.NewMemoryStore()
		log.Info("no DATABASE_DSN configured, using in-memory audit log")
	}

	var authenticator auth.Authenticator
	if *jwtSecret != "" {
		authenticator = auth.NewJWTAuth(*jwtSecret)
		log.Info("bearer token authentication enabled")
	} else {
		authenticator = auth.NewNoAuth()
		log.Info("no jwt-secret configured, authentication disabled")
	}

	srv := rest.NewServer(authenticator, store, log)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	if err := store.Close(); err != nil {
		log.Error("failed to close store", "error", err)
	}

	log.Info("server exited gracefully")
}
