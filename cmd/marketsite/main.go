// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the marketsite content server.
// It loads configuration, connects to the remote store and cache, loads the
// content store, and serves the JSON API with graceful shutdown support.
package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/redis/go-redis/v9"

	"marketsite/internal/cache"
	"marketsite/internal/catalog"
	"marketsite/internal/config"
	"marketsite/internal/content"
	"marketsite/internal/database"
	"marketsite/internal/handlers"
	"marketsite/internal/middleware"
	"marketsite/internal/router"
	"marketsite/internal/syncgw"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"remote_store", cfg.RemoteStore,
	)

	// Connect the remote store, if one is configured.
	backend, closeBackend, err := openBackend(cfg)
	if err != nil {
		slog.Error("failed to open remote store", "error", err)
		os.Exit(1)
	}
	defer closeBackend()

	gateway := syncgw.Unconfigured()
	if backend != nil {
		gateway = syncgw.New(backend)
	} else {
		slog.Warn("remote store not configured, edits are kept locally")
	}

	// Connect to Valkey (optional; response cache and local snapshots).
	var valkeyClient *redis.Client
	if cfg.ValkeyHost != "" {
		valkeyClient, err = cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
	} else {
		slog.Warn("valkey not configured, responses are not cached")
	}
	responseCache := cache.NewResponseCache(valkeyClient, cache.DefaultResponseTTL)

	opts := []content.Option{content.WithPersistTimeout(cfg.PersistTimeout)}
	if valkeyClient != nil {
		opts = append(opts, content.WithLocalCache(cache.NewSnapshotCache(valkeyClient, cache.DefaultSnapshotKey)))
	}
	store := content.New(catalog.Default(), gateway, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loadCtx, cancelLoad := context.WithTimeout(ctx, 30*time.Second)
	err = store.Load(loadCtx)
	cancelLoad()
	if err != nil {
		slog.Error("failed to load content", "error", err)
		os.Exit(1)
	}
	slog.Info("content store ready", "remote", store.Remote())

	// Drop cached responses whenever content changes.
	go func() {
		for change := range store.Subscribe(ctx) {
			slog.Debug("content changed", "domain", change.Domain, "id", change.ID, "op", change.Op)
			responseCache.InvalidateAll(context.WithoutCancel(ctx))
		}
	}()
	// Responses cached by a previous process may predate this load.
	responseCache.InvalidateAll(ctx)

	limiter := middleware.NewRateLimiter(cfg.AdminRateLimit, cfg.AdminRateBurst)
	defer limiter.Stop()

	r := router.New(
		handlers.NewPublic(store, responseCache),
		handlers.NewAdmin(store, cfg.AdminUser, cfg.AdminTOTPSecret),
		middleware.Credentials{
			User:         cfg.AdminUser,
			PasswordHash: cfg.AdminPasswordHash,
			TOTPSecret:   cfg.AdminTOTPSecret,
		},
		limiter,
	)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.PersistTimeout + 15*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can wait for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received")

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	// Let background write-throughs finish before closing the backend.
	store.Wait()
	slog.Info("server stopped gracefully")
}

// newLogger returns a colourised text logger in development and a JSON
// logger everywhere else.
func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsDev() {
		return slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
			Level:      cfg.LogLevel,
			TimeFormat: "15:04:05.000",
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

// openBackend connects the configured remote store. A nil Backend means
// none is configured; the returned close function is always safe to call.
func openBackend(cfg *config.Config) (syncgw.Backend, func(), error) {
	noop := func() {}

	switch cfg.RemoteStore {
	case config.RemotePostgres:
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			return nil, noop, err
		}
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, noop, err
		}
		slog.Info("postgres remote store connected", "host", cfg.DBHost, "db", cfg.DBName)
		return syncgw.NewPostgres(db), closer(db), nil

	case config.RemoteS3:
		s3, err := syncgw.NewS3(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, noop, err
		}
		if s3 == nil {
			return nil, noop, nil
		}
		slog.Info("s3 remote store connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket, "prefix", cfg.S3Prefix)
		return s3, noop, nil
	}
	return nil, noop, nil
}

func closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			slog.Warn("close remote store failed", "error", err)
		}
	}
}
