package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"memorylane/api/internal/app"
	"memorylane/api/internal/config"
	"memorylane/api/internal/logging"
	"memorylane/api/internal/media"
	"memorylane/api/internal/session"
	"memorylane/api/internal/store"
)

func main() {
	logging.Setup()
	cfg := config.Load()
	ctx := context.Background()

	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := store.ApplyMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	dataStore := store.NewPostgresStore(db)

	var mediaService *media.Service
	if strings.TrimSpace(cfg.MinioEndpoint) != "" {
		mediaService, err = media.New(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL, cfg.UploadTTL)
		if err != nil {
			slog.Error("minio connection failed", "error", err)
			os.Exit(1)
		}
		if err := mediaService.EnsureBucket(ctx); err != nil {
			slog.Error("bucket setup failed", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("photo storage not configured, uploads disabled")
	}

	var service *app.Service
	if strings.TrimSpace(cfg.RedisURL) != "" {
		slog.Info("using redis for refresh token storage")
		redisStore, err := session.NewRedisStore(cfg.RedisURL)
		if err != nil {
			slog.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		service = app.NewWithSessionStore(cfg, dataStore, redisStore, mediaServiceOrNil(mediaService))
	} else {
		slog.Info("using postgresql for refresh token storage")
		service = app.New(cfg, dataStore, mediaServiceOrNil(mediaService))
	}

	httpServer := app.NewHTTPServer(service, cfg.CORSOrigin)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("memorylane api listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// mediaServiceOrNil keeps a typed-nil *media.Service out of the service's
// interface field so the nil check there stays meaningful.
func mediaServiceOrNil(svc *media.Service) app.MediaService {
	if svc == nil {
		return nil
	}
	return svc
}
