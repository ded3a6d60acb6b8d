package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"atelier-cms/internal/config"
	"atelier-cms/internal/content"
	"atelier-cms/internal/db"
	"atelier-cms/internal/httpserver"
	"atelier-cms/internal/kvstore"
	"atelier-cms/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[admin] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if cfg.AdminToken == "" {
		logger.Fatal("ADMIN_TOKEN is required")
	}

	ctx := context.Background()

	var kv kvstore.Store
	if cfg.DBConnString != "" {
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect db: %v", err)
		}
		defer pool.Close()
		kv = kvstore.NewPostgresStore(pool)
		logger.Printf("using postgres store")
	} else {
		fileStore, err := kvstore.NewFileStore(cfg.DataDir)
		if err != nil {
			logger.Fatalf("open data dir: %v", err)
		}
		kv = fileStore
		logger.Printf("using file store at %s", cfg.DataDir)
	}

	store := content.New(kv)

	// Empty collections get sample content once, the way the dashboard
	// seeded itself on first mount.
	if err := seed.Ensure(ctx, store); err != nil {
		logger.Fatalf("seed content: %v", err)
	}

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Store:          store,
		KV:             kv,
		AdminToken:     cfg.AdminToken,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
