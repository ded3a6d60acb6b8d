package main

import (
	"context"
	"log"
	"os"

	"atelier-cms/internal/config"
	"atelier-cms/internal/content"
	"atelier-cms/internal/db"
	"atelier-cms/internal/kvstore"
	"atelier-cms/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var kv kvstore.Store
	if cfg.DBConnString != "" {
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect db: %v", err)
		}
		defer pool.Close()
		kv = kvstore.NewPostgresStore(pool)
	} else {
		fileStore, err := kvstore.NewFileStore(cfg.DataDir)
		if err != nil {
			logger.Fatalf("open data dir: %v", err)
		}
		kv = fileStore
	}

	if err := seed.Ensure(ctx, content.New(kv)); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
