package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"atelier-cms/internal/backup"
	"atelier-cms/internal/config"
	"atelier-cms/internal/content"
	"atelier-cms/internal/db"
	"atelier-cms/internal/kvstore"
)

func main() {
	var (
		exportPath string
		importPath string
	)
	flag.StringVar(&exportPath, "export", "", "Write the full content store to this JSON file")
	flag.StringVar(&importPath, "import", "", "Restore the content store from this JSON file")
	flag.Parse()

	if (exportPath == "") == (importPath == "") {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	var kv kvstore.Store
	if cfg.DBConnString != "" {
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			log.Fatalf("connect db: %v", err)
		}
		defer pool.Close()
		kv = kvstore.NewPostgresStore(pool)
	} else {
		fileStore, err := kvstore.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("open data dir: %v", err)
		}
		kv = fileStore
	}

	store := content.New(kv)
	start := time.Now()

	if exportPath != "" {
		f, err := os.Create(exportPath)
		if err != nil {
			log.Fatalf("create file: %v", err)
		}
		defer f.Close()

		if err := backup.WriteTo(ctx, store, f); err != nil {
			log.Fatalf("export failed: %v", err)
		}
		fmt.Printf("Exported content to %s in %s\n", exportPath, time.Since(start).Truncate(time.Millisecond))
		return
	}

	f, err := os.Open(importPath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	if err := backup.ReadFrom(ctx, store, f); err != nil {
		log.Fatalf("import failed: %v", err)
	}
	fmt.Printf("Restored content from %s in %s\n", importPath, time.Since(start).Truncate(time.Millisecond))
}
