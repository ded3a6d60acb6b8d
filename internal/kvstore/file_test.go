package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreGetAbsentKey(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}

	_, ok, err := fs.Get(context.Background(), "services")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for never-written key")
	}
}

func TestFileStoreSetThenGet(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	ctx := context.Background()

	if err := fs.Set(ctx, "services", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, ok, err := fs.Get(ctx, "services")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true after set")
	}
	if string(raw) != `[{"id":"1"}]` {
		t.Fatalf("unexpected raw value: %s", raw)
	}

	if _, err := os.Stat(filepath.Join(dir, "services.json")); err != nil {
		t.Fatalf("expected one file per key: %v", err)
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if err := fs.Set(ctx, "packages", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	raw, ok, err := reopened.Get(ctx, "packages")
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if string(raw) != `[]` {
		t.Fatalf("unexpected raw value: %s", raw)
	}
}
