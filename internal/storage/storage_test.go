package storage

import (
	"context"
	"testing"

	"github.com/platansad/storefront/internal/config"
)

type payload struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
}

func TestFileStorageRoundTrip(t *testing.T) {
	store, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("new file storage failed: %v", err)
	}
	ctx := context.Background()

	var missing payload
	found, err := store.Load(ctx, "compareItems", &missing)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if found {
		t.Fatal("expected missing key")
	}

	saved := payload{Items: []string{"p1", "p2"}, Count: 2}
	if err := store.Save(ctx, "compareItems", saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var loaded payload
	found, err = store.Load(ctx, "compareItems", &loaded)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !found {
		t.Fatal("expected key to exist")
	}
	if loaded.Count != 2 || len(loaded.Items) != 2 || loaded.Items[0] != "p1" {
		t.Fatalf("unexpected payload: %+v", loaded)
	}

	if err := store.Delete(ctx, "compareItems"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	found, err = store.Load(ctx, "compareItems", &loaded)
	if err != nil {
		t.Fatalf("load after delete failed: %v", err)
	}
	if found {
		t.Fatal("expected key to be gone")
	}
}

func TestFileStorageDeleteMissingKey(t *testing.T) {
	store, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("new file storage failed: %v", err)
	}
	if err := store.Delete(context.Background(), "never-saved"); err != nil {
		t.Fatalf("delete of missing key must not fail: %v", err)
	}
}

func TestMemoryStorageRoundTrip(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	if err := store.Save(ctx, "k", payload{Count: 1}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	var loaded payload
	found, err := store.Load(ctx, "k", &loaded)
	if err != nil || !found {
		t.Fatalf("load failed: found=%v err=%v", found, err)
	}
	if loaded.Count != 1 {
		t.Fatalf("unexpected payload: %+v", loaded)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(config.StorageConfig{Driver: "etcd"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestOpenDefaultsToFile(t *testing.T) {
	store, err := Open(config.StorageConfig{Driver: "", Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, ok := store.(*FileStorage); !ok {
		t.Fatalf("expected file storage, got %T", store)
	}
}
