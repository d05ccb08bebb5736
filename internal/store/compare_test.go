package store

import (
	"context"
	"testing"

	"github.com/platansad/storefront/internal/constants"
	"github.com/platansad/storefront/internal/models"
	"github.com/platansad/storefront/internal/notify"
	"github.com/platansad/storefront/internal/storage"
)

func product(id, category string) models.Product {
	return models.Product{ID: id, Name: "Товар " + id, Category: category}
}

func TestCompareAddRejectsDuplicate(t *testing.T) {
	rec := &recorder{}
	compare := NewCompareStore(context.Background(), storage.NewMemoryStorage(), rec)
	ctx := context.Background()

	compare.Add(ctx, product("p1", "coniferous"))
	compare.Add(ctx, product("p1", "coniferous"))

	if compare.Count() != 1 {
		t.Fatalf("duplicate must not be added, got %d items", compare.Count())
	}
	note, _ := rec.last()
	if note.Level != notify.LevelInfo || note.Message != "Товар вже в списку порівняння" {
		t.Fatalf("unexpected notification: %+v", note)
	}
}

func TestCompareAddEnforcesCapacity(t *testing.T) {
	rec := &recorder{}
	compare := NewCompareStore(context.Background(), storage.NewMemoryStorage(), rec)
	ctx := context.Background()

	for i := 0; i < constants.CompareMaxItems; i++ {
		compare.Add(ctx, product(string(rune('a'+i)), "coniferous"))
	}
	compare.Add(ctx, product("extra", "coniferous"))

	if compare.Count() != constants.CompareMaxItems {
		t.Fatalf("capacity must hold at %d, got %d", constants.CompareMaxItems, compare.Count())
	}
	note, _ := rec.last()
	if note.Level != notify.LevelWarning || note.Message != "Можна порівнювати максимум 4 товари" {
		t.Fatalf("unexpected notification: %+v", note)
	}
}

func TestCompareCategoryMismatchWarnsButAdds(t *testing.T) {
	rec := &recorder{}
	compare := NewCompareStore(context.Background(), storage.NewMemoryStorage(), rec)
	ctx := context.Background()

	compare.Add(ctx, product("p1", "coniferous"))
	compare.Add(ctx, product("p2", "roses"))

	if compare.Count() != 2 {
		t.Fatalf("mismatched category must still be added, got %d", compare.Count())
	}
	warned := false
	for _, note := range rec.notes {
		if note.Level == notify.LevelWarning && note.Message == "Бажано порівнювати товари однієї категорії" {
			warned = true
		}
	}
	if !warned {
		t.Fatal("expected category mismatch warning")
	}
}

func TestComparePersistsAcrossInstances(t *testing.T) {
	mem := storage.NewMemoryStorage()
	ctx := context.Background()

	first := NewCompareStore(ctx, mem, &recorder{})
	first.Add(ctx, product("p1", "coniferous"))
	first.Add(ctx, product("p2", "coniferous"))

	second := NewCompareStore(ctx, mem, &recorder{})
	if second.Count() != 2 || !second.Contains("p1") || !second.Contains("p2") {
		t.Fatalf("persisted list must survive a restart, got %+v", second.Items())
	}
}

func TestCompareCorruptRecordStartsEmpty(t *testing.T) {
	mem := storage.NewMemoryStorage()
	ctx := context.Background()
	if err := mem.Save(ctx, constants.StorageKeyCompareItems, "not-a-list"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	compare := NewCompareStore(ctx, mem, &recorder{})
	if compare.Count() != 0 {
		t.Fatalf("corrupt record must start empty, got %+v", compare.Items())
	}
}

func TestCompareRemoveAndClear(t *testing.T) {
	rec := &recorder{}
	compare := NewCompareStore(context.Background(), storage.NewMemoryStorage(), rec)
	ctx := context.Background()

	compare.Add(ctx, product("p1", "coniferous"))
	compare.Add(ctx, product("p2", "coniferous"))

	compare.Remove(ctx, "p1")
	if compare.Contains("p1") || compare.Count() != 1 {
		t.Fatalf("remove failed, got %+v", compare.Items())
	}

	compare.Clear(ctx)
	if compare.Count() != 0 {
		t.Fatalf("clear failed, got %+v", compare.Items())
	}
	note, _ := rec.last()
	if note.Message != "Список порівняння очищено" {
		t.Fatalf("unexpected notification: %+v", note)
	}
}
