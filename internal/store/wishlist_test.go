package store

import (
	"context"
	"testing"

	"github.com/platansad/storefront/internal/models"
	"github.com/platansad/storefront/internal/notify"
)

func TestWishlistToggleAddsAndRemoves(t *testing.T) {
	backend := &fakeWishlistAPI{}
	rec := &recorder{}
	wishlist := NewWishlistStore(backend, rec)
	ctx := context.Background()

	wishlist.Toggle(ctx, "p1")
	if !wishlist.Contains("p1") {
		t.Fatal("product must be wishlisted after first toggle")
	}
	note, _ := rec.last()
	if note.Message != "Додано до списку бажань" {
		t.Fatalf("unexpected notification: %+v", note)
	}

	wishlist.Toggle(ctx, "p1")
	if wishlist.Contains("p1") {
		t.Fatal("product must be gone after second toggle")
	}
	note, _ = rec.last()
	if note.Message != "Видалено зі списку бажань" {
		t.Fatalf("unexpected notification: %+v", note)
	}
}

func TestWishlistRemoveResolvesRecordID(t *testing.T) {
	backend := &fakeWishlistAPI{items: []models.WishlistItem{
		{ID: "w-7", ProductID: "p1", UserID: "guest"},
	}}
	wishlist := NewWishlistStore(backend, &recorder{})
	ctx := context.Background()
	wishlist.Fetch(ctx)

	wishlist.Remove(ctx, "p1")

	if len(backend.removed) != 1 || backend.removed[0] != "w-7" {
		t.Fatalf("delete must target the record id, got %v", backend.removed)
	}
}

func TestWishlistRemoveUnknownProductIsNoop(t *testing.T) {
	backend := &fakeWishlistAPI{}
	rec := &recorder{}
	wishlist := NewWishlistStore(backend, rec)

	wishlist.Remove(context.Background(), "missing")

	if len(backend.removed) != 0 {
		t.Fatalf("no delete expected, got %v", backend.removed)
	}
	if rec.count() != 0 {
		t.Fatalf("no notification expected, got %d", rec.count())
	}
}

func TestWishlistAddFailureKeepsStateAndNotifies(t *testing.T) {
	backend := &fakeWishlistAPI{
		items:   []models.WishlistItem{{ID: "w-1", ProductID: "p1"}},
		failAdd: true,
	}
	rec := &recorder{}
	wishlist := NewWishlistStore(backend, rec)
	ctx := context.Background()
	wishlist.Fetch(ctx)

	wishlist.Add(ctx, "p2")

	if wishlist.Count() != 1 || !wishlist.Contains("p1") {
		t.Fatalf("wishlist must keep last known state, got %+v", wishlist.Items())
	}
	note, ok := rec.last()
	if !ok || note.Level != notify.LevelError || note.Message != "Помилка додавання до списку бажань" {
		t.Fatalf("unexpected notification: %+v", note)
	}
}

func TestWishlistFetchFailureKeepsState(t *testing.T) {
	backend := &fakeWishlistAPI{items: []models.WishlistItem{{ID: "w-1", ProductID: "p1"}}}
	wishlist := NewWishlistStore(backend, &recorder{})
	ctx := context.Background()
	wishlist.Fetch(ctx)

	backend.failList = true
	wishlist.Fetch(ctx)

	if wishlist.Count() != 1 {
		t.Fatalf("fetch failure must keep state, got %+v", wishlist.Items())
	}
}
