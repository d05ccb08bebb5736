package store

import (
	"context"
	"testing"

	"github.com/platansad/storefront/internal/models"
	"github.com/platansad/storefront/internal/notify"

	"github.com/shopspring/decimal"
)

func TestCartAddRefetchesBackendState(t *testing.T) {
	backend := &fakeCartAPI{}
	rec := &recorder{}
	cart := NewCartStore(backend, rec)
	ctx := context.Background()

	cart.Add(ctx, "p1", "Туя Смарагд", 2, false)

	items := cart.Items()
	if len(items) != 1 || items[0].ProductID != "p1" || items[0].Quantity != 2 {
		t.Fatalf("unexpected cart: %+v", items)
	}
	note, ok := rec.last()
	if !ok || note.Level != notify.LevelSuccess || note.Message != "Туя Смарагд додано до кошика!" {
		t.Fatalf("unexpected notification: %+v", note)
	}
}

func TestCartAddFailureKeepsStateAndNotifies(t *testing.T) {
	backend := &fakeCartAPI{items: []models.CartItem{{ID: "item-1", ProductID: "p1", Quantity: 1}}}
	rec := &recorder{}
	cart := NewCartStore(backend, rec)
	ctx := context.Background()
	cart.Fetch(ctx)

	backend.failAdd = true
	cart.Add(ctx, "p2", "Ялівець", 1, false)

	items := cart.Items()
	if len(items) != 1 || items[0].ProductID != "p1" {
		t.Fatalf("cart must keep last known state, got %+v", items)
	}
	note, ok := rec.last()
	if !ok || note.Level != notify.LevelError || note.Message != "Помилка додавання до кошика" {
		t.Fatalf("unexpected notification: %+v", note)
	}
}

func TestCartSilentAddSkipsNotifications(t *testing.T) {
	backend := &fakeCartAPI{}
	rec := &recorder{}
	cart := NewCartStore(backend, rec)

	cart.Add(context.Background(), "p1", "Туя", 1, true)

	if rec.count() != 0 {
		t.Fatalf("silent add must not notify, got %d notifications", rec.count())
	}
}

func TestCartFetchFailureResetsToEmpty(t *testing.T) {
	backend := &fakeCartAPI{items: []models.CartItem{{ID: "item-1", ProductID: "p1", Quantity: 1}}}
	cart := NewCartStore(backend, &recorder{})
	ctx := context.Background()
	cart.Fetch(ctx)

	backend.failGet = true
	cart.Fetch(ctx)

	if len(cart.Items()) != 0 {
		t.Fatalf("fetch failure must reset the cart, got %+v", cart.Items())
	}
}

func TestCartUpdateQuantityBelowOneIsNoop(t *testing.T) {
	backend := &fakeCartAPI{items: []models.CartItem{{ID: "item-1", ProductID: "p1", Quantity: 3}}}
	cart := NewCartStore(backend, &recorder{})
	ctx := context.Background()
	cart.Fetch(ctx)

	cart.UpdateQuantity(ctx, "item-1", 0)

	if backend.updates != 0 {
		t.Fatalf("no request expected for quantity < 1, got %d", backend.updates)
	}
	if cart.Items()[0].Quantity != 3 {
		t.Fatalf("quantity must stay, got %d", cart.Items()[0].Quantity)
	}
}

func TestCartTotalsComputedOnRead(t *testing.T) {
	price := func(v string) models.Money {
		d, _ := decimal.NewFromString(v)
		return models.Money{Decimal: d}
	}
	backend := &fakeCartAPI{items: []models.CartItem{
		{ID: "item-1", ProductID: "p1", Price: price("250.50"), Quantity: 2},
		{ID: "item-2", ProductID: "p2", Price: price("99.99"), Quantity: 1},
	}}
	cart := NewCartStore(backend, &recorder{})
	cart.Fetch(context.Background())

	if got := cart.Total().String(); got != "600.99" {
		t.Fatalf("unexpected total: %s", got)
	}
	if got := cart.Count(); got != 3 {
		t.Fatalf("unexpected count: %d", got)
	}
}

func TestCartClearFailureKeepsItemsSilently(t *testing.T) {
	backend := &fakeCartAPI{
		items:     []models.CartItem{{ID: "item-1", ProductID: "p1", Quantity: 1}},
		failClear: true,
	}
	rec := &recorder{}
	cart := NewCartStore(backend, rec)
	ctx := context.Background()
	cart.Fetch(ctx)

	cart.Clear(ctx)

	if len(cart.Items()) != 1 {
		t.Fatalf("clear failure must keep items, got %+v", cart.Items())
	}
	if rec.count() != 0 {
		t.Fatalf("clear failure must stay silent, got %d notifications", rec.count())
	}
}
