package checkout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/platansad/storefront/internal/models"
)

// fakeAddressAPI counts lookups and serves canned results per city.
type fakeAddressAPI struct {
	mu            sync.Mutex
	cityCalls     int
	lastQuery     string
	cities        []models.City
	warehouses    map[string][]models.Warehouse
	warehouseWait chan struct{}
}

func (f *fakeAddressAPI) SearchCities(ctx context.Context, query string) ([]models.City, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cityCalls++
	f.lastQuery = query
	return f.cities, nil
}

func (f *fakeAddressAPI) GetWarehouses(ctx context.Context, cityRef string) ([]models.Warehouse, error) {
	if f.warehouseWait != nil {
		<-f.warehouseWait
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.warehouses[cityRef], nil
}

func (f *fakeAddressAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cityCalls
}

func waitFor(t *testing.T, deadline time.Duration, cond func() bool) {
	t.Helper()
	end := time.Now().Add(deadline)
	for time.Now().Before(end) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestShortQuerySkipsNetworkAndShowsPopularCities(t *testing.T) {
	backend := &fakeAddressAPI{}
	resolver := NewResolver(backend, 10*time.Millisecond)

	resolver.SetQuery("К")
	time.Sleep(50 * time.Millisecond)

	if backend.calls() != 0 {
		t.Fatalf("short query must not hit the network, got %d calls", backend.calls())
	}
	snap := resolver.Snapshot()
	if len(snap.PopularCities) == 0 {
		t.Fatal("short query must expose popular city shortcuts")
	}
	if len(snap.Cities) != 0 {
		t.Fatalf("short query must clear results, got %+v", snap.Cities)
	}
}

func TestDebounceCoalescesKeystrokesIntoOneLookup(t *testing.T) {
	backend := &fakeAddressAPI{cities: []models.City{{Ref: "r1", Name: "Київ"}}}
	resolver := NewResolver(backend, 40*time.Millisecond)

	resolver.SetQuery("Ки")
	time.Sleep(10 * time.Millisecond)
	resolver.SetQuery("Киї")
	time.Sleep(10 * time.Millisecond)
	resolver.SetQuery("Київ")

	waitFor(t, time.Second, func() bool { return backend.calls() == 1 })
	if backend.lastQuery != "Київ" {
		t.Fatalf("only the last keystroke may fire, got query %q", backend.lastQuery)
	}
	waitFor(t, time.Second, func() bool { return len(resolver.Snapshot().Cities) == 1 })
}

func TestStaleLookupResultIsDiscarded(t *testing.T) {
	backend := &fakeAddressAPI{cities: []models.City{{Ref: "r1", Name: "Київ"}}}
	resolver := NewResolver(backend, 20*time.Millisecond)

	resolver.SetQuery("Київ")
	waitFor(t, time.Second, func() bool { return backend.calls() == 1 })

	// A new keystroke after the lookup fired supersedes its result slot.
	resolver.SetQuery("Х")
	time.Sleep(50 * time.Millisecond)

	snap := resolver.Snapshot()
	if len(snap.Cities) != 0 {
		t.Fatalf("superseded results must not land, got %+v", snap.Cities)
	}
}

func TestSelectCityClearsWarehouseAndAddress(t *testing.T) {
	cityA := models.City{Ref: "a", Name: "Київ"}
	cityB := models.City{Ref: "b", Name: "Львів"}
	backend := &fakeAddressAPI{warehouses: map[string][]models.Warehouse{
		"a": {{Ref: "wa", Description: "Відділення №1", Number: "1", CityRef: "a"}},
		"b": {{Ref: "wb", Description: "Відділення №2", Number: "2", CityRef: "b"}},
	}}
	resolver := NewResolver(backend, 10*time.Millisecond)
	ctx := context.Background()

	resolver.SelectCity(ctx, cityA)
	if !resolver.SelectWarehouse(backend.warehouses["a"][0]) {
		t.Fatal("warehouse of the selected city must be accepted")
	}
	if resolver.DeliveryAddress() != "Київ, Відділення №1" {
		t.Fatalf("unexpected address: %q", resolver.DeliveryAddress())
	}

	resolver.SelectCity(ctx, cityB)
	if resolver.SelectedWarehouse() != nil {
		t.Fatal("city switch must clear the warehouse selection")
	}
	if resolver.DeliveryAddress() != "" {
		t.Fatalf("city switch must clear the address, got %q", resolver.DeliveryAddress())
	}
	snap := resolver.Snapshot()
	if len(snap.Warehouses) != 1 || snap.Warehouses[0].CityRef != "b" {
		t.Fatalf("warehouses must belong to the new city, got %+v", snap.Warehouses)
	}
}

func TestSlowWarehouseFetchForOldCityIsDiscarded(t *testing.T) {
	slow := make(chan struct{})
	backend := &fakeAddressAPI{
		warehouses: map[string][]models.Warehouse{
			"a": {{Ref: "wa", Description: "Старе", Number: "1", CityRef: "a"}},
			"b": {{Ref: "wb", Description: "Нове", Number: "2", CityRef: "b"}},
		},
		warehouseWait: slow,
	}
	resolver := NewResolver(backend, 10*time.Millisecond)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		resolver.SelectCity(ctx, models.City{Ref: "a", Name: "Київ"})
		close(done)
	}()

	// Switch to city B while A's fetch hangs; release both afterwards.
	go func() {
		time.Sleep(20 * time.Millisecond)
		resolver.SelectCity(ctx, models.City{Ref: "b", Name: "Львів"})
	}()
	time.Sleep(40 * time.Millisecond)
	close(slow)
	<-done

	waitFor(t, time.Second, func() bool {
		snap := resolver.Snapshot()
		return len(snap.Warehouses) == 1 && snap.Warehouses[0].CityRef == "b"
	})
}

func TestCitySwitchClearsSelectionBeforeFetchLands(t *testing.T) {
	slow := make(chan struct{}, 1)
	slow <- struct{}{}
	backend := &fakeAddressAPI{
		warehouses: map[string][]models.Warehouse{
			"a": {{Ref: "wa", Description: "Старе", Number: "1", CityRef: "a"}},
			"b": {{Ref: "wb", Description: "Нове", Number: "2", CityRef: "b"}},
		},
		warehouseWait: slow,
	}
	resolver := NewResolver(backend, 10*time.Millisecond)
	ctx := context.Background()

	// City A resolves immediately off the buffered token.
	resolver.SelectCity(ctx, models.City{Ref: "a", Name: "Київ"})
	if !resolver.SelectWarehouse(backend.warehouses["a"][0]) {
		t.Fatal("warehouse of the selected city must be accepted")
	}

	done := make(chan struct{})
	go func() {
		resolver.SelectCity(ctx, models.City{Ref: "b", Name: "Львів"})
		close(done)
	}()

	// The switch clears warehouse and address while B's fetch still hangs.
	waitFor(t, time.Second, func() bool {
		return resolver.SelectedWarehouse() == nil && resolver.DeliveryAddress() == ""
	})

	close(slow)
	<-done

	snap := resolver.Snapshot()
	if len(snap.Warehouses) != 1 || snap.Warehouses[0].CityRef != "b" {
		t.Fatalf("only the new city's warehouses may land, got %+v", snap.Warehouses)
	}
}

func TestSelectWarehouseRejectsForeignCity(t *testing.T) {
	backend := &fakeAddressAPI{warehouses: map[string][]models.Warehouse{
		"a": {{Ref: "wa", Description: "Відділення №1", Number: "1", CityRef: "a"}},
	}}
	resolver := NewResolver(backend, 10*time.Millisecond)
	resolver.SelectCity(context.Background(), models.City{Ref: "a", Name: "Київ"})

	foreign := models.Warehouse{Ref: "wx", Description: "Чуже", CityRef: "x"}
	if resolver.SelectWarehouse(foreign) {
		t.Fatal("warehouse of another city must be rejected")
	}
	if resolver.DeliveryAddress() != "" {
		t.Fatalf("rejected selection must not compose an address, got %q", resolver.DeliveryAddress())
	}
}

func TestFilterWarehousesIsCaseInsensitiveAndLocal(t *testing.T) {
	backend := &fakeAddressAPI{warehouses: map[string][]models.Warehouse{
		"a": {
			{Ref: "w1", Description: "Відділення №1: вул. Хрещатик, 22", Number: "1", CityRef: "a"},
			{Ref: "w2", Description: "Відділення №2: просп. Перемоги, 5", Number: "2", CityRef: "a"},
		},
	}}
	resolver := NewResolver(backend, 10*time.Millisecond)
	resolver.SelectCity(context.Background(), models.City{Ref: "a", Name: "Київ"})

	got := resolver.FilterWarehouses("хрещатик")
	if len(got) != 1 || got[0].Ref != "w1" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
	if all := resolver.FilterWarehouses(""); len(all) != 2 {
		t.Fatalf("empty filter must return everything, got %+v", all)
	}
}
