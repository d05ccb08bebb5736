// Package checkout holds the address resolver, the checkout form validation
// and the order submission flow.
package checkout

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/platansad/storefront/internal/logger"
	"github.com/platansad/storefront/internal/models"
	"github.com/platansad/storefront/internal/novaposhta"
)

const minQueryLen = 2

// Snapshot is the resolver state at one point in time, shaped for any
// presentation to bind to.
type Snapshot struct {
	Query             string             `json:"query"`
	Cities            []models.City      `json:"cities"`
	PopularCities     []string           `json:"popularCities,omitempty"`
	SelectedCity      *models.City       `json:"selectedCity"`
	Warehouses        []models.Warehouse `json:"warehouses"`
	SelectedWarehouse *models.Warehouse  `json:"selectedWarehouse"`
	DeliveryAddress   string             `json:"deliveryAddress"`
	Searching         bool               `json:"searching"`
}

// Resolver drives the city -> warehouse selection cascade. Query input is
// debounced through a single-slot timer: every keystroke cancels the pending
// lookup and arms a new one, so only the last keystroke in the window hits
// the network. City selections are generation-counted; a warehouse list
// arriving for an older selection is discarded.
type Resolver struct {
	mu sync.Mutex

	query             string
	cities            []models.City
	selectedCity      *models.City
	warehouses        []models.Warehouse
	selectedWarehouse *models.Warehouse
	deliveryAddress   string
	searching         bool

	timer    *time.Timer
	debounce time.Duration
	queryGen uint64
	cityGen  uint64

	api novaposhta.AddressAPI
}

// NewResolver creates a resolver with the given debounce window.
func NewResolver(api novaposhta.AddressAPI, debounce time.Duration) *Resolver {
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	return &Resolver{
		api:      api,
		debounce: debounce,
	}
}

// SetQuery records a new search query and re-arms the debounce timer.
// Queries below the minimum length clear the result list without touching
// the network; the popular-city shortcuts cover that range.
func (r *Resolver) SetQuery(query string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.query = query
	r.queryGen++

	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}

	if len([]rune(strings.TrimSpace(query))) < minQueryLen {
		r.cities = nil
		r.searching = false
		return
	}

	gen := r.queryGen
	r.searching = true
	r.timer = time.AfterFunc(r.debounce, func() {
		r.search(gen, query)
	})
}

func (r *Resolver) search(gen uint64, query string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cities, err := r.api.SearchCities(ctx, query)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.queryGen {
		// A newer keystroke superseded this lookup.
		return
	}
	r.searching = false
	if err != nil {
		logger.Errorw("city_search_failed", "query", query, "error", err)
		r.cities = nil
		return
	}
	r.cities = cities
}

// SelectCity stores the city, drops any warehouse selection and the composed
// delivery address, and starts the dependent warehouse fetch. A warehouse
// list for a superseded city selection never lands.
func (r *Resolver) SelectCity(ctx context.Context, city models.City) {
	r.mu.Lock()
	selected := city
	r.selectedCity = &selected
	r.selectedWarehouse = nil
	r.deliveryAddress = ""
	r.warehouses = nil
	r.cityGen++
	gen := r.cityGen
	r.mu.Unlock()

	warehouses, err := r.api.GetWarehouses(ctx, city.Ref)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.cityGen {
		return
	}
	if err != nil {
		logger.Errorw("warehouse_fetch_failed", "city_ref", city.Ref, "error", err)
		return
	}
	r.warehouses = warehouses
}

// SelectWarehouse stores the warehouse and composes the delivery address.
// The warehouse must belong to the currently selected city.
func (r *Resolver) SelectWarehouse(warehouse models.Warehouse) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.selectedCity == nil || warehouse.CityRef != r.selectedCity.Ref {
		return false
	}
	selected := warehouse
	r.selectedWarehouse = &selected
	r.deliveryAddress = r.selectedCity.Name + ", " + warehouse.Description
	return true
}

// FilterWarehouses narrows the fetched list with a case-insensitive
// substring match. Purely local, never a network call.
func (r *Resolver) FilterWarehouses(filter string) []models.Warehouse {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(filter) == "" {
		out := make([]models.Warehouse, len(r.warehouses))
		copy(out, r.warehouses)
		return out
	}

	needle := strings.ToLower(filter)
	var out []models.Warehouse
	for _, w := range r.warehouses {
		if strings.Contains(strings.ToLower(w.Description), needle) ||
			strings.Contains(strings.ToLower(w.ShortAddress), needle) {
			out = append(out, w)
		}
	}
	return out
}

// Reset clears the whole cascade.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.query = ""
	r.queryGen++
	r.cityGen++
	r.cities = nil
	r.selectedCity = nil
	r.warehouses = nil
	r.selectedWarehouse = nil
	r.deliveryAddress = ""
	r.searching = false
}

// Snapshot returns the current resolver state. Short queries carry the
// popular-city shortcuts instead of search results.
func (r *Resolver) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		Query:           r.query,
		DeliveryAddress: r.deliveryAddress,
		Searching:       r.searching,
	}
	snap.Cities = make([]models.City, len(r.cities))
	copy(snap.Cities, r.cities)
	snap.Warehouses = make([]models.Warehouse, len(r.warehouses))
	copy(snap.Warehouses, r.warehouses)
	if r.selectedCity != nil {
		city := *r.selectedCity
		snap.SelectedCity = &city
	}
	if r.selectedWarehouse != nil {
		warehouse := *r.selectedWarehouse
		snap.SelectedWarehouse = &warehouse
	}
	if len([]rune(strings.TrimSpace(r.query))) < minQueryLen {
		snap.PopularCities = novaposhta.PopularCities
	}
	return snap
}

// SelectedCity returns the current city, nil when none.
func (r *Resolver) SelectedCity() *models.City {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.selectedCity == nil {
		return nil
	}
	city := *r.selectedCity
	return &city
}

// SelectedWarehouse returns the current warehouse, nil when none.
func (r *Resolver) SelectedWarehouse() *models.Warehouse {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.selectedWarehouse == nil {
		return nil
	}
	warehouse := *r.selectedWarehouse
	return &warehouse
}

// DeliveryAddress returns the composed address, empty until a warehouse is
// selected.
func (r *Resolver) DeliveryAddress() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deliveryAddress
}
