package novaposhta

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/platansad/storefront/internal/config"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.NovaPoshtaConfig{BaseURL: server.URL, APIKey: "key", TimeoutMS: 2000})
}

func TestSearchCitiesShortQuerySkipsNetwork(t *testing.T) {
	called := false
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	cities, err := client.SearchCities(context.Background(), "К")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if cities != nil {
		t.Fatalf("expected no cities, got %v", cities)
	}
	if called {
		t.Fatal("short query must not reach the API")
	}
}

func TestSearchCitiesFiltersOccupiedTerritories(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req apiRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.CalledMethod != "getCities" || req.ModelName != "Address" {
			t.Errorf("unexpected request: %+v", req)
		}
		if req.MethodProperties["Limit"] != "50" {
			t.Errorf("unexpected limit: %s", req.MethodProperties["Limit"])
		}
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"Ref":"r1","Description":"Київ","AreaDescription":"Київська"},
			{"Ref":"r2","Description":"Донецьк","AreaDescription":"Донецька"},
			{"Ref":"r3","Description":"Ялта","AreaDescription":"Автономна Республіка Крим"}
		]}`))
	})

	cities, err := client.SearchCities(context.Background(), "Ки")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(cities) != 1 || cities[0].Name != "Київ" {
		t.Fatalf("unexpected cities: %+v", cities)
	}
}

func TestGetWarehousesFiltersPostomatsAndSortsByNumber(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req apiRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.MethodProperties["CityRef"] != "r1" || req.MethodProperties["Limit"] != "500" {
			t.Errorf("unexpected properties: %v", req.MethodProperties)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"Ref":"w10","Description":"Відділення №10","Number":"10","CityRef":"r1"},
			{"Ref":"w2","Description":"Поштомат №2","Number":"2","CityRef":"r1","TypeOfWarehouse":"9a68df70-0267-42a8-bb5c-37f427e36ee4"},
			{"Ref":"w3","Description":"Відділення №3","Number":"3","CityRef":"r1"}
		]}`))
	})

	warehouses, err := client.GetWarehouses(context.Background(), "r1")
	if err != nil {
		t.Fatalf("get warehouses failed: %v", err)
	}
	if len(warehouses) != 2 {
		t.Fatalf("expected 2 warehouses, got %d", len(warehouses))
	}
	if warehouses[0].Number != "3" || warehouses[1].Number != "10" {
		t.Fatalf("unexpected order: %+v", warehouses)
	}
}

func TestCallRejectsUnsuccessfulResponse(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"errors":["API key invalid"]}`))
	})

	if _, err := client.SearchCities(context.Background(), "Ки"); err == nil {
		t.Fatal("expected error for unsuccessful response")
	}
}
