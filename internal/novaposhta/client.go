package novaposhta

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/platansad/storefront/internal/config"
	"github.com/platansad/storefront/internal/models"
)

var (
	ErrRequestFailed   = errors.New("nova poshta request failed")
	ErrResponseInvalid = errors.New("nova poshta response invalid")
)

// typeOfWarehousePostomat marks parcel lockers, which cannot take live plants.
const typeOfWarehousePostomat = "9a68df70-0267-42a8-bb5c-37f427e36ee4"

// Regions and cities currently outside carrier coverage.
var occupiedRegions = []string{
	"Автономна Республіка Крим",
	"Севастопольська",
}

var occupiedCities = []string{
	"Донецьк",
	"Макіївка",
	"Горлівка",
	"Єнакієве",
	"Дебальцеве",
	"Луганськ",
	"Алчевськ",
	"Краснодон",
	"Стаханов",
	"Ровеньки",
}

// PopularCities are shown as shortcuts while the search query is still too
// short to hit the API.
var PopularCities = []string{
	"Київ",
	"Харків",
	"Одеса",
	"Дніпро",
	"Львів",
	"Запоріжжя",
	"Кривий Ріг",
	"Миколаїв",
	"Вінниця",
	"Херсон",
	"Полтава",
	"Чернігів",
	"Черкаси",
	"Житомир",
	"Суми",
	"Хмельницький",
	"Рівне",
	"Чернівці",
	"Тернопіль",
	"Івано-Франківськ",
	"Луцьк",
	"Ужгород",
}

// AddressAPI is the address lookup contract the checkout resolver depends on.
type AddressAPI interface {
	SearchCities(ctx context.Context, query string) ([]models.City, error)
	GetWarehouses(ctx context.Context, cityRef string) ([]models.Warehouse, error)
}

// Client talks to the Nova Poshta JSON API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates an address lookup client.
func NewClient(cfg config.NovaPoshtaConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/") + "/",
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout()},
	}
}

type apiRequest struct {
	APIKey           string            `json:"apiKey"`
	ModelName        string            `json:"modelName"`
	CalledMethod     string            `json:"calledMethod"`
	MethodProperties map[string]string `json:"methodProperties"`
}

type apiResponse struct {
	Success bool              `json:"success"`
	Data    []json.RawMessage `json:"data"`
	Errors  []string          `json:"errors"`
}

type cityRecord struct {
	Ref                string `json:"Ref"`
	Description        string `json:"Description"`
	DescriptionRu      string `json:"DescriptionRu"`
	AreaDescription    string `json:"AreaDescription"`
	RegionsDescription string `json:"RegionsDescription"`
}

type warehouseRecord struct {
	Ref             string `json:"Ref"`
	Description     string `json:"Description"`
	ShortAddress    string `json:"ShortAddress"`
	Number          string `json:"Number"`
	CityRef         string `json:"CityRef"`
	TypeOfWarehouse string `json:"TypeOfWarehouse"`
}

func (c *Client) call(ctx context.Context, calledMethod string, props map[string]string) ([]json.RawMessage, error) {
	payload, err := json.Marshal(apiRequest{
		APIKey:           c.apiKey,
		ModelName:        "Address",
		CalledMethod:     calledMethod,
		MethodProperties: props,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrResponseInvalid, err)
	}
	if !parsed.Success {
		return nil, fmt.Errorf("%w: %s", ErrResponseInvalid, strings.Join(parsed.Errors, "; "))
	}
	return parsed.Data, nil
}

// SearchCities finds settlements by name prefix. Queries shorter than two
// characters return no results without touching the network.
func (c *Client) SearchCities(ctx context.Context, query string) ([]models.City, error) {
	if len([]rune(query)) < 2 {
		return nil, nil
	}

	raw, err := c.call(ctx, "getCities", map[string]string{
		"FindByString": query,
		"Limit":        "50",
	})
	if err != nil {
		return nil, err
	}

	cities := make([]models.City, 0, len(raw))
	for _, item := range raw {
		var rec cityRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			return nil, fmt.Errorf("%w: city record: %v", ErrResponseInvalid, err)
		}
		if contains(occupiedRegions, rec.AreaDescription) || contains(occupiedCities, rec.Description) {
			continue
		}
		cities = append(cities, models.City{
			Ref:    rec.Ref,
			Name:   rec.Description,
			NameRu: rec.DescriptionRu,
			Area:   rec.AreaDescription,
			Region: rec.RegionsDescription,
		})
	}
	return cities, nil
}

// GetWarehouses lists pickup branches of a settlement, parcel lockers
// excluded, ordered by branch number.
func (c *Client) GetWarehouses(ctx context.Context, cityRef string) ([]models.Warehouse, error) {
	if cityRef == "" {
		return nil, nil
	}

	raw, err := c.call(ctx, "getWarehouses", map[string]string{
		"CityRef": cityRef,
		"Limit":   "500",
	})
	if err != nil {
		return nil, err
	}

	warehouses := make([]models.Warehouse, 0, len(raw))
	for _, item := range raw {
		var rec warehouseRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			return nil, fmt.Errorf("%w: warehouse record: %v", ErrResponseInvalid, err)
		}
		if rec.TypeOfWarehouse == typeOfWarehousePostomat {
			continue
		}
		warehouses = append(warehouses, models.Warehouse{
			Ref:          rec.Ref,
			Description:  rec.Description,
			ShortAddress: rec.ShortAddress,
			Number:       rec.Number,
			CityRef:      rec.CityRef,
		})
	}

	sort.SliceStable(warehouses, func(i, j int) bool {
		return branchNumber(warehouses[i].Number) < branchNumber(warehouses[j].Number)
	})
	return warehouses, nil
}

func branchNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
