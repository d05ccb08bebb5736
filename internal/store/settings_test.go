package store

import (
	"context"
	"testing"

	"github.com/platansad/storefront/internal/models"
)

func TestSettingsStartWithDefaults(t *testing.T) {
	settings := NewSettingsStore(&fakeSettingsAPI{fail: true}).Get()

	if settings.SiteName == "" {
		t.Fatal("defaults must carry a site name")
	}
	if settings.Currency != "₴" {
		t.Fatalf("unexpected default currency: %s", settings.Currency)
	}
}

func TestSettingsRefreshReplacesWholeObject(t *testing.T) {
	live := models.DefaultSettings()
	live.SiteName = "PlatanSad Live"
	live.FreeDeliveryFrom = 2000

	store := NewSettingsStore(&fakeSettingsAPI{settings: &live})
	store.Refresh(context.Background())

	got := store.Get()
	if got.SiteName != "PlatanSad Live" || got.FreeDeliveryFrom != 2000 {
		t.Fatalf("refresh must replace settings, got %+v", got)
	}
}

func TestSettingsRefreshFailureKeepsCurrent(t *testing.T) {
	backend := &fakeSettingsAPI{settings: &models.Settings{SiteName: "Live"}}
	store := NewSettingsStore(backend)
	ctx := context.Background()
	store.Refresh(ctx)

	backend.fail = true
	store.Refresh(ctx)

	if store.Get().SiteName != "Live" {
		t.Fatalf("failed refresh must keep current settings, got %+v", store.Get())
	}
}
