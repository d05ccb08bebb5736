// Package provider wires the application dependencies together.
package provider

import (
	"context"

	"github.com/platansad/storefront/internal/api"
	"github.com/platansad/storefront/internal/cache"
	"github.com/platansad/storefront/internal/checkout"
	"github.com/platansad/storefront/internal/config"
	"github.com/platansad/storefront/internal/logger"
	"github.com/platansad/storefront/internal/notify"
	"github.com/platansad/storefront/internal/novaposhta"
	"github.com/platansad/storefront/internal/queue"
	"github.com/platansad/storefront/internal/storage"
	"github.com/platansad/storefront/internal/store"
)

// Container is the dependency injection container.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Storage     storage.Storage
	Feed        *notify.Feed

	// API clients
	APIClient     *api.Client
	CartAPI       *api.CartClient
	WishlistAPI   *api.WishlistClient
	OrdersAPI     *api.OrdersClient
	CatalogAPI    *api.CatalogClient
	SettingsAPI   *api.SettingsClient
	ContentAPI    *api.ContentClient
	AdminAPI      *api.AdminClient
	LiqPayAPI     *api.LiqPayClient
	NovaPoshtaAPI *novaposhta.Client

	// State stores
	Cart      *store.CartStore
	Wishlist  *store.WishlistStore
	Compare   *store.CompareStore
	Settings  *store.SettingsStore
	AdminAuth *store.AdminAuthStore

	// Checkout
	Resolver  *checkout.Resolver
	Submitter *checkout.Submitter
}

// NewContainer initializes every dependency. Failures of optional
// infrastructure (cache, queue) degrade; a broken storage driver is fatal.
func NewContainer(cfg *config.Config) (*Container, error) {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	stateStorage, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, err
	}

	feed := notify.NewFeed(0)
	ctx := context.Background()

	client := api.NewClient(cfg.Backend)
	c := &Container{
		Config:        cfg,
		QueueClient:   queueClient,
		Storage:       stateStorage,
		Feed:          feed,
		APIClient:     client,
		CartAPI:       api.NewCartClient(client),
		WishlistAPI:   api.NewWishlistClient(client),
		OrdersAPI:     api.NewOrdersClient(client),
		CatalogAPI:    api.NewCatalogClient(client),
		SettingsAPI:   api.NewSettingsClient(client),
		ContentAPI:    api.NewContentClient(client),
		AdminAPI:      api.NewAdminClient(client),
		LiqPayAPI:     api.NewLiqPayClient(client),
		NovaPoshtaAPI: novaposhta.NewClient(cfg.NovaPoshta),
	}

	c.Cart = store.NewCartStore(c.CartAPI, feed)
	c.Wishlist = store.NewWishlistStore(c.WishlistAPI, feed)
	c.Compare = store.NewCompareStore(ctx, stateStorage, feed)
	c.Settings = store.NewSettingsStore(c.SettingsAPI)
	c.AdminAuth = store.NewAdminAuthStore(ctx, stateStorage, c.AdminAPI)
	client.SetTokenSource(c.AdminAuth.Token)

	c.Resolver = checkout.NewResolver(c.NovaPoshtaAPI, cfg.Checkout.Debounce())

	var poller checkout.PaymentPoller
	if queueClient != nil && queueClient.Enabled() {
		poller = queueClient
	}
	c.Submitter = checkout.NewSubmitter(c.Cart, c.OrdersAPI, c.LiqPayAPI, poller, feed)

	// Warm the replicas; failures degrade per-store.
	c.Cart.Fetch(ctx)
	c.Wishlist.Fetch(ctx)
	c.Settings.Refresh(ctx)

	return c, nil
}
