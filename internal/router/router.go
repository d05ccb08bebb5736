package router

import (
	"net/http"

	"github.com/platansad/storefront/internal/config"
	"github.com/platansad/storefront/internal/http/handlers/admin"
	"github.com/platansad/storefront/internal/http/handlers/public"
	"github.com/platansad/storefront/internal/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter wires every route onto a gin engine.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	gin.SetMode(ginMode(cfg.Server.Mode))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(zap.L()))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	pub := public.New(c)
	adm := admin.New(c)

	v1 := r.Group("/api/v1")
	{
		cart := v1.Group("/cart")
		{
			cart.GET("", pub.GetCart)
			cart.POST("/items", pub.AddToCart)
			cart.PUT("/items/:itemId", pub.UpdateCartItem)
			cart.DELETE("/items/:itemId", pub.RemoveFromCart)
			cart.DELETE("", pub.ClearCart)
		}

		wishlist := v1.Group("/wishlist")
		{
			wishlist.GET("", pub.GetWishlist)
			wishlist.POST("/:productId", pub.AddToWishlist)
			wishlist.DELETE("/:productId", pub.RemoveFromWishlist)
			wishlist.POST("/:productId/toggle", pub.ToggleWishlist)
		}

		compare := v1.Group("/compare")
		{
			compare.GET("", pub.GetCompare)
			compare.POST("", pub.AddToCompare)
			compare.DELETE("/:productId", pub.RemoveFromCompare)
			compare.DELETE("", pub.ClearCompare)
		}

		checkout := v1.Group("/checkout")
		{
			checkout.POST("/address/query", pub.SetAddressQuery)
			checkout.GET("/address", pub.GetAddressState)
			checkout.POST("/address/city", pub.SelectCity)
			checkout.POST("/address/warehouse", pub.SelectWarehouse)
			checkout.GET("/address/warehouses", pub.FilterWarehouses)
			checkout.POST("/submit", pub.SubmitOrder)
		}

		v1.GET("/products", pub.GetProducts)
		v1.GET("/products/:productId", pub.GetProduct)
		v1.GET("/categories", pub.GetCategories)

		v1.GET("/settings", pub.GetSettings)
		v1.POST("/settings/refresh", pub.RefreshSettings)

		v1.GET("/orders", pub.GetOrders)
		v1.GET("/orders/:orderId", pub.GetOrder)
		v1.POST("/quick-order", pub.CreateQuickOrder)

		v1.GET("/payments/:orderId/status", pub.GetPaymentStatus)

		v1.GET("/notifications", pub.DrainNotifications)

		v1.GET("/pages", pub.GetPages)
		v1.GET("/pages/:key", pub.GetPage)
		v1.GET("/hero", pub.GetHero)
		v1.GET("/posts", pub.GetPosts)

		adminGroup := v1.Group("/admin")
		{
			adminGroup.POST("/login", adm.Login)

			authed := adminGroup.Group("")
			authed.Use(AdminSessionMiddleware(c))
			{
				authed.POST("/logout", adm.Logout)
				authed.GET("/session", adm.Session)

				authed.GET("/stats", adm.GetStats)
				authed.GET("/revenue-chart", adm.GetRevenueChart)
				authed.GET("/top-products", adm.GetTopProducts)

				authed.GET("/orders", adm.GetOrders)
				authed.GET("/orders/stats", adm.GetOrderStats)
				authed.GET("/quick-orders", adm.GetQuickOrders)
				authed.PUT("/orders/:orderId/status", adm.UpdateOrderStatus)

				authed.POST("/products", adm.CreateProduct)
				authed.PUT("/products/:productId", adm.UpdateProduct)
				authed.DELETE("/products/:productId", adm.DeleteProduct)

				authed.POST("/categories", adm.CreateCategory)
				authed.PUT("/categories/:categoryId", adm.UpdateCategory)
				authed.DELETE("/categories/:categoryId", adm.DeleteCategory)

				authed.GET("/site-settings", adm.GetSiteSettings)
				authed.PUT("/site-settings", adm.SaveSiteSettings)

				authed.POST("/upload-image", adm.UploadImage)

				authed.PUT("/pages/:key", adm.UpdatePage)
			}
		}
	}

	return r
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
