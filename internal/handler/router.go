package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Handlers struct {
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Orders   *OrderHandler
}

func NewRouter(h Handlers, serviceName string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	// по serviceName трейсы ищутся в Jaeger
	router.Use(otelgin.Middleware(serviceName))
	router.Use(MetricsMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.String(http.StatusOK, "Сервер работает")
		})

		api.GET("/products", h.Catalog.GetProducts)
		api.GET("/products/:id", h.Catalog.GetProduct)
		api.GET("/products/:id/similar", h.Catalog.GetSimilar)
		api.GET("/filters", h.Catalog.GetFilters)

		catalog := api.Group("/catalog")
		catalog.GET("", h.Catalog.GetState)
		catalog.POST("/filters/brand", h.Catalog.ToggleBrand)
		catalog.POST("/filters/age", h.Catalog.ToggleAge)
		catalog.POST("/filters/gender", h.Catalog.SetGender)
		catalog.DELETE("/filters", h.Catalog.ClearFilters)
		catalog.DELETE("/errors", h.Catalog.ClearErrors)

		cart := api.Group("/cart")
		cart.GET("", h.Cart.GetCart)
		cart.DELETE("", h.Cart.Clear)
		cart.POST("/items", h.Cart.AddItem)
		cart.DELETE("/items/:id", h.Cart.RemoveItem)
		cart.POST("/check", h.Cart.Check)

		checkout := api.Group("/checkout")
		checkout.GET("", h.Checkout.GetCheckout)
		checkout.POST("", h.Checkout.Submit)
		checkout.POST("/reset", h.Checkout.Reset)
		checkout.DELETE("/error", h.Checkout.ClearError)

		api.GET("/orders", h.Orders.GetHistory)
		api.GET("/orders/:id", h.Orders.GetOrder)
		api.GET("/notifications", h.Orders.GetNotifications)
	}
	return router
}
