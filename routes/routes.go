package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/config"
	"storefront/controllers"
	"storefront/libs"
	"storefront/repositories"
	"storefront/services"
)

func SetupRoutes(router *gin.Engine) {
	store := repositories.NewCartStore()
	cartService := services.NewCartService(store, services.LogNotifier{})

	checkoutService := services.NewCheckoutService(libs.NewStripeSessionCreator(), services.CheckoutOptions{
		Currency:          config.AppConfig.Currency,
		SuccessURL:        config.AppConfig.SuccessURL,
		CancelURL:         config.AppConfig.CancelURL,
		AllowedCountries:  config.AppConfig.AllowedCountries,
		AggregationPolicy: config.AppConfig.AggregationPolicy,
	})

	var capturer services.OrderCapturer
	if paypalClient, err := libs.NewPayPalClient(); err != nil {
		log.Println("PayPal client unavailable:", err)
	} else {
		capturer = paypalClient
	}
	paypalService := services.NewPayPalService(capturer)

	cartCtrl := controllers.NewCartController(cartService)
	checkoutCtrl := controllers.NewCheckoutController(checkoutService)
	paypalCtrl := controllers.NewPayPalController(paypalService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	router.GET("/config", checkoutCtrl.GetClientConfig)

	router.POST("/create-checkout-session", checkoutCtrl.CreateCheckoutSession)
	router.POST("/paypal-payment-success", paypalCtrl.CapturePayment)

	cart := router.Group("/cart")
	{
		cart.GET("/:cartId", cartCtrl.GetCart)
		cart.POST("/:cartId/items", cartCtrl.AddItem)
		cart.PATCH("/:cartId/items/:productId", cartCtrl.UpdateQuantity)
		cart.DELETE("/:cartId/items/:productId", cartCtrl.RemoveItem)
	}

	router.Static("/public", config.AppConfig.StaticDir)
}
