package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wavecrest/handlers"
	"wavecrest/utils"
)

// RegisterCatalogRoutes registers the read-only service catalog.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", handlers.ListServices)
		api.GET("/services/:id", handlers.GetService)
		api.GET("/services/:id/options/:option/packages", handlers.GetPackages)
	}
}

// RegisterCalendarRoutes registers availability calendar endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.GET("/blocked", hb.Calendar.ListBlockedDates)
		api.GET("/month", hb.Calendar.MonthGrid)
	}
}

// RegisterBookingRoutes registers the booking flow state machine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	flow := r.Group("/api/booking/flow")
	{
		flow.POST("", hb.BookingFlow.StartFlow)
		flow.GET("/:sessionID", hb.BookingFlow.GetDraft)
		flow.DELETE("/:sessionID", hb.BookingFlow.CancelFlow)
		flow.POST("/:sessionID/service", hb.BookingFlow.SelectService)
		flow.POST("/:sessionID/option", hb.BookingFlow.SelectOption)
		flow.POST("/:sessionID/package", hb.BookingFlow.SelectPackage)
		flow.POST("/:sessionID/addon", hb.BookingFlow.SetAddOn)
		flow.POST("/:sessionID/offer", hb.BookingFlow.SetCombinedOffer)
		flow.POST("/:sessionID/info", hb.BookingFlow.UpdatePersonalInfo)
		flow.POST("/:sessionID/date", hb.BookingFlow.SelectDate)
		flow.POST("/:sessionID/next", hb.BookingFlow.Next)
		flow.POST("/:sessionID/back", hb.BookingFlow.Back)
		flow.POST("/:sessionID/complete", hb.BookingFlow.CompletePayment)
		flow.GET("/:sessionID/summary", hb.BookingFlow.Summary)
	}

	r.POST("/api/checkout", hb.Checkout.Checkout)
	r.GET("/api/booking-id", hb.Checkout.GenerateBookingID)
	r.GET("/api/bookings/:id", hb.Confirmation.GetBooking)
	r.GET("/api/bookings", hb.Confirmation.ListRecentBookings)
}

// RegisterWebhookRoutes registers payment-processor callbacks. These sit
// outside the rate limiter group; authenticity comes from the signature.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/webhooks/stripe", hb.Webhook.Handle)
}

// RegisterOrderRoutes registers the apparel storefront endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/orders", hb.Orders.SubmitOrder)
	r.GET("/api/orders/:id", hb.Orders.GetOrder)

	cartGroup := r.Group("/api/cart")
	{
		cartGroup.GET("/:sessionID", hb.Cart.ListItems)
		cartGroup.POST("/:sessionID/items", hb.Cart.AddItem)
		cartGroup.DELETE("/:sessionID/items/:itemID", hb.Cart.RemoveItem)
		cartGroup.DELETE("/:sessionID", hb.Cart.ClearCart)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r)
	RegisterCalendarRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
}
