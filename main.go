// File: wavecrest/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"

	"wavecrest/config"
	"wavecrest/cron"
	"wavecrest/database"
	blockedRepo "wavecrest/database/repository/blocked"
	bookingRepo "wavecrest/database/repository/booking"
	orderRepo "wavecrest/database/repository/order"
	"wavecrest/handlers"
	"wavecrest/middleware"
	"wavecrest/routes"
	"wavecrest/services/booking"
	"wavecrest/services/cart"
	"wavecrest/services/orders"
	"wavecrest/services/payment"
	"wavecrest/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	blocked := blockedRepo.NewMongoBlockedRepo()
	orderRecords := orderRepo.NewMongoOrderRepo()

	// services.
	flowService := booking.NewFlowService(
		utils.GetFlowCacheClient(),
		blocked,
		time.Duration(config.AppConfig.FlowSessionTTLMinutes)*time.Minute,
		logger,
	)
	gateway := payment.NewStripeGateway(bookings, logger)
	printClient := orders.NewClient(
		config.AppConfig.PrintAPIBaseURL,
		config.AppConfig.PrintAPIToken,
		config.AppConfig.PrintShopID,
		logger,
	)
	orderService := orders.NewOrderService(printClient, orderRecords, logger)
	cartStore := cart.NewRedisStore(
		utils.GetCartCacheClient(),
		time.Duration(config.AppConfig.CartTTLHours)*time.Hour,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		BookingFlow:  handlers.NewBookingFlowHandler(flowService, logger),
		Checkout:     handlers.NewCheckoutHandler(flowService, gateway, logger),
		Webhook:      handlers.NewStripeWebhookHandler(config.AppConfig.StripeWebhookSecret, bookings, blocked, logger),
		Confirmation: handlers.NewConfirmationHandler(bookings, logger),
		Calendar:     handlers.NewCalendarHandler(blocked, logger),
		Orders:       handlers.NewOrderHandler(orderService, logger),
		Cart:         handlers.NewCartHandler(cartStore, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background: stale-pending sweep and health monitor.
	cron.InitBookingSweep(bookings, logger)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetFlowCacheClient(), utils.GetCartCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
