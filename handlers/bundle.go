package handlers

// HandlerBundle aggregates the constructed handlers for route
// registration.
type HandlerBundle struct {
	BookingFlow  *BookingFlowHandler
	Checkout     *CheckoutHandler
	Webhook      *StripeWebhookHandler
	Confirmation *ConfirmationHandler
	Calendar     *CalendarHandler
	Orders       *OrderHandler
	Cart         *CartHandler
}
