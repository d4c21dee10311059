// Package payment creates Stripe payment intents for assembled booking
// summaries and records the provisional booking row. Confirmation and
// failure arrive later through the webhook, out of band.
package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	bookingRepo "wavecrest/database/repository/booking"
	"wavecrest/models"
)

// IntentResult is returned to the client to drive payment confirmation.
type IntentResult struct {
	ClientSecret    string `json:"clientSecret"`
	BookingID       string `json:"bookingId"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// Gateway creates payment intents and the pending booking rows that
// accompany them.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, summary *models.BookingSummary, info models.PersonalInfo) (*IntentResult, error)
}

// StripeGateway implements Gateway against the Stripe API. The global
// stripe.Key is set at startup.
type StripeGateway struct {
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// NewStripeGateway constructs a StripeGateway.
func NewStripeGateway(bookings bookingRepo.BookingRepository, logger *zap.Logger) *StripeGateway {
	return &StripeGateway{
		Bookings: bookings,
		Logger:   logger,
	}
}

// ValidateCheckout checks the fields the processor requires. Returns a
// ValidationError naming the first missing field.
func ValidateCheckout(summary *models.BookingSummary, info models.PersonalInfo) error {
	switch {
	case summary == nil:
		return &ValidationError{Field: "summary"}
	case summary.TotalPrice <= 0:
		return &ValidationError{Field: "amount"}
	case summary.ServiceID == "":
		return &ValidationError{Field: "serviceId"}
	case summary.ServiceName == "":
		return &ValidationError{Field: "serviceName"}
	case summary.OptionName == "":
		return &ValidationError{Field: "optionName"}
	case summary.Date == "":
		return &ValidationError{Field: "date"}
	case info.FirstName == "":
		return &ValidationError{Field: "firstName"}
	case info.LastName == "":
		return &ValidationError{Field: "lastName"}
	case info.Email == "":
		return &ValidationError{Field: "email"}
	case info.Phone == "":
		return &ValidationError{Field: "phone"}
	}
	return nil
}

// CreatePaymentIntent validates the summary, finds or creates the Stripe
// customer, creates the intent with booking metadata, and persists the
// booking row in pending state. Both error kinds are terminal for this
// attempt; the draft stays intact so the user can correct and resubmit.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, summary *models.BookingSummary, info models.PersonalInfo) (*IntentResult, error) {
	if err := ValidateCheckout(summary, info); err != nil {
		return nil, err
	}

	cust, err := g.findOrCreateCustomer(info)
	if err != nil {
		return nil, &UpstreamError{Op: "customer lookup", Err: err}
	}

	bookingID := uuid.New().String()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(summary.TotalPrice),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		Customer: stripe.String(cust.ID),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_id", bookingID)
	params.AddMetadata("service_id", summary.ServiceID)
	params.AddMetadata("option_name", summary.OptionName)
	params.AddMetadata("booking_date", summary.Date)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, &UpstreamError{Op: "payment intent creation", Err: err}
	}

	booking := &models.Booking{
		ID:                    bookingID,
		StripePaymentIntentID: intent.ID,
		ServiceID:             summary.ServiceID,
		ServiceName:           summary.ServiceName,
		OptionName:            summary.OptionName,
		PackageName:           summary.PackageName,
		Amount:                summary.TotalPrice,
		BookingDate:           summary.Date,
		Status:                models.BookingPending,
		Customer: models.CustomerInfo{
			FirstName: info.FirstName,
			LastName:  info.LastName,
			Email:     info.Email,
			Phone:     info.Phone,
		},
	}
	if err := g.Bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist pending booking: %w", err)
	}

	g.Logger.Info("payment intent created",
		zap.String("bookingID", bookingID),
		zap.String("intentID", intent.ID),
		zap.Int64("amount", summary.TotalPrice))

	return &IntentResult{
		ClientSecret:    intent.ClientSecret,
		BookingID:       bookingID,
		PaymentIntentID: intent.ID,
	}, nil
}

// findOrCreateCustomer reuses the Stripe customer matching the email or
// creates one.
func (g *StripeGateway) findOrCreateCustomer(info models.PersonalInfo) (*stripe.Customer, error) {
	listParams := &stripe.CustomerListParams{Email: stripe.String(info.Email)}
	listParams.Limit = stripe.Int64(1)
	iter := customer.List(listParams)
	for iter.Next() {
		return iter.Customer(), nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("customer list: %w", err)
	}

	return customer.New(&stripe.CustomerParams{
		Email: stripe.String(info.Email),
		Name:  stripe.String(info.FirstName + " " + info.LastName),
		Phone: stripe.String(info.Phone),
	})
}
