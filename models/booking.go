package models

import "time"

// BookingStatus is the lifecycle state of a persisted booking row.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingFailed    BookingStatus = "failed"
	// BookingAbandoned marks pending rows whose payment webhook never
	// arrived; assigned by the sweep worker.
	BookingAbandoned BookingStatus = "abandoned"
)

// CustomerInfo is the customer snapshot stored on a booking row.
type CustomerInfo struct {
	FirstName string `bson:"first_name" json:"firstName"`
	LastName  string `bson:"last_name" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`
}

// Booking represents a persisted booking record.
type Booking struct {
	ID                    string        `bson:"id" json:"id"`
	StripePaymentIntentID string        `bson:"stripe_payment_intent_id" json:"stripePaymentIntentId"`
	ServiceID             string        `bson:"service_id" json:"serviceId"`
	ServiceName           string        `bson:"service_name" json:"serviceName"`
	OptionName            string        `bson:"option_name" json:"optionName"`
	PackageName           string        `bson:"package_name,omitempty" json:"packageName,omitempty"`
	Amount                int64         `bson:"amount" json:"amount"` // cents
	BookingDate           string        `bson:"booking_date" json:"bookingDate"` // "YYYY-MM-DD"
	Status                BookingStatus `bson:"status" json:"status"`
	Customer              CustomerInfo  `bson:"customer" json:"customer"`
	FailureReason         string        `bson:"failure_reason,omitempty" json:"failureReason,omitempty"`
	CreatedAt             time.Time     `bson:"created_at" json:"createdAt"`
	ConfirmedAt           *time.Time    `bson:"confirmed_at,omitempty" json:"confirmedAt,omitempty"`
	FailedAt              *time.Time    `bson:"failed_at,omitempty" json:"failedAt,omitempty"`
}
