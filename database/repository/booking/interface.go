package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"wavecrest/database"
	"wavecrest/models"
)

// BookingRepository defines booking-record data access. Rows are created
// `pending` at payment-intent time and transitioned by webhook events or
// the stale-pending sweep.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByPaymentIntentID(ctx context.Context, intentID string) (*models.Booking, error)
	UpdateStatusByPaymentIntent(ctx context.Context, intentID string, status models.BookingStatus, reason string) (*models.Booking, error)
	MarkStalePending(ctx context.Context, olderThan time.Time) (int64, error)
	ListRecent(ctx context.Context, limit int64) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
