package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wavecrest/models"
)

// ErrBookingNotFound is returned when no booking matches the lookup key.
var ErrBookingNotFound = fmt.Errorf("booking not found")

// Create inserts a new booking row. Assigns an ID if the caller did not.
func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.Status == "" {
		booking.Status = models.BookingPending
	}
	booking.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// GetByID returns a booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByPaymentIntentID returns the booking created for a payment intent.
func (r *mongoBookingRepo) GetByPaymentIntentID(ctx context.Context, intentID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"stripe_payment_intent_id": intentID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatusByPaymentIntent transitions the booking keyed by the intent
// id and stamps the transition time. The update is keyed by intent id so a
// late webhook still lands even after the sweep marked the row abandoned.
func (r *mongoBookingRepo) UpdateStatusByPaymentIntent(ctx context.Context, intentID string, status models.BookingStatus, reason string) (*models.Booking, error) {
	now := time.Now()
	set := bson.M{"status": status}
	switch status {
	case models.BookingConfirmed:
		set["confirmed_at"] = now
	case models.BookingFailed:
		set["failed_at"] = now
		if reason != "" {
			set["failure_reason"] = reason
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"stripe_payment_intent_id": intentID},
		bson.M{"$set": set},
		opts,
	).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return &booking, nil
}

// MarkStalePending flips pending rows created before the cutoff to
// abandoned. Returns the number of rows updated.
func (r *mongoBookingRepo) MarkStalePending(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{
			"status":     models.BookingPending,
			"created_at": bson.M{"$lt": olderThan},
		},
		bson.M{"$set": bson.M{"status": models.BookingAbandoned}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark stale pending bookings: %w", err)
	}
	return res.ModifiedCount, nil
}

// ListRecent returns the most recently created bookings.
func (r *mongoBookingRepo) ListRecent(ctx context.Context, limit int64) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
