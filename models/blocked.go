package models

import "time"

// BlockedDate marks a calendar day as unavailable for booking.
type BlockedDate struct {
	BlockID   string    `bson:"block_id" json:"block_id"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	ServiceID string    `bson:"service_id,omitempty" json:"service_id,omitempty"`
	Reason    string    `bson:"reason" json:"reason"` // e.g. "booked", "maintenance"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
