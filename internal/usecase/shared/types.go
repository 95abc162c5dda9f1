package shared

import (
	"time"

	"booking-engine/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingSnapshot is the write-side view of an existing booking, enough to
// authorize and apply a status change.
type BookingSnapshot struct {
	ID     uuid.UUID
	UserID *uuid.UUID
	Status booking.Status
	// check-in for room bookings, booking date for restaurant bookings
	Date time.Time
}

// RestaurantBookingPatch lists the columns a restaurant booking update may touch.
// Nil fields are left unchanged.
type RestaurantBookingPatch struct {
	Status          *booking.Status
	SpecialRequests *string
}

func (p RestaurantBookingPatch) IsEmpty() bool {
	return p.Status == nil && p.SpecialRequests == nil
}

const (
	JobStatusQueued = "queued"
	JobStatusFailed = "failed"
)

type NotificationJob struct {
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int
	Status    string
	LastError *string
}
