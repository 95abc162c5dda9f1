package notification

import (
	"time"

	"booking-engine/internal/domain/booking"

	"github.com/google/uuid"
)

type EventType string

const (
	BookingCreated      EventType = "booking_created"
	BookingUpdated      EventType = "booking_updated"
	BookingCancelled    EventType = "booking_cancelled"
	AvailabilityChanged EventType = "availability_changed"
)

type ResourceKind string

const (
	KindRoom       ResourceKind = "room"
	KindRestaurant ResourceKind = "restaurant"
)

// Event is emitted after a reservation change has been committed.
type Event struct {
	ID            uuid.UUID      `json:"id"`
	Type          EventType      `json:"type"`
	ResourceKind  ResourceKind   `json:"resource_kind"`
	ReservationID *uuid.UUID     `json:"reservation_id,omitempty"`
	Date          string         `json:"date"`
	Status        booking.Status `json:"status,omitempty"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

func newEvent(t EventType, kind ResourceKind, date time.Time, now time.Time) Event {
	return Event{
		ID:           uuid.New(),
		Type:         t,
		ResourceKind: kind,
		Date:         date.Format(booking.DateLayout),
		OccurredAt:   now,
	}
}

func ReservationEvent(t EventType, kind ResourceKind, id uuid.UUID, status booking.Status, date, now time.Time) Event {
	e := newEvent(t, kind, date, now)
	e.ReservationID = &id
	e.Status = status
	return e
}

func AvailabilityEvent(kind ResourceKind, date, now time.Time) Event {
	return newEvent(AvailabilityChanged, kind, date, now)
}

// Emitter hands events to delivery without blocking the caller.
type Emitter interface {
	Emit(e Event)
}
