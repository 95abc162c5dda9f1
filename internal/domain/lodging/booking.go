package lodging

import (
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/pricing"

	"github.com/google/uuid"
)

type RoomBooking struct {
	id              uuid.UUID
	roomID          uuid.UUID
	userID          *uuid.UUID
	contact         booking.Contact
	stay            booking.StayWindow
	guestCount      booking.GuestCount
	status          booking.Status
	totalPrice      pricing.Money
	specialRequests booking.SpecialRequests
	createdAt       time.Time
	updatedAt       time.Time
}

// NewRoomBooking creates a pending booking. Callers validate inputs first.
func NewRoomBooking(
	roomID uuid.UUID,
	userID *uuid.UUID,
	contact booking.Contact,
	stay booking.StayWindow,
	guests booking.GuestCount,
	total pricing.Money,
	requests booking.SpecialRequests,
	now time.Time,
) *RoomBooking {
	return &RoomBooking{
		id:              uuid.New(),
		roomID:          roomID,
		userID:          userID,
		contact:         contact,
		stay:            stay,
		guestCount:      guests,
		status:          booking.StatusPending,
		totalPrice:      total,
		specialRequests: requests,
		createdAt:       now,
		updatedAt:       now,
	}
}

func (b *RoomBooking) ID() uuid.UUID                            { return b.id }
func (b *RoomBooking) RoomID() uuid.UUID                        { return b.roomID }
func (b *RoomBooking) UserID() *uuid.UUID                       { return b.userID }
func (b *RoomBooking) Contact() booking.Contact                 { return b.contact }
func (b *RoomBooking) Stay() booking.StayWindow                 { return b.stay }
func (b *RoomBooking) GuestCount() booking.GuestCount           { return b.guestCount }
func (b *RoomBooking) Status() booking.Status                   { return b.status }
func (b *RoomBooking) TotalPrice() pricing.Money                { return b.totalPrice }
func (b *RoomBooking) SpecialRequests() booking.SpecialRequests { return b.specialRequests }
func (b *RoomBooking) CreatedAt() time.Time                     { return b.createdAt }
func (b *RoomBooking) UpdatedAt() time.Time                     { return b.updatedAt }
