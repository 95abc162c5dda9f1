package dining

import (
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/pricing"

	"github.com/google/uuid"
)

type RestaurantBooking struct {
	id              uuid.UUID
	userID          *uuid.UUID
	contact         booking.Contact
	date            time.Time
	mealType        booking.MealType
	timeSlotID      uuid.UUID
	diningRoomID    *uuid.UUID
	packageID       *uuid.UUID
	guestCount      booking.GuestCount
	status          booking.Status
	totalPrice      pricing.Money
	specialRequests booking.SpecialRequests
	createdAt       time.Time
	updatedAt       time.Time
}

type NewRestaurantBookingParams struct {
	UserID          *uuid.UUID
	Contact         booking.Contact
	Date            time.Time
	MealType        booking.MealType
	TimeSlotID      uuid.UUID
	DiningRoomID    *uuid.UUID
	PackageID       *uuid.UUID
	GuestCount      booking.GuestCount
	TotalPrice      pricing.Money
	SpecialRequests booking.SpecialRequests
}

func NewRestaurantBooking(p NewRestaurantBookingParams, now time.Time) *RestaurantBooking {
	return &RestaurantBooking{
		id:              uuid.New(),
		userID:          p.UserID,
		contact:         p.Contact,
		date:            booking.Day(p.Date),
		mealType:        p.MealType,
		timeSlotID:      p.TimeSlotID,
		diningRoomID:    p.DiningRoomID,
		packageID:       p.PackageID,
		guestCount:      p.GuestCount,
		status:          booking.StatusPending,
		totalPrice:      p.TotalPrice,
		specialRequests: p.SpecialRequests,
		createdAt:       now,
		updatedAt:       now,
	}
}

func (b *RestaurantBooking) ID() uuid.UUID                            { return b.id }
func (b *RestaurantBooking) UserID() *uuid.UUID                       { return b.userID }
func (b *RestaurantBooking) Contact() booking.Contact                 { return b.contact }
func (b *RestaurantBooking) Date() time.Time                          { return b.date }
func (b *RestaurantBooking) MealType() booking.MealType               { return b.mealType }
func (b *RestaurantBooking) TimeSlotID() uuid.UUID                    { return b.timeSlotID }
func (b *RestaurantBooking) DiningRoomID() *uuid.UUID                 { return b.diningRoomID }
func (b *RestaurantBooking) PackageID() *uuid.UUID                    { return b.packageID }
func (b *RestaurantBooking) GuestCount() booking.GuestCount           { return b.guestCount }
func (b *RestaurantBooking) Status() booking.Status                   { return b.status }
func (b *RestaurantBooking) TotalPrice() pricing.Money                { return b.totalPrice }
func (b *RestaurantBooking) SpecialRequests() booking.SpecialRequests { return b.specialRequests }
func (b *RestaurantBooking) CreatedAt() time.Time                     { return b.createdAt }
func (b *RestaurantBooking) UpdatedAt() time.Time                     { return b.updatedAt }
