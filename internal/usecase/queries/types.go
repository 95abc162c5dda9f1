package queries

import (
	"time"

	"booking-engine/internal/domain/pricing"

	"github.com/google/uuid"
)

// RoomTypeView represents read-optimized room type data
type RoomTypeView struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	BasePrice    pricing.Money `json:"base_price"`
	MaxOccupancy int           `json:"max_occupancy"`
	Amenities    []string      `json:"amenities"`
	Images       []string      `json:"images"`
}

// RoomView represents a room joined with its type
type RoomView struct {
	ID         uuid.UUID    `json:"id"`
	RoomNumber string       `json:"room_number"`
	Floor      int          `json:"floor"`
	Status     string       `json:"status"`
	RoomType   RoomTypeView `json:"room_type"`
}

type RoomAvailabilityView struct {
	RoomID    uuid.UUID `json:"room_id"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	Available bool      `json:"available"`
	Reason    string    `json:"reason,omitempty"`
}

type DiningRoomView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	RoomType    string    `json:"room_type"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	Facilities  []string  `json:"facilities"`
	Images      []string  `json:"images"`
	IsAvailable bool      `json:"is_available"`
}

type DiningRoomAvailabilityView struct {
	DiningRoomView
	BookedGuests      int `json:"booked_guests"`
	AvailableCapacity int `json:"available_capacity"`
}

type TimeSlotView struct {
	ID          uuid.UUID `json:"id"`
	MealType    string    `json:"meal_type"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	MaxCapacity int       `json:"max_capacity"`
	IsActive    bool      `json:"is_active"`
}

type SlotAvailabilityView struct {
	TimeSlotView
	BookedGuests      int  `json:"booked_guests"`
	AvailableCapacity int  `json:"available_capacity"`
	IsAvailable       bool `json:"is_available"`
}

type CuisineView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url,omitempty"`
}

type MealPackageView struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       pricing.Money `json:"price"`
	CuisineID   *uuid.UUID    `json:"cuisine_id,omitempty"`
	CuisineName *string       `json:"cuisine_name,omitempty"`
	MealType    string        `json:"meal_type"`
	MaxGuests   int           `json:"max_guests"`
	IsActive    bool          `json:"is_active"`
}

// RoomBookingView represents read-optimized room booking data
type RoomBookingView struct {
	ID              uuid.UUID     `json:"id"`
	RoomID          uuid.UUID     `json:"room_id"`
	RoomNumber      string        `json:"room_number"`
	RoomTypeName    string        `json:"room_type_name"`
	UserID          *uuid.UUID    `json:"user_id,omitempty"`
	GuestName       *string       `json:"guest_name,omitempty"`
	GuestPhone      *string       `json:"guest_phone,omitempty"`
	CheckIn         time.Time     `json:"check_in"`
	CheckOut        time.Time     `json:"check_out"`
	GuestCount      int           `json:"guest_count"`
	Status          string        `json:"status"`
	TotalPrice      pricing.Money `json:"total_price"`
	SpecialRequests *string       `json:"special_requests,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// RestaurantBookingView represents read-optimized restaurant booking data
type RestaurantBookingView struct {
	ID              uuid.UUID     `json:"id"`
	UserID          *uuid.UUID    `json:"user_id,omitempty"`
	GuestName       *string       `json:"guest_name,omitempty"`
	GuestPhone      *string       `json:"guest_phone,omitempty"`
	BookingDate     time.Time     `json:"booking_date"`
	MealType        string        `json:"meal_type"`
	TimeSlotID      uuid.UUID     `json:"time_slot_id"`
	TimeSlot        string        `json:"time_slot"`
	DiningRoomID    *uuid.UUID    `json:"dining_room_id,omitempty"`
	DiningRoomName  *string       `json:"dining_room_name,omitempty"`
	PackageID       *uuid.UUID    `json:"package_id,omitempty"`
	PackageName     *string       `json:"package_name,omitempty"`
	GuestCount      int           `json:"guest_count"`
	Status          string        `json:"status"`
	TotalPrice      pricing.Money `json:"total_price"`
	SpecialRequests *string       `json:"special_requests,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// DiningRoomStatsView aggregates confirmed and completed bookings of a dining room
type DiningRoomStatsView struct {
	DiningRoomID  uuid.UUID `json:"dining_room_id"`
	BookingCount  int       `json:"booking_count"`
	TotalGuests   int       `json:"total_guests"`
	AverageGuests float64   `json:"average_guests"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Phone    *string   `json:"phone,omitempty"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// KeysetAfter positions a created_at DESC, id DESC listing.
type KeysetAfter struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type RoomBookingFilter struct {
	UserID    *uuid.UUID
	Status    *string
	StartDate *time.Time // check_in >= StartDate
	EndDate   *time.Time // check_out <= EndDate
	After     *KeysetAfter
	Limit     int
}

type RestaurantBookingFilter struct {
	UserID   *uuid.UUID
	Phone    *string
	Status   *string
	Date     *time.Time
	MealType *string
	After    *KeysetAfter
	Limit    int
}

type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}
