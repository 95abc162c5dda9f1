package dining

import (
	"errors"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrDiningRoomNotFound = errors.New("dining room not found")
	ErrTimeSlotNotFound   = errors.New("time slot not found")
	ErrPackageNotFound    = errors.New("meal package not found")
	ErrCuisineNotFound    = errors.New("cuisine not found")
	ErrBookingNotFound    = errors.New("restaurant booking not found")
	ErrMealTypeMismatch   = errors.New("does not match the booking meal type")
	ErrPackageTooSmall    = errors.New("exceeds the package guest limit")
)

type RoomType string

const (
	RoomMahjong RoomType = "mahjong"
	RoomPrivate RoomType = "private"
	RoomPublic  RoomType = "public"
	RoomTeaRoom RoomType = "tea_room"
	RoomGarden  RoomType = "garden"
	RoomOther   RoomType = "other"
)

type DiningRoom struct {
	ID          uuid.UUID
	Name        string
	RoomType    RoomType
	Capacity    int
	Description string
	Facilities  []string
	Images      []string
	IsAvailable bool
}

type TimeSlot struct {
	ID          uuid.UUID
	MealType    booking.MealType
	StartTime   string
	EndTime     string
	MaxCapacity int
	IsActive    bool
}

func (s TimeSlot) Window(date time.Time) booking.DiningWindow {
	return booking.NewDiningWindow(date, s.StartTime)
}

type MealPackage struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       pricing.Money
	MealType    booking.MealType
	MaxGuests   int
	IsActive    bool
}

// Fits checks a package against the booking it is attached to.
func (p MealPackage) Fits(meal booking.MealType, guests int) error {
	if p.MealType != meal {
		return ErrMealTypeMismatch
	}
	if guests > p.MaxGuests {
		return ErrPackageTooSmall
	}
	return nil
}
