package lodging

import (
	"errors"

	"booking-engine/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrBookingNotFound  = errors.New("room booking not found")
	ErrTooManyGuests    = errors.New("exceeds maximum occupancy")
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	default:
		return false
	}
}

// RoomType carries the pricing and occupancy limits shared by its rooms.
type RoomType struct {
	ID           uuid.UUID
	Name         string
	Description  string
	BasePrice    pricing.Money
	MaxOccupancy int
	Amenities    []string
	Images       []string
}

// Room is a single bookable unit. Its capacity is one stay at a time.
type Room struct {
	ID         uuid.UUID
	RoomNumber string
	Floor      int
	Status     RoomStatus
	Type       RoomType
}

func (r Room) AcceptsBookings() bool {
	return r.Status == RoomAvailable
}

// CheckOccupancy rejects parties larger than the room type allows.
func (r Room) CheckOccupancy(guests int) error {
	if guests > r.Type.MaxOccupancy {
		return ErrTooManyGuests
	}
	return nil
}
