package capacity

import (
	"fmt"

	"booking-engine/internal/pkg/errs"
)

type Reason string

const (
	ReasonResourceUnavailable  Reason = "resource_unavailable"
	ReasonRoomBooked           Reason = "room_already_booked"
	ReasonExceedsCapacity      Reason = "exceeds_capacity"
	ReasonInsufficientCapacity Reason = "insufficient_capacity"
)

type Resource string

const (
	ResourceRoom       Resource = "room"
	ResourceDiningRoom Resource = "dining_room"
	ResourceTimeSlot   Resource = "time_slot"
)

// ConflictError reports a booking that does not fit the remaining capacity.
type ConflictError struct {
	Resource          Resource
	Reason            Reason
	AvailableCapacity int
	MaxCapacity       int
}

func (e *ConflictError) Error() string {
	switch e.Reason {
	case ReasonExceedsCapacity:
		return fmt.Sprintf("%s capacity exceeded (max %d)", e.Resource, e.MaxCapacity)
	case ReasonInsufficientCapacity:
		return fmt.Sprintf("%s has insufficient capacity (available %d)", e.Resource, e.AvailableCapacity)
	case ReasonRoomBooked:
		return "room is already booked for the selected dates"
	default:
		return fmt.Sprintf("%s is not available", e.Resource)
	}
}

func (e *ConflictError) Is(target error) bool {
	return target == errs.ErrCapacityConflict
}

// UnavailableError reports a resource that exists but does not take bookings,
// such as a room under maintenance or an inactive slot. It is reported like a
// missing resource.
type UnavailableError struct {
	Resource Resource
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s is not available for booking", e.Resource)
}

func (e *UnavailableError) Is(target error) bool {
	return target == errs.ErrNotFound
}

// Detail is the structured payload returned to clients.
func (e *ConflictError) Detail() map[string]any {
	d := map[string]any{
		"resource":           string(e.Resource),
		"reason":             string(e.Reason),
		"available_capacity": e.AvailableCapacity,
	}
	if e.Reason == ReasonExceedsCapacity {
		d["max_capacity"] = e.MaxCapacity
	}
	return d
}
