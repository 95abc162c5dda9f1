package capacity

// Decision is the outcome of an availability check.
type Decision struct {
	Resource  Resource
	Available bool
	Remaining int
	Capacity  int
	Reason    Reason
}

// Err converts a negative decision to an error: *UnavailableError for a
// resource taken out of service, *ConflictError otherwise.
func (d Decision) Err() error {
	if d.Available {
		return nil
	}
	if d.Reason == ReasonResourceUnavailable {
		return &UnavailableError{Resource: d.Resource}
	}
	return &ConflictError{
		Resource:          d.Resource,
		Reason:            d.Reason,
		AvailableCapacity: d.Remaining,
		MaxCapacity:       d.Capacity,
	}
}

// EvaluateRoom decides a single-room request. overlapping is the ledger count
// of active bookings that intersect the requested stay.
func EvaluateRoom(roomAvailable bool, overlapping int) Decision {
	d := Decision{Resource: ResourceRoom, Capacity: 1}
	switch {
	case !roomAvailable:
		d.Reason = ReasonResourceUnavailable
	case overlapping > 0:
		d.Reason = ReasonRoomBooked
	default:
		d.Available = true
		d.Remaining = 1
	}
	return d
}

// EvaluateDiningRoom checks availability flag, absolute capacity and remaining
// capacity, in that order.
func EvaluateDiningRoom(isAvailable bool, u Usage, guests int) Decision {
	return evaluateSeats(ResourceDiningRoom, isAvailable, u, guests)
}

func EvaluateTimeSlot(isActive bool, u Usage, guests int) Decision {
	return evaluateSeats(ResourceTimeSlot, isActive, u, guests)
}

// EvaluateRestaurant combines the slot and the optional dining room decision.
// When both fail the dining room failure wins.
func EvaluateRestaurant(slot Decision, room *Decision) Decision {
	if room != nil && !room.Available {
		return *room
	}
	if !slot.Available {
		return slot
	}
	if room != nil && room.Remaining < slot.Remaining {
		return *room
	}
	return slot
}

func evaluateSeats(res Resource, open bool, u Usage, guests int) Decision {
	d := Decision{Resource: res, Capacity: u.Capacity, Remaining: u.Remaining()}
	switch {
	case !open:
		d.Reason = ReasonResourceUnavailable
		d.Remaining = 0
	case guests > u.Capacity:
		d.Reason = ReasonExceedsCapacity
	case u.Consumed+guests > u.Capacity:
		d.Reason = ReasonInsufficientCapacity
	default:
		d.Available = true
	}
	return d
}
