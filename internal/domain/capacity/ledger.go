package capacity

import "booking-engine/internal/domain/booking"

// Usage is a capacity query result for one resource and window.
type Usage struct {
	Capacity int
	Consumed int
}

func (u Usage) Remaining() int {
	r := u.Capacity - u.Consumed
	if r < 0 {
		return 0
	}
	return r
}

// StayRecord is the ledger view of an existing room booking.
type StayRecord struct {
	Window booking.StayWindow
	Status booking.Status
}

// DiningRecord is the ledger view of an existing restaurant booking.
type DiningRecord struct {
	Window     booking.DiningWindow
	GuestCount int
	Status     booking.Status
}

// ConsumedRoom counts active bookings overlapping w. Rooms are binary, so any
// non-zero result means the room is taken.
func ConsumedRoom(records []StayRecord, w booking.StayWindow) int {
	n := 0
	for _, r := range records {
		if IsActiveLodging(r.Status) && r.Window.Overlaps(w) {
			n++
		}
	}
	return n
}

// ConsumedDining sums guest counts of non-cancelled bookings in the same window.
func ConsumedDining(records []DiningRecord, w booking.DiningWindow) int {
	n := 0
	for _, r := range records {
		if IsActiveDining(r.Status) && r.Window.Overlaps(w) {
			n += r.GuestCount
		}
	}
	return n
}
