package capacity

import "booking-engine/internal/domain/booking"

// ActiveLodgingStatuses are the room booking statuses that hold a room.
var ActiveLodgingStatuses = []booking.Status{booking.StatusPending, booking.StatusConfirmed}

// ActiveDiningStatuses are the restaurant booking statuses that consume seats.
// Everything except cancelled counts, completed included.
var ActiveDiningStatuses = []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusCompleted}

func IsActiveLodging(s booking.Status) bool { return contains(ActiveLodgingStatuses, s) }
func IsActiveDining(s booking.Status) bool  { return contains(ActiveDiningStatuses, s) }

// StatusStrings renders a status list for use as a SQL array parameter.
func StatusStrings(statuses []booking.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}

func contains(list []booking.Status, s booking.Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
