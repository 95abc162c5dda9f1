package repository

import (
	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/capacity"
	"booking-engine/internal/infra/sqlbuilder"
)

// RoomOverlapConditions renders the lodging ledger predicate over room_bookings
// aliased as rb: active status and a stay intersecting [check_in, check_out).
// The single-room ledger and the room search both embed this fragment.
func RoomOverlapConditions(args *sqlbuilder.Args, stay booking.StayWindow) string {
	return sqlbuilder.NewWhere(args).
		And("rb.status = ANY(?)", capacity.StatusStrings(capacity.ActiveLodgingStatuses)).
		And("rb.check_in < ?", stay.CheckOut()).
		And("? < rb.check_out", stay.CheckIn()).
		Conditions()
}

// DiningActiveCondition restricts restaurant_bookings aliased as rb to rows
// that consume seats.
func DiningActiveCondition(args *sqlbuilder.Args) string {
	return sqlbuilder.NewWhere(args).
		And("rb.status = ANY(?)", capacity.StatusStrings(capacity.ActiveDiningStatuses)).
		Conditions()
}
