package repository

import (
	"context"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/infra/sqlbuilder"

	"github.com/google/uuid"
)

// CapacityLedger computes consumed capacity. It only reads; callers that need
// a stable answer hold the resource row lock first.
type CapacityLedger struct{}

func NewCapacityLedger() *CapacityLedger {
	return &CapacityLedger{}
}

func (l *CapacityLedger) ConsumedRoom(ctx context.Context, tx db.DBTX, roomID uuid.UUID, stay booking.StayWindow) (int, error) {
	args := sqlbuilder.NewArgs(roomID)
	query := `SELECT COUNT(*) FROM room_bookings rb WHERE rb.room_id = $1 AND ` + RoomOverlapConditions(args, stay)

	var n int
	if err := tx.QueryRow(ctx, query, args.Values()...).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping room bookings", err)
	}
	return n, nil
}

func (l *CapacityLedger) ConsumedDiningRoom(ctx context.Context, tx db.DBTX, diningRoomID uuid.UUID, w booking.DiningWindow) (int, error) {
	args := sqlbuilder.NewArgs(diningRoomID, w.Date(), w.SlotStart())
	query := `SELECT COALESCE(SUM(rb.guest_count), 0) FROM restaurant_bookings rb
		WHERE rb.dining_room_id = $1 AND rb.booking_date = $2 AND rb.time_slot = $3::time AND ` + DiningActiveCondition(args)

	var n int
	if err := tx.QueryRow(ctx, query, args.Values()...).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to sum dining room guests", err)
	}
	return n, nil
}

func (l *CapacityLedger) ConsumedTimeSlot(ctx context.Context, tx db.DBTX, slotID uuid.UUID, date time.Time) (int, error) {
	args := sqlbuilder.NewArgs(slotID, booking.Day(date))
	query := `SELECT COALESCE(SUM(rb.guest_count), 0) FROM restaurant_bookings rb
		WHERE rb.time_slot_id = $1 AND rb.booking_date = $2 AND ` + DiningActiveCondition(args)

	var n int
	if err := tx.QueryRow(ctx, query, args.Values()...).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to sum time slot guests", err)
	}
	return n, nil
}
