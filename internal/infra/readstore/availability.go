package readstore

import (
	"context"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/capacity"
	"booking-engine/internal/domain/lodging"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/infra/repository"
	"booking-engine/internal/infra/sqlbuilder"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(db db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: db}
}

// SearchRooms embeds the same overlap predicate as the per-room ledger.
func (r *AvailabilityReadStore) SearchRooms(ctx context.Context, roomTypeID *uuid.UUID, stay booking.StayWindow) ([]*queries.RoomView, error) {
	args := sqlbuilder.NewArgs()
	where := sqlbuilder.NewWhere(args).
		And("r.status = ?", string(lodging.RoomAvailable)).
		AndIf(roomTypeID != nil, "r.room_type_id = ?", roomTypeID)
	overlap := repository.RoomOverlapConditions(args, stay)

	query := roomSelect + where.SQL() + `
		AND NOT EXISTS (SELECT 1 FROM room_bookings rb WHERE rb.room_id = r.id AND ` + overlap + `)
		ORDER BY rt.base_price ASC, r.seq ASC`

	rows, err := r.db.Query(ctx, query, args.Values()...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search available rooms", err)
	}
	rooms, err := collect(rows, scanRoom)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan available rooms", err)
	}
	return rooms, nil
}

func (r *AvailabilityReadStore) FindRoom(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	room, err := scanRoom(r.db.QueryRow(ctx, roomSelect+`WHERE r.id = $1`, id))
	if err != nil {
		return nil, wrapFind("failed to find room", err)
	}
	return room, nil
}

func (r *AvailabilityReadStore) CountOverlapping(ctx context.Context, roomID uuid.UUID, stay booking.StayWindow) (int, error) {
	return repository.NewCapacityLedger().ConsumedRoom(ctx, r.db, roomID, stay)
}

func (r *AvailabilityReadStore) DiningRoomUsage(ctx context.Context, date time.Time, mealType string, slotID *uuid.UUID) ([]*queries.DiningRoomAvailabilityView, error) {
	args := sqlbuilder.NewArgs()
	join := sqlbuilder.NewWhere(args).
		And("rb.dining_room_id = dr.id").
		And("rb.booking_date = ?", booking.Day(date)).
		And("rb.meal_type = ?", mealType).
		AndIf(slotID != nil, "rb.time_slot = (SELECT start_time FROM time_slots WHERE id = ?)", slotID).
		And(repository.DiningActiveCondition(args))

	query := `SELECT ` + diningRoomColumns + `, COALESCE(SUM(rb.guest_count), 0)
		FROM dining_rooms dr
		LEFT JOIN restaurant_bookings rb ON ` + join.Conditions() + `
		WHERE dr.is_available
		GROUP BY dr.id
		ORDER BY dr.capacity ASC, dr.name ASC`

	rows, err := r.db.Query(ctx, query, args.Values()...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load dining room usage", err)
	}
	rooms, err := collect(rows, func(row pgx.Row) (*queries.DiningRoomAvailabilityView, error) {
		var v queries.DiningRoomAvailabilityView
		return &v, scanDiningRoomInto(row, &v.DiningRoomView, &v.BookedGuests)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan dining room usage", err)
	}
	return rooms, nil
}

func (r *AvailabilityReadStore) SlotUsage(ctx context.Context, date time.Time, mealType string) ([]*queries.SlotAvailabilityView, error) {
	args := sqlbuilder.NewArgs(mealType, booking.Day(date), capacity.StatusStrings(capacity.ActiveDiningStatuses))
	query := `SELECT ` + timeSlotColumns + `, COALESCE(SUM(rb.guest_count), 0)
		FROM time_slots ts
		LEFT JOIN restaurant_bookings rb
			ON rb.time_slot_id = ts.id AND rb.booking_date = $2 AND rb.status = ANY($3)
		WHERE ts.meal_type = $1 AND ts.is_active
		GROUP BY ts.id
		ORDER BY ts.start_time ASC`

	rows, err := r.db.Query(ctx, query, args.Values()...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load time slot usage", err)
	}
	slots, err := collect(rows, func(row pgx.Row) (*queries.SlotAvailabilityView, error) {
		var v queries.SlotAvailabilityView
		return &v, scanTimeSlotInto(row, &v.TimeSlotView, &v.BookedGuests)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan time slot usage", err)
	}
	return slots, nil
}
