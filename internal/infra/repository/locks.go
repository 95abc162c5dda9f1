package repository

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/dining"
	"booking-engine/internal/domain/lodging"
	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ResourceLocker takes row locks that serialize concurrent reservations of
// the same resource. Multi-resource callers lock time slot before dining room.
type ResourceLocker struct{}

func NewResourceLocker() *ResourceLocker {
	return &ResourceLocker{}
}

const lockRoomSQL = `
SELECT r.id, r.room_number, r.floor, r.status,
       rt.id, rt.name, rt.description, rt.base_price, rt.max_occupancy
FROM rooms r
JOIN room_types rt ON rt.id = r.room_type_id
WHERE r.id = $1
FOR UPDATE OF r`

func (l *ResourceLocker) LockRoom(ctx context.Context, tx db.DBTX, id uuid.UUID) (*lodging.Room, error) {
	var (
		room      lodging.Room
		status    string
		basePrice pgtype.Numeric
	)
	err := tx.QueryRow(ctx, lockRoomSQL, id).Scan(
		&room.ID, &room.RoomNumber, &room.Floor, &status,
		&room.Type.ID, &room.Type.Name, &room.Type.Description, &basePrice, &room.Type.MaxOccupancy,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	cents, err := pgconv.NumericToCents(basePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid room base price", err)
	}
	room.Status = lodging.RoomStatus(status)
	room.Type.BasePrice = pricing.FromCents(cents)
	return &room, nil
}

const lockTimeSlotSQL = `
SELECT id, meal_type, start_time, end_time, max_capacity, is_active
FROM time_slots
WHERE id = $1
FOR UPDATE`

func (l *ResourceLocker) LockTimeSlot(ctx context.Context, tx db.DBTX, id uuid.UUID) (*dining.TimeSlot, error) {
	var (
		slot       dining.TimeSlot
		meal       string
		start, end pgtype.Time
	)
	err := tx.QueryRow(ctx, lockTimeSlotSQL, id).Scan(&slot.ID, &meal, &start, &end, &slot.MaxCapacity, &slot.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("time slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock time slot", err)
	}
	slot.MealType = booking.MealType(meal)
	slot.StartTime = pgconv.ClockFromPgtype(start)
	slot.EndTime = pgconv.ClockFromPgtype(end)
	return &slot, nil
}

const lockDiningRoomSQL = `
SELECT id, name, room_type, capacity, description, is_available
FROM dining_rooms
WHERE id = $1
FOR UPDATE`

func (l *ResourceLocker) LockDiningRoom(ctx context.Context, tx db.DBTX, id uuid.UUID) (*dining.DiningRoom, error) {
	var (
		room     dining.DiningRoom
		roomType string
	)
	err := tx.QueryRow(ctx, lockDiningRoomSQL, id).Scan(&room.ID, &room.Name, &roomType, &room.Capacity, &room.Description, &room.IsAvailable)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dining room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock dining room", err)
	}
	room.RoomType = dining.RoomType(roomType)
	return &room, nil
}

func (l *ResourceLocker) LockRoomBooking(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return lockBooking(ctx, tx, `SELECT id, user_id, status, check_in FROM room_bookings WHERE id = $1 FOR UPDATE`, id)
}

func (l *ResourceLocker) LockRestaurantBooking(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return lockBooking(ctx, tx, `SELECT id, user_id, status, booking_date FROM restaurant_bookings WHERE id = $1 FOR UPDATE`, id)
}

func lockBooking(ctx context.Context, tx db.DBTX, query string, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap   shared.BookingSnapshot
		userID pgtype.UUID
		status string
	)
	if err := tx.QueryRow(ctx, query, id).Scan(&snap.ID, &userID, &status, &snap.Date); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	snap.UserID = pgconv.UUIDPtrFromPgtype(userID)
	snap.Status = booking.Status(status)
	return &snap, nil
}
