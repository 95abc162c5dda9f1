package repository

import (
	"context"

	"booking-engine/internal/domain/dining"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/infra/sqlbuilder"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type RestaurantBookingRepository struct{}

func NewRestaurantBookingRepository() *RestaurantBookingRepository {
	return &RestaurantBookingRepository{}
}

// time_slot is copied from the slot row so the dining ledger can match on
// (date, slot start) without a join.
const insertRestaurantBookingSQL = `
INSERT INTO restaurant_bookings
    (id, user_id, guest_name, guest_phone, booking_date, meal_type, time_slot_id, time_slot,
     dining_room_id, package_id, guest_count, status, total_price, special_requests, created_at, updated_at)
SELECT $1, $2, $3, $4, $5, $6, ts.id, ts.start_time, $8, $9, $10, $11, $12, $13, $14, $14
FROM time_slots ts
WHERE ts.id = $7`

func (r *RestaurantBookingRepository) Create(ctx context.Context, tx db.DBTX, b *dining.RestaurantBooking) error {
	tag, err := tx.Exec(ctx, insertRestaurantBookingSQL,
		b.ID(),
		b.UserID(),
		b.Contact().NamePtr(),
		b.Contact().PhonePtr(),
		b.Date(),
		b.MealType().String(),
		b.TimeSlotID(),
		b.DiningRoomID(),
		b.PackageID(),
		b.GuestCount().Int(),
		b.Status().String(),
		pgconv.CentsToNumeric(b.TotalPrice().Cents()),
		b.SpecialRequests().Ptr(),
		b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create restaurant booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("time slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RestaurantBookingRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, patch shared.RestaurantBookingPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	args := sqlbuilder.NewArgs()
	set := sqlbuilder.NewSet(args)
	if patch.Status != nil {
		set.Add("status", patch.Status.String())
	}
	if patch.SpecialRequests != nil {
		set.Add("special_requests", *patch.SpecialRequests)
	}
	set.Raw("updated_at = NOW()")
	query := "UPDATE restaurant_bookings " + set.SQL() + " WHERE id = " + args.Bind(id)

	tag, err := tx.Exec(ctx, query, args.Values()...)
	if err != nil {
		return infra.WrapRepoErr("failed to update restaurant booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("restaurant booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RestaurantBookingRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM restaurant_bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete restaurant booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("restaurant booking not found", nil, infra.KindNotFound)
	}
	return nil
}
