package repository

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/lodging"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomBookingRepository struct{}

func NewRoomBookingRepository() *RoomBookingRepository {
	return &RoomBookingRepository{}
}

const insertRoomBookingSQL = `
INSERT INTO room_bookings
    (id, room_id, user_id, guest_name, guest_phone, check_in, check_out,
     guest_count, status, total_price, special_requests, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)`

func (r *RoomBookingRepository) Create(ctx context.Context, tx db.DBTX, b *lodging.RoomBooking) error {
	_, err := tx.Exec(ctx, insertRoomBookingSQL,
		b.ID(),
		b.RoomID(),
		b.UserID(),
		b.Contact().NamePtr(),
		b.Contact().PhonePtr(),
		b.Stay().CheckIn(),
		b.Stay().CheckOut(),
		b.GuestCount().Int(),
		b.Status().String(),
		pgconv.CentsToNumeric(b.TotalPrice().Cents()),
		b.SpecialRequests().Ptr(),
		b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create room booking", err)
	}
	return nil
}

func (r *RoomBookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx, `UPDATE room_bookings SET status = $2, updated_at = NOW() WHERE id = $1`, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update room booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomBookingRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM room_bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room booking not found", nil, infra.KindNotFound)
	}
	return nil
}
