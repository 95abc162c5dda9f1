package readstore

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/capacity"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/infra/sqlbuilder"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const roomBookingSelect = `
SELECT b.id, b.room_id, r.room_number, rt.name, b.user_id, b.guest_name, b.guest_phone,
       b.check_in, b.check_out, b.guest_count, b.status, b.total_price, b.special_requests,
       b.created_at, b.updated_at
FROM room_bookings b
JOIN rooms r ON r.id = b.room_id
JOIN room_types rt ON rt.id = r.room_type_id
`

func scanRoomBooking(row pgx.Row) (*queries.RoomBookingView, error) {
	var (
		v                 queries.RoomBookingView
		userID            pgtype.UUID
		name, phone, reqs pgtype.Text
		price             pgtype.Numeric
	)
	err := row.Scan(&v.ID, &v.RoomID, &v.RoomNumber, &v.RoomTypeName, &userID, &name, &phone,
		&v.CheckIn, &v.CheckOut, &v.GuestCount, &v.Status, &price, &reqs,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.UserID = pgconv.UUIDPtrFromPgtype(userID)
	v.GuestName = pgconv.StringPtrFromPgtype(name)
	v.GuestPhone = pgconv.StringPtrFromPgtype(phone)
	v.SpecialRequests = pgconv.StringPtrFromPgtype(reqs)
	if v.TotalPrice, err = money(price); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *BookingReadStore) FindRoomBooking(ctx context.Context, id uuid.UUID) (*queries.RoomBookingView, error) {
	v, err := scanRoomBooking(r.db.QueryRow(ctx, roomBookingSelect+`WHERE b.id = $1`, id))
	if err != nil {
		return nil, wrapFind("failed to find room booking", err)
	}
	return v, nil
}

// keyset appends the created_at DESC, id DESC continuation predicate.
func keyset(w *sqlbuilder.Where, after *queries.KeysetAfter) {
	if after == nil {
		return
	}
	w.And("(b.created_at, b.id) < (?, ?)", after.CreatedAt, after.ID)
}

func (r *BookingReadStore) ListRoomBookings(ctx context.Context, f queries.RoomBookingFilter) ([]*queries.RoomBookingView, error) {
	args := sqlbuilder.NewArgs()
	where := sqlbuilder.NewWhere(args).
		AndIf(f.UserID != nil, "b.user_id = ?", f.UserID).
		AndIf(f.Status != nil, "b.status = ?", f.Status).
		AndIf(f.StartDate != nil, "b.check_in >= ?", f.StartDate).
		AndIf(f.EndDate != nil, "b.check_out <= ?", f.EndDate)
	keyset(where, f.After)

	query := roomBookingSelect + where.SQL() + ` ORDER BY b.created_at DESC, b.id DESC LIMIT ` + args.Bind(f.Limit)
	rows, err := r.db.Query(ctx, query, args.Values()...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room bookings", err)
	}
	list, err := collect(rows, scanRoomBooking)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan room bookings", err)
	}
	return list, nil
}

const restaurantBookingSelect = `
SELECT b.id, b.user_id, b.guest_name, b.guest_phone, b.booking_date, b.meal_type,
       b.time_slot_id, b.time_slot, b.dining_room_id, dr.name, b.package_id, mp.name,
       b.guest_count, b.status, b.total_price, b.special_requests, b.created_at, b.updated_at
FROM restaurant_bookings b
LEFT JOIN dining_rooms dr ON dr.id = b.dining_room_id
LEFT JOIN meal_packages mp ON mp.id = b.package_id
`

func scanRestaurantBooking(row pgx.Row) (*queries.RestaurantBookingView, error) {
	var (
		v                     queries.RestaurantBookingView
		userID, roomID, pkgID pgtype.UUID
		name, phone, reqs     pgtype.Text
		roomName, pkgName     pgtype.Text
		slot                  pgtype.Time
		price                 pgtype.Numeric
	)
	err := row.Scan(&v.ID, &userID, &name, &phone, &v.BookingDate, &v.MealType,
		&v.TimeSlotID, &slot, &roomID, &roomName, &pkgID, &pkgName,
		&v.GuestCount, &v.Status, &price, &reqs, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.UserID = pgconv.UUIDPtrFromPgtype(userID)
	v.GuestName = pgconv.StringPtrFromPgtype(name)
	v.GuestPhone = pgconv.StringPtrFromPgtype(phone)
	v.TimeSlot = pgconv.ClockFromPgtype(slot)
	v.DiningRoomID = pgconv.UUIDPtrFromPgtype(roomID)
	v.DiningRoomName = pgconv.StringPtrFromPgtype(roomName)
	v.PackageID = pgconv.UUIDPtrFromPgtype(pkgID)
	v.PackageName = pgconv.StringPtrFromPgtype(pkgName)
	v.SpecialRequests = pgconv.StringPtrFromPgtype(reqs)
	if v.TotalPrice, err = money(price); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *BookingReadStore) FindRestaurantBooking(ctx context.Context, id uuid.UUID) (*queries.RestaurantBookingView, error) {
	v, err := scanRestaurantBooking(r.db.QueryRow(ctx, restaurantBookingSelect+`WHERE b.id = $1`, id))
	if err != nil {
		return nil, wrapFind("failed to find restaurant booking", err)
	}
	return v, nil
}

func (r *BookingReadStore) ListRestaurantBookings(ctx context.Context, f queries.RestaurantBookingFilter) ([]*queries.RestaurantBookingView, error) {
	args := sqlbuilder.NewArgs()
	where := sqlbuilder.NewWhere(args).
		AndIf(f.UserID != nil, "b.user_id = ?", f.UserID).
		AndIf(f.Phone != nil, "b.guest_phone = ?", f.Phone).
		AndIf(f.Status != nil, "b.status = ?", f.Status).
		AndIf(f.Date != nil, "b.booking_date = ?", f.Date).
		AndIf(f.MealType != nil, "b.meal_type = ?", f.MealType)
	keyset(where, f.After)

	query := restaurantBookingSelect + where.SQL() + ` ORDER BY b.created_at DESC, b.id DESC LIMIT ` + args.Bind(f.Limit)
	rows, err := r.db.Query(ctx, query, args.Values()...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurant bookings", err)
	}
	list, err := collect(rows, scanRestaurantBooking)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan restaurant bookings", err)
	}
	return list, nil
}

// DiningRoomStats counts confirmed and completed bookings only.
func (r *BookingReadStore) DiningRoomStats(ctx context.Context, diningRoomID uuid.UUID) (*queries.DiningRoomStatsView, error) {
	counted := capacity.StatusStrings([]booking.Status{booking.StatusConfirmed, booking.StatusCompleted})

	v := queries.DiningRoomStatsView{DiningRoomID: diningRoomID}
	var avg pgtype.Float8
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(b.id), COALESCE(SUM(b.guest_count), 0), AVG(b.guest_count)::float8
		FROM dining_rooms dr
		LEFT JOIN restaurant_bookings b ON b.dining_room_id = dr.id AND b.status = ANY($2)
		WHERE dr.id = $1
		GROUP BY dr.id`, diningRoomID, counted,
	).Scan(&v.BookingCount, &v.TotalGuests, &avg)
	if err != nil {
		return nil, wrapFind("failed to compute dining room statistics", err)
	}
	if avg.Valid {
		v.AverageGuests = avg.Float64
	}
	return &v, nil
}
