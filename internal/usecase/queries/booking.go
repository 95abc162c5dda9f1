package queries

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/dining"
	"booking-engine/internal/domain/lodging"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindRoomBooking(ctx context.Context, id uuid.UUID) (*RoomBookingView, error)
	ListRoomBookings(ctx context.Context, f RoomBookingFilter) ([]*RoomBookingView, error)
	FindRestaurantBooking(ctx context.Context, id uuid.UUID) (*RestaurantBookingView, error)
	ListRestaurantBookings(ctx context.Context, f RestaurantBookingFilter) ([]*RestaurantBookingView, error)
	DiningRoomStats(ctx context.Context, diningRoomID uuid.UUID) (*DiningRoomStatsView, error)
}

type ListParams struct {
	Cursor string
	Limit  int
}

type RoomBookingListInput struct {
	ListParams
	Status    string
	StartDate string
	EndDate   string
}

type RestaurantBookingListInput struct {
	ListParams
	Phone    string
	UserID   string
	Status   string
	Date     string
	MealType string
}

type BookingQueries interface {
	GetRoomBooking(ctx context.Context, actor booking.Actor, id uuid.UUID) (*RoomBookingView, error)
	MyRoomBookings(ctx context.Context, actor booking.Actor, p ListParams) (*Page[*RoomBookingView], error)
	ListRoomBookings(ctx context.Context, in RoomBookingListInput) (*Page[*RoomBookingView], error)
	GetRestaurantBooking(ctx context.Context, actor booking.Actor, id uuid.UUID) (*RestaurantBookingView, error)
	// ListRestaurantBookings returns the actor's own bookings, or applies the
	// full filter set for admins.
	ListRestaurantBookings(ctx context.Context, actor booking.Actor, in RestaurantBookingListInput) (*Page[*RestaurantBookingView], error)
	DiningRoomStatistics(ctx context.Context, diningRoomID uuid.UUID) (*DiningRoomStatsView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetRoomBooking(ctx context.Context, actor booking.Actor, id uuid.UUID) (*RoomBookingView, error) {
	view, err := q.readStore.FindRoomBooking(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(lodging.ErrBookingNotFound, errs.ErrNotFound)
		}
		return nil, shared.Classify(err)
	}
	if !actor.CanView(view.UserID) {
		return nil, booking.ErrNotOwner
	}
	return view, nil
}

func (q *bookingQueriesImpl) MyRoomBookings(ctx context.Context, actor booking.Actor, p ListParams) (*Page[*RoomBookingView], error) {
	if actor.IsGuest() {
		return nil, booking.ErrNotOwner
	}
	v := &booking.Validator{}
	after := decodeKeyset(v, p.Cursor)
	if err := v.Err(); err != nil {
		return nil, err
	}

	userID := actor.UserID
	limit := ValidateLimit(p.Limit)
	rows, err := q.readStore.ListRoomBookings(ctx, RoomBookingFilter{UserID: &userID, After: after, Limit: limit + 1})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return pageOf(rows, limit, func(b *RoomBookingView) KeysetAfter {
		return KeysetAfter{CreatedAt: b.CreatedAt, ID: b.ID}
	}), nil
}

func (q *bookingQueriesImpl) ListRoomBookings(ctx context.Context, in RoomBookingListInput) (*Page[*RoomBookingView], error) {
	v := &booking.Validator{}
	f := RoomBookingFilter{
		Status:    optionalStatus(v, in.Status),
		StartDate: optionalDate(v, "start_date", in.StartDate),
		EndDate:   optionalDate(v, "end_date", in.EndDate),
		After:     decodeKeyset(v, in.Cursor),
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	limit := ValidateLimit(in.Limit)
	f.Limit = limit + 1
	rows, err := q.readStore.ListRoomBookings(ctx, f)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return pageOf(rows, limit, func(b *RoomBookingView) KeysetAfter {
		return KeysetAfter{CreatedAt: b.CreatedAt, ID: b.ID}
	}), nil
}

func (q *bookingQueriesImpl) GetRestaurantBooking(ctx context.Context, actor booking.Actor, id uuid.UUID) (*RestaurantBookingView, error) {
	view, err := q.readStore.FindRestaurantBooking(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(dining.ErrBookingNotFound, errs.ErrNotFound)
		}
		return nil, shared.Classify(err)
	}
	if !actor.CanView(view.UserID) {
		return nil, booking.ErrNotOwner
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListRestaurantBookings(ctx context.Context, actor booking.Actor, in RestaurantBookingListInput) (*Page[*RestaurantBookingView], error) {
	if actor.IsGuest() {
		return nil, booking.ErrNotOwner
	}

	v := &booking.Validator{}
	f := RestaurantBookingFilter{After: decodeKeyset(v, in.Cursor)}
	if actor.IsAdmin() {
		f.UserID = optionalUUID(v, "user_id", in.UserID)
		f.Status = optionalStatus(v, in.Status)
		f.Date = optionalDate(v, "date", in.Date)
		f.MealType = optionalMealType(v, in.MealType)
		if in.Phone != "" {
			phone := in.Phone
			f.Phone = &phone
		}
	} else {
		userID := actor.UserID
		f.UserID = &userID
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	limit := ValidateLimit(in.Limit)
	f.Limit = limit + 1
	rows, err := q.readStore.ListRestaurantBookings(ctx, f)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return pageOf(rows, limit, func(b *RestaurantBookingView) KeysetAfter {
		return KeysetAfter{CreatedAt: b.CreatedAt, ID: b.ID}
	}), nil
}

func (q *bookingQueriesImpl) DiningRoomStatistics(ctx context.Context, diningRoomID uuid.UUID) (*DiningRoomStatsView, error) {
	stats, err := q.readStore.DiningRoomStats(ctx, diningRoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(dining.ErrDiningRoomNotFound, errs.ErrNotFound)
		}
		return nil, shared.Classify(err)
	}
	return stats, nil
}

func optionalStatus(v *booking.Validator, s string) *string {
	if s == "" {
		return nil
	}
	st, err := booking.ParseStatus(s)
	if !v.Check("status", err) {
		return nil
	}
	out := st.String()
	return &out
}

func decodeKeyset(v *booking.Validator, cursor string) *KeysetAfter {
	if cursor == "" {
		return nil
	}
	t, id, err := DecodeAfterCursor(cursor)
	if err != nil {
		v.Add("cursor", "is invalid")
		return nil
	}
	return &KeysetAfter{CreatedAt: t, ID: id}
}

// pageOf trims the lookahead row fetched past limit and turns it into a cursor.
func pageOf[T any](rows []T, limit int, key func(T) KeysetAfter) *Page[T] {
	page := &Page[T]{Items: rows}
	if len(rows) > limit {
		page.Items = rows[:limit]
		last := key(page.Items[limit-1])
		page.NextCursor = EncodeAfterCursor(last.CreatedAt, last.ID)
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	return page
}
