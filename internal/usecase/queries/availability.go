package queries

import (
	"context"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/capacity"
	"booking-engine/internal/domain/lodging"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityReadStore returns raw usage figures. Deciding what is available
// stays in the capacity package.
type AvailabilityReadStore interface {
	// SearchRooms returns rooms in status available with no active overlapping booking,
	// ordered by base price then insertion order.
	SearchRooms(ctx context.Context, roomTypeID *uuid.UUID, stay booking.StayWindow) ([]*RoomView, error)
	FindRoom(ctx context.Context, id uuid.UUID) (*RoomView, error)
	CountOverlapping(ctx context.Context, roomID uuid.UUID, stay booking.StayWindow) (int, error)
	// DiningRoomUsage returns open dining rooms with BookedGuests set for the
	// date and meal, narrowed to one slot start when slotID is given.
	DiningRoomUsage(ctx context.Context, date time.Time, mealType string, slotID *uuid.UUID) ([]*DiningRoomAvailabilityView, error)
	// SlotUsage returns active slots of a meal with BookedGuests set for the date.
	SlotUsage(ctx context.Context, date time.Time, mealType string) ([]*SlotAvailabilityView, error)
}

type RoomSearchInput struct {
	RoomTypeID string
	CheckIn    string
	CheckOut   string
}

type DiningAvailabilityInput struct {
	Date       string
	MealType   string
	TimeSlotID string
}

type AvailabilityQueries interface {
	SearchRooms(ctx context.Context, in RoomSearchInput) ([]*RoomView, error)
	CheckRoom(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string) (*RoomAvailabilityView, error)
	DiningRooms(ctx context.Context, in DiningAvailabilityInput) ([]*DiningRoomAvailabilityView, error)
	RestaurantSlots(ctx context.Context, date, mealType string) ([]*SlotAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	readStore AvailabilityReadStore
}

func NewAvailabilityQueries(readStore AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{readStore: readStore}
}

func parseStay(v *booking.Validator, checkIn, checkOut string) (booking.StayWindow, bool) {
	in, inErr := booking.ParseDate(checkIn)
	out, outErr := booking.ParseDate(checkOut)
	okIn := v.Check("check_in", inErr)
	okOut := v.Check("check_out", outErr)
	if !okIn || !okOut {
		return booking.StayWindow{}, false
	}
	stay, err := booking.NewStayWindow(in, out)
	if !v.Check("check_out", err) {
		return booking.StayWindow{}, false
	}
	return stay, true
}

func (q *availabilityQueriesImpl) SearchRooms(ctx context.Context, in RoomSearchInput) ([]*RoomView, error) {
	v := &booking.Validator{}
	typeID := optionalUUID(v, "room_type_id", in.RoomTypeID)
	stay, _ := parseStay(v, in.CheckIn, in.CheckOut)
	if err := v.Err(); err != nil {
		return nil, err
	}

	rooms, err := q.readStore.SearchRooms(ctx, typeID, stay)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return rooms, nil
}

func (q *availabilityQueriesImpl) CheckRoom(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string) (*RoomAvailabilityView, error) {
	v := &booking.Validator{}
	stay, _ := parseStay(v, checkIn, checkOut)
	if err := v.Err(); err != nil {
		return nil, err
	}

	room, err := q.readStore.FindRoom(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(lodging.ErrRoomNotFound, errs.ErrNotFound)
		}
		return nil, shared.Classify(err)
	}
	overlapping, err := q.readStore.CountOverlapping(ctx, roomID, stay)
	if err != nil {
		return nil, shared.Classify(err)
	}

	d := capacity.EvaluateRoom(room.Status == string(lodging.RoomAvailable), overlapping)
	return &RoomAvailabilityView{
		RoomID:    roomID,
		CheckIn:   stay.CheckIn().Format(booking.DateLayout),
		CheckOut:  stay.CheckOut().Format(booking.DateLayout),
		Available: d.Available,
		Reason:    string(d.Reason),
	}, nil
}

func (q *availabilityQueriesImpl) DiningRooms(ctx context.Context, in DiningAvailabilityInput) ([]*DiningRoomAvailabilityView, error) {
	v := &booking.Validator{}
	date, dateErr := booking.ParseDate(in.Date)
	v.Check("date", dateErr)
	meal, mealErr := booking.ParseMealType(in.MealType)
	v.Check("meal_type", mealErr)
	slotID := optionalUUID(v, "time_slot_id", in.TimeSlotID)
	if err := v.Err(); err != nil {
		return nil, err
	}

	rooms, err := q.readStore.DiningRoomUsage(ctx, date, meal.String(), slotID)
	if err != nil {
		return nil, shared.Classify(err)
	}

	out := make([]*DiningRoomAvailabilityView, 0, len(rooms))
	for _, r := range rooms {
		usage := capacity.Usage{Capacity: r.Capacity, Consumed: r.BookedGuests}
		r.AvailableCapacity = usage.Remaining()
		if r.IsAvailable && r.AvailableCapacity > 0 {
			out = append(out, r)
		}
	}
	return out, nil
}

func (q *availabilityQueriesImpl) RestaurantSlots(ctx context.Context, date, mealType string) ([]*SlotAvailabilityView, error) {
	v := &booking.Validator{}
	d, dateErr := booking.ParseDate(date)
	v.Check("date", dateErr)
	meal, mealErr := booking.ParseMealType(mealType)
	v.Check("meal_type", mealErr)
	if err := v.Err(); err != nil {
		return nil, err
	}

	slots, err := q.readStore.SlotUsage(ctx, d, meal.String())
	if err != nil {
		return nil, shared.Classify(err)
	}
	for _, s := range slots {
		usage := capacity.Usage{Capacity: s.MaxCapacity, Consumed: s.BookedGuests}
		s.AvailableCapacity = usage.Remaining()
		s.IsAvailable = s.IsActive && s.AvailableCapacity > 0
	}
	return slots, nil
}
