package queries

import (
	"context"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/dining"
	"booking-engine/internal/domain/lodging"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogReadStore interface {
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
	GetRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	ListRooms(ctx context.Context, roomTypeID *uuid.UUID, status *string) ([]*RoomView, error)
	ListDiningRooms(ctx context.Context) ([]*DiningRoomView, error)
	GetDiningRoom(ctx context.Context, id uuid.UUID) (*DiningRoomView, error)
	ListTimeSlots(ctx context.Context, mealType *string) ([]*TimeSlotView, error)
	ListCuisines(ctx context.Context) ([]*CuisineView, error)
	GetCuisine(ctx context.Context, id uuid.UUID) (*CuisineView, error)
	ListMealPackages(ctx context.Context, mealType *string, cuisineID *uuid.UUID) ([]*MealPackageView, error)
	GetMealPackage(ctx context.Context, id uuid.UUID) (*MealPackageView, error)
}

type CatalogQueries interface {
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
	GetRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	ListRooms(ctx context.Context, roomTypeID, status string) ([]*RoomView, error)
	ListDiningRooms(ctx context.Context) ([]*DiningRoomView, error)
	GetDiningRoom(ctx context.Context, id uuid.UUID) (*DiningRoomView, error)
	ListTimeSlots(ctx context.Context, mealType string) ([]*TimeSlotView, error)
	ListCuisines(ctx context.Context) ([]*CuisineView, error)
	GetCuisine(ctx context.Context, id uuid.UUID) (*CuisineView, error)
	ListMealPackages(ctx context.Context, mealType, cuisineID string) ([]*MealPackageView, error)
	GetMealPackage(ctx context.Context, id uuid.UUID) (*MealPackageView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	types, err := q.readStore.ListRoomTypes(ctx)
	return types, shared.Classify(err)
}

func (q *catalogQueriesImpl) ListRooms(ctx context.Context, roomTypeID, status string) ([]*RoomView, error) {
	v := &booking.Validator{}
	typeID := optionalUUID(v, "room_type_id", roomTypeID)
	var statusFilter *string
	if status != "" {
		if !lodging.RoomStatus(status).IsValid() {
			v.Add("status", "must be one of available, occupied, maintenance")
		}
		statusFilter = &status
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	rooms, err := q.readStore.ListRooms(ctx, typeID, statusFilter)
	return rooms, shared.Classify(err)
}

func (q *catalogQueriesImpl) ListDiningRooms(ctx context.Context) ([]*DiningRoomView, error) {
	rooms, err := q.readStore.ListDiningRooms(ctx)
	return rooms, shared.Classify(err)
}

func (q *catalogQueriesImpl) ListTimeSlots(ctx context.Context, mealType string) ([]*TimeSlotView, error) {
	v := &booking.Validator{}
	meal := optionalMealType(v, mealType)
	if err := v.Err(); err != nil {
		return nil, err
	}
	slots, err := q.readStore.ListTimeSlots(ctx, meal)
	return slots, shared.Classify(err)
}

func (q *catalogQueriesImpl) ListMealPackages(ctx context.Context, mealType, cuisineID string) ([]*MealPackageView, error) {
	v := &booking.Validator{}
	meal := optionalMealType(v, mealType)
	cuisine := optionalUUID(v, "cuisine_id", cuisineID)
	if err := v.Err(); err != nil {
		return nil, err
	}
	pkgs, err := q.readStore.ListMealPackages(ctx, meal, cuisine)
	return pkgs, shared.Classify(err)
}

func (q *catalogQueriesImpl) GetMealPackage(ctx context.Context, id uuid.UUID) (*MealPackageView, error) {
	pkg, err := q.readStore.GetMealPackage(ctx, id)
	if err != nil {
		return nil, classifyFind(err, dining.ErrPackageNotFound)
	}
	return pkg, nil
}

func (q *catalogQueriesImpl) ListCuisines(ctx context.Context) ([]*CuisineView, error) {
	cuisines, err := q.readStore.ListCuisines(ctx)
	return cuisines, shared.Classify(err)
}

func (q *catalogQueriesImpl) GetCuisine(ctx context.Context, id uuid.UUID) (*CuisineView, error) {
	cuisine, err := q.readStore.GetCuisine(ctx, id)
	if err != nil {
		return nil, classifyFind(err, dining.ErrCuisineNotFound)
	}
	return cuisine, nil
}

func (q *catalogQueriesImpl) GetRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error) {
	rt, err := q.readStore.GetRoomType(ctx, id)
	if err != nil {
		return nil, classifyFind(err, lodging.ErrRoomTypeNotFound)
	}
	return rt, nil
}

func (q *catalogQueriesImpl) GetDiningRoom(ctx context.Context, id uuid.UUID) (*DiningRoomView, error) {
	room, err := q.readStore.GetDiningRoom(ctx, id)
	if err != nil {
		return nil, classifyFind(err, dining.ErrDiningRoomNotFound)
	}
	return room, nil
}

// classifyFind reports a missing row as notFound so clients see the domain
// message instead of the driver's.
func classifyFind(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(notFound, errs.ErrNotFound)
	}
	return shared.Classify(err)
}

func optionalUUID(v *booking.Validator, field, s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		v.Add(field, "must be a valid UUID")
		return nil
	}
	return &id
}

func optionalMealType(v *booking.Validator, s string) *string {
	if s == "" {
		return nil
	}
	m, err := booking.ParseMealType(s)
	if !v.Check("meal_type", err) {
		return nil
	}
	out := m.String()
	return &out
}

func optionalDate(v *booking.Validator, field, s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := booking.ParseDate(s)
	if !v.Check(field, err) {
		return nil
	}
	return &d
}
