package readstore

import (
	"context"

	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/infra/sqlbuilder"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) ListRoomTypes(ctx context.Context) ([]*queries.RoomTypeView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomTypeColumns+` FROM room_types rt ORDER BY rt.base_price ASC, rt.name ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	types, err := collect(rows, scanRoomType)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan room types", err)
	}
	return types, nil
}

func (r *CatalogReadStore) ListRooms(ctx context.Context, roomTypeID *uuid.UUID, status *string) ([]*queries.RoomView, error) {
	args := sqlbuilder.NewArgs()
	where := sqlbuilder.NewWhere(args).
		AndIf(roomTypeID != nil, "r.room_type_id = ?", roomTypeID).
		AndIf(status != nil, "r.status = ?", status)

	rows, err := r.db.Query(ctx, roomSelect+where.SQL()+` ORDER BY r.seq ASC`, args.Values()...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	rooms, err := collect(rows, scanRoom)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan rooms", err)
	}
	return rooms, nil
}

func (r *CatalogReadStore) ListDiningRooms(ctx context.Context) ([]*queries.DiningRoomView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+diningRoomColumns+` FROM dining_rooms dr ORDER BY dr.capacity ASC, dr.name ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dining rooms", err)
	}
	rooms, err := collect(rows, func(row pgx.Row) (*queries.DiningRoomView, error) {
		var v queries.DiningRoomView
		return &v, scanDiningRoomInto(row, &v)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan dining rooms", err)
	}
	return rooms, nil
}

// ListTimeSlots returns active slots only.
func (r *CatalogReadStore) ListTimeSlots(ctx context.Context, mealType *string) ([]*queries.TimeSlotView, error) {
	args := sqlbuilder.NewArgs()
	where := sqlbuilder.NewWhere(args).
		And("ts.is_active").
		AndIf(mealType != nil, "ts.meal_type = ?", mealType)

	rows, err := r.db.Query(ctx, `SELECT `+timeSlotColumns+` FROM time_slots ts `+where.SQL()+` ORDER BY ts.start_time ASC`, args.Values()...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time slots", err)
	}
	slots, err := collect(rows, func(row pgx.Row) (*queries.TimeSlotView, error) {
		var v queries.TimeSlotView
		return &v, scanTimeSlotInto(row, &v)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan time slots", err)
	}
	return slots, nil
}

// ListMealPackages returns active packages only.
func (r *CatalogReadStore) ListMealPackages(ctx context.Context, mealType *string, cuisineID *uuid.UUID) ([]*queries.MealPackageView, error) {
	args := sqlbuilder.NewArgs()
	where := sqlbuilder.NewWhere(args).
		And("mp.is_active").
		AndIf(mealType != nil, "mp.meal_type = ?", mealType).
		AndIf(cuisineID != nil, "mp.cuisine_id = ?", cuisineID)

	rows, err := r.db.Query(ctx, mealPackageSelect+where.SQL()+` ORDER BY mp.price ASC, mp.name ASC`, args.Values()...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meal packages", err)
	}
	pkgs, err := collect(rows, scanMealPackage)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan meal packages", err)
	}
	return pkgs, nil
}

// GetMealPackage returns inactive packages too, so existing bookings can
// still show what they referenced.
func (r *CatalogReadStore) GetMealPackage(ctx context.Context, id uuid.UUID) (*queries.MealPackageView, error) {
	v, err := scanMealPackage(r.db.QueryRow(ctx, mealPackageSelect+`WHERE mp.id = $1`, id))
	if err != nil {
		return nil, wrapFind("failed to find meal package", err)
	}
	return v, nil
}

func (r *CatalogReadStore) ListCuisines(ctx context.Context) ([]*queries.CuisineView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+cuisineColumns+` FROM cuisines c ORDER BY c.name ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cuisines", err)
	}
	cuisines, err := collect(rows, scanCuisine)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan cuisines", err)
	}
	return cuisines, nil
}

func (r *CatalogReadStore) GetCuisine(ctx context.Context, id uuid.UUID) (*queries.CuisineView, error) {
	v, err := scanCuisine(r.db.QueryRow(ctx, `SELECT `+cuisineColumns+` FROM cuisines c WHERE c.id = $1`, id))
	if err != nil {
		return nil, wrapFind("failed to find cuisine", err)
	}
	return v, nil
}

func (r *CatalogReadStore) GetRoomType(ctx context.Context, id uuid.UUID) (*queries.RoomTypeView, error) {
	v, err := scanRoomType(r.db.QueryRow(ctx, `SELECT `+roomTypeColumns+` FROM room_types rt WHERE rt.id = $1`, id))
	if err != nil {
		return nil, wrapFind("failed to find room type", err)
	}
	return v, nil
}

func (r *CatalogReadStore) GetDiningRoom(ctx context.Context, id uuid.UUID) (*queries.DiningRoomView, error) {
	var v queries.DiningRoomView
	row := r.db.QueryRow(ctx, `SELECT `+diningRoomColumns+` FROM dining_rooms dr WHERE dr.id = $1`, id)
	if err := scanDiningRoomInto(row, &v); err != nil {
		return nil, wrapFind("failed to find dining room", err)
	}
	return &v, nil
}
