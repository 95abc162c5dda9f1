package readstore

import (
	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func money(n pgtype.Numeric) (pricing.Money, error) {
	cents, err := pgconv.NumericToCents(n)
	if err != nil {
		return pricing.Money{}, err
	}
	return pricing.FromCents(cents), nil
}

// collect scans every row with scan and closes rows.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()
	out := []*T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

const mealPackageSelect = `
SELECT mp.id, mp.name, mp.description, mp.price, mp.cuisine_id, c.name, mp.meal_type, mp.max_guests, mp.is_active
FROM meal_packages mp
LEFT JOIN cuisines c ON c.id = mp.cuisine_id
`

func scanMealPackage(row pgx.Row) (*queries.MealPackageView, error) {
	var (
		v           queries.MealPackageView
		price       pgtype.Numeric
		cuisineID   pgtype.UUID
		cuisineName pgtype.Text
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Description, &price, &cuisineID, &cuisineName, &v.MealType, &v.MaxGuests, &v.IsActive); err != nil {
		return nil, err
	}
	v.CuisineID = pgconv.UUIDPtrFromPgtype(cuisineID)
	v.CuisineName = pgconv.StringPtrFromPgtype(cuisineName)
	var err error
	if v.Price, err = money(price); err != nil {
		return nil, err
	}
	return &v, nil
}

const cuisineColumns = `c.id, c.name, c.description, c.image_url`

func scanCuisine(row pgx.Row) (*queries.CuisineView, error) {
	var (
		v        queries.CuisineView
		imageURL pgtype.Text
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Description, &imageURL); err != nil {
		return nil, err
	}
	v.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	return &v, nil
}

const roomTypeColumns = `rt.id, rt.name, rt.description, rt.base_price, rt.max_occupancy, rt.amenities, rt.images`

func scanRoomType(row pgx.Row) (*queries.RoomTypeView, error) {
	var (
		v     queries.RoomTypeView
		price pgtype.Numeric
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Description, &price, &v.MaxOccupancy, &v.Amenities, &v.Images); err != nil {
		return nil, err
	}
	var err error
	if v.BasePrice, err = money(price); err != nil {
		return nil, err
	}
	return &v, nil
}

const roomSelect = `
SELECT r.id, r.room_number, r.floor, r.status, ` + roomTypeColumns + `
FROM rooms r
JOIN room_types rt ON rt.id = r.room_type_id
`

func scanRoom(row pgx.Row) (*queries.RoomView, error) {
	var (
		v     queries.RoomView
		price pgtype.Numeric
	)
	err := row.Scan(&v.ID, &v.RoomNumber, &v.Floor, &v.Status,
		&v.RoomType.ID, &v.RoomType.Name, &v.RoomType.Description, &price,
		&v.RoomType.MaxOccupancy, &v.RoomType.Amenities, &v.RoomType.Images)
	if err != nil {
		return nil, err
	}
	if v.RoomType.BasePrice, err = money(price); err != nil {
		return nil, err
	}
	return &v, nil
}

const diningRoomColumns = `dr.id, dr.name, dr.room_type, dr.capacity, dr.description, dr.facilities, dr.images, dr.is_available`

func scanDiningRoomInto(row pgx.Row, v *queries.DiningRoomView, extra ...any) error {
	dest := []any{&v.ID, &v.Name, &v.RoomType, &v.Capacity, &v.Description, &v.Facilities, &v.Images, &v.IsAvailable}
	return row.Scan(append(dest, extra...)...)
}

const timeSlotColumns = `ts.id, ts.meal_type, ts.start_time, ts.end_time, ts.max_capacity, ts.is_active`

func scanTimeSlotInto(row pgx.Row, v *queries.TimeSlotView, extra ...any) error {
	var start, end pgtype.Time
	dest := []any{&v.ID, &v.MealType, &start, &end, &v.MaxCapacity, &v.IsActive}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}
	v.StartTime = pgconv.ClockFromPgtype(start)
	v.EndTime = pgconv.ClockFromPgtype(end)
	return nil
}

func wrapFind(msg string, err error) error {
	if infra.IsNoRows(err) {
		return infra.WrapRepoErr(msg+": not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}
