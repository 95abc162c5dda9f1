package repository

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/dining"
	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads serves catalog lookups needed while validating a command.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(db db.DBTX) *CommandReads {
	return &CommandReads{db: db}
}

func (r *CommandReads) MealPackageByID(ctx context.Context, id uuid.UUID) (*dining.MealPackage, error) {
	var (
		pkg   dining.MealPackage
		price pgtype.Numeric
		meal  string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, price, meal_type, max_guests, is_active FROM meal_packages WHERE id = $1`, id,
	).Scan(&pkg.ID, &pkg.Name, &pkg.Description, &price, &meal, &pkg.MaxGuests, &pkg.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("meal package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find meal package", err)
	}
	cents, err := pgconv.NumericToCents(price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid meal package price", err)
	}
	pkg.Price = pricing.FromCents(cents)
	pkg.MealType = booking.MealType(meal)
	return &pkg, nil
}
