package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{
		db: db,
	}
}

const userSelect = `SELECT id, email, full_name, phone, role, is_active, password_hash FROM users `

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, _, err := r.find(ctx, userSelect+`WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	return r.find(ctx, userSelect+`WHERE email = $1`, email)
}

func (r *UserReadStore) find(ctx context.Context, query string, arg any) (*queries.AuthorizedUserView, string, error) {
	var (
		view  queries.AuthorizedUserView
		phone pgtype.Text
		hash  string
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(&view.ID, &view.Email, &view.FullName, &phone, &view.Role, &view.IsActive, &hash)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user", err)
	}
	view.Phone = pgconv.StringPtrFromPgtype(phone)
	return &view, hash, nil
}
