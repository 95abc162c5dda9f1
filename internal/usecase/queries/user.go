package queries

import (
	"context"

	"github.com/google/uuid"

	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrUserInactive = errs.Mark(errs.New("user inactive"), errs.ErrForbidden)
)

// UserQueries serves the profile of the caller behind an access token.
type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

// UserReadStore is shared with the auth commands; FindByEmail also yields the bcrypt hash.
type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueries struct {
	users UserReadStore
}

func NewUserQueries(users UserReadStore) UserQueries {
	return &userQueries{users: users}
}

// GetCurrentUser refuses accounts deactivated after their token was issued.
func (q *userQueries) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.users.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, errs.Wrapf(err, "load user %s", userID)
	case !view.IsActive:
		return nil, ErrUserInactive
	}
	return view, nil
}
