//go:build unit

package readstore

import (
	"context"
	"math/big"
	"testing"

	"booking-engine/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetMealPackage(t *testing.T) {
	id := uuid.New()
	cuisineID := uuid.New()
	price := pgtype.Numeric{Int: big.NewInt(18800), Exp: -2, Valid: true}

	tests := []struct {
		name        string
		row         fakeRow
		wantCuisine *string
		wantKind    infra.RepositoryErrorKind
	}{
		{
			name: "success - with cuisine",
			row: fakeRow{values: []any{
				id, "French Lunch Set", "3-course lunch menu", price,
				pgtype.UUID{Bytes: cuisineID, Valid: true}, pgtype.Text{String: "French", Valid: true},
				"lunch", 4, true,
			}},
			wantCuisine: ptrTo("French"),
		},
		{
			name: "success - without cuisine",
			row: fakeRow{values: []any{
				id, "House Set", "", price, pgtype.UUID{}, pgtype.Text{}, "lunch", 2, false,
			}},
		},
		{
			name:     "package not found",
			row:      fakeRow{err: pgx.ErrNoRows},
			wantKind: infra.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("QueryRow", mock.Anything, mock.Anything, []interface{}{id}).Return(tt.row)

			view, err := NewCatalogReadStore(db).GetMealPackage(context.Background(), id)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "188.00", view.Price.String())
			assert.Equal(t, tt.wantCuisine, view.CuisineName)
			if tt.wantCuisine == nil {
				assert.Nil(t, view.CuisineID)
			} else {
				assert.Equal(t, &cuisineID, view.CuisineID)
			}
		})
	}
}

func TestGetCatalogEntries_NotFound(t *testing.T) {
	id := uuid.New()
	db := new(MockDBTX)
	db.On("QueryRow", mock.Anything, mock.Anything, []interface{}{id}).Return(fakeRow{err: pgx.ErrNoRows})
	store := NewCatalogReadStore(db)
	ctx := context.Background()

	_, err := store.GetCuisine(ctx, id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound), "cuisine")
	_, err = store.GetRoomType(ctx, id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound), "room type")
	_, err = store.GetDiningRoom(ctx, id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound), "dining room")
}

func ptrTo[T any](v T) *T { return &v }
