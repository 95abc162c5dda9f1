//go:build unit

package lodging_test

import (
	"testing"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/lodging"
	"booking-engine/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom(t *testing.T) {
	room := lodging.Room{Status: lodging.RoomAvailable, Type: lodging.RoomType{MaxOccupancy: 2}}

	t.Run("定員以内はOK", func(t *testing.T) {
		require.NoError(t, room.CheckOccupancy(2))
	})

	t.Run("定員超過はNG", func(t *testing.T) {
		require.ErrorIs(t, room.CheckOccupancy(3), lodging.ErrTooManyGuests)
	})

	t.Run("予約受付はavailableのみ", func(t *testing.T) {
		assert.True(t, room.AcceptsBookings())
		for _, s := range []lodging.RoomStatus{lodging.RoomOccupied, lodging.RoomMaintenance} {
			r := room
			r.Status = s
			assert.False(t, r.AcceptsBookings(), s)
		}
	})

	t.Run("部屋ステータスの妥当性", func(t *testing.T) {
		assert.True(t, lodging.RoomMaintenance.IsValid())
		assert.False(t, lodging.RoomStatus("closed").IsValid())
	})
}

func TestNewRoomBooking(t *testing.T) {
	now := time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC)
	stay, err := booking.NewStayWindow(
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	guests, _ := booking.NewGuestCount(2)
	roomID := uuid.New()

	b := lodging.NewRoomBooking(roomID, nil, booking.Contact{Name: "Li Lei"}, stay, guests, pricing.FromCents(100000), booking.SpecialRequests{}, now)

	assert.Equal(t, roomID, b.RoomID())
	assert.Nil(t, b.UserID())
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Equal(t, 2, b.Stay().Nights())
	assert.Equal(t, "1000.00", b.TotalPrice().String())
	assert.Equal(t, now, b.UpdatedAt())
}
