//go:build unit

package capacity_test

import (
	"testing"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/capacity"
	"booking-engine/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, _ := time.Parse(booking.DateLayout, s)
	return d
}

func window(t *testing.T, in, out string) booking.StayWindow {
	t.Helper()
	w, err := booking.NewStayWindow(day(in), day(out))
	require.NoError(t, err)
	return w
}

func TestEvaluateRoom(t *testing.T) {
	t.Run("空室", func(t *testing.T) {
		d := capacity.EvaluateRoom(true, 0)
		assert.True(t, d.Available)
		assert.NoError(t, d.Err())
	})

	t.Run("予約済み", func(t *testing.T) {
		d := capacity.EvaluateRoom(true, 1)
		require.False(t, d.Available)

		var ce *capacity.ConflictError
		require.ErrorAs(t, d.Err(), &ce)
		assert.Equal(t, capacity.ReasonRoomBooked, ce.Reason)
		assert.True(t, errs.Is(d.Err(), errs.ErrCapacityConflict))
	})

	t.Run("利用不可の部屋は予約有無より優先", func(t *testing.T) {
		d := capacity.EvaluateRoom(false, 1)
		assert.Equal(t, capacity.ReasonResourceUnavailable, d.Reason)
	})

	t.Run("利用不可は容量競合ではなくNotFound扱い", func(t *testing.T) {
		err := capacity.EvaluateRoom(false, 0).Err()

		var ue *capacity.UnavailableError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, capacity.ResourceRoom, ue.Resource)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.False(t, errs.Is(err, errs.ErrCapacityConflict))
	})
}

func TestEvaluateTimeSlot(t *testing.T) {
	// 定員20、予約済み15
	usage := capacity.Usage{Capacity: 20, Consumed: 15}

	cases := []struct {
		name      string
		active    bool
		guests    int
		available bool
		reason    capacity.Reason
	}{
		{name: "残り5名に5名はOK", active: true, guests: 5, available: true},
		{name: "残り5名に6名はNG", active: true, guests: 6, reason: capacity.ReasonInsufficientCapacity},
		{name: "定員超過", active: true, guests: 21, reason: capacity.ReasonExceedsCapacity},
		{name: "停止中の枠", active: false, guests: 1, reason: capacity.ReasonResourceUnavailable},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := capacity.EvaluateTimeSlot(c.active, usage, c.guests)
			assert.Equal(t, c.available, d.Available)
			assert.Equal(t, c.reason, d.Reason)
			assert.Equal(t, capacity.ResourceTimeSlot, d.Resource)
		})
	}

	t.Run("不足時のエラー詳細", func(t *testing.T) {
		err := capacity.EvaluateTimeSlot(true, usage, 6).Err()
		var ce *capacity.ConflictError
		require.ErrorAs(t, err, &ce)

		want := map[string]any{
			"resource":           "time_slot",
			"reason":             "insufficient_capacity",
			"available_capacity": 5,
		}
		if diff := cmp.Diff(want, ce.Detail()); diff != "" {
			t.Errorf("detail mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "time_slot has insufficient capacity (available 5)", ce.Error())
	})

	t.Run("定員超過時は上限を返す", func(t *testing.T) {
		var ce *capacity.ConflictError
		require.ErrorAs(t, capacity.EvaluateTimeSlot(true, usage, 21).Err(), &ce)
		assert.Equal(t, 20, ce.Detail()["max_capacity"])
	})
}

func TestEvaluateRestaurant(t *testing.T) {
	slotOK := capacity.EvaluateTimeSlot(true, capacity.Usage{Capacity: 50, Consumed: 10}, 4)
	slotFull := capacity.EvaluateTimeSlot(true, capacity.Usage{Capacity: 50, Consumed: 48}, 4)
	roomOK := capacity.EvaluateDiningRoom(true, capacity.Usage{Capacity: 10, Consumed: 2}, 4)
	roomFull := capacity.EvaluateDiningRoom(true, capacity.Usage{Capacity: 10, Consumed: 8}, 4)

	t.Run("個室指定なしは時間枠の判定", func(t *testing.T) {
		assert.Equal(t, slotOK, capacity.EvaluateRestaurant(slotOK, nil))
		assert.Equal(t, slotFull, capacity.EvaluateRestaurant(slotFull, nil))
	})

	t.Run("両方不足なら個室の理由を優先", func(t *testing.T) {
		d := capacity.EvaluateRestaurant(slotFull, &roomFull)
		assert.Equal(t, capacity.ResourceDiningRoom, d.Resource)
	})

	t.Run("時間枠のみ不足", func(t *testing.T) {
		d := capacity.EvaluateRestaurant(slotFull, &roomOK)
		assert.Equal(t, capacity.ResourceTimeSlot, d.Resource)
		assert.False(t, d.Available)
	})

	t.Run("両方OKなら残りの少ない方", func(t *testing.T) {
		d := capacity.EvaluateRestaurant(slotOK, &roomOK)
		assert.True(t, d.Available)
		assert.Equal(t, capacity.ResourceDiningRoom, d.Resource)
		assert.Equal(t, 8, d.Remaining)
	})
}

func TestLedger(t *testing.T) {
	requested := window(t, "2025-01-01", "2025-01-03")

	t.Run("キャンセルと完了は部屋を占有しない", func(t *testing.T) {
		records := []capacity.StayRecord{
			{Window: window(t, "2025-01-02", "2025-01-04"), Status: booking.StatusCancelled},
			{Window: window(t, "2025-01-01", "2025-01-02"), Status: booking.StatusCompleted},
			{Window: window(t, "2025-01-03", "2025-01-05"), Status: booking.StatusConfirmed},
		}
		assert.Equal(t, 0, capacity.ConsumedRoom(records, requested))
	})

	t.Run("保留中は占有する", func(t *testing.T) {
		records := []capacity.StayRecord{
			{Window: window(t, "2025-01-02", "2025-01-04"), Status: booking.StatusPending},
		}
		assert.Equal(t, 1, capacity.ConsumedRoom(records, requested))
	})

	t.Run("レストランは人数の合計で完了も含む", func(t *testing.T) {
		w := booking.NewDiningWindow(day("2025-03-01"), "12:00")
		records := []capacity.DiningRecord{
			{Window: w, GuestCount: 4, Status: booking.StatusPending},
			{Window: w, GuestCount: 3, Status: booking.StatusCompleted},
			{Window: w, GuestCount: 5, Status: booking.StatusCancelled},
			{Window: booking.NewDiningWindow(day("2025-03-01"), "13:00"), GuestCount: 6, Status: booking.StatusConfirmed},
		}
		assert.Equal(t, 7, capacity.ConsumedDining(records, w))
	})

	t.Run("残数は負にならない", func(t *testing.T) {
		assert.Equal(t, 0, capacity.Usage{Capacity: 5, Consumed: 7}.Remaining())
	})
}
