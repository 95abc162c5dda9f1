//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/user"
	"booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, _ := time.Parse(booking.DateLayout, s)
	return d
}

func stay(t *testing.T, in, out string) booking.StayWindow {
	t.Helper()
	w, err := booking.NewStayWindow(date(in), date(out))
	require.NoError(t, err)
	return w
}

func TestStayWindow(t *testing.T) {
	t.Run("チェックアウトがチェックイン以前ならNG", func(t *testing.T) {
		_, err := booking.NewStayWindow(date("2025-01-01"), date("2025-01-01"))
		require.ErrorIs(t, err, booking.ErrEmptyStay)

		_, err = booking.NewStayWindow(date("2025-01-03"), date("2025-01-01"))
		require.ErrorIs(t, err, booking.ErrEmptyStay)
	})

	t.Run("泊数", func(t *testing.T) {
		assert.Equal(t, 2, stay(t, "2025-01-01", "2025-01-03").Nights())
		assert.Equal(t, 1, stay(t, "2025-12-31", "2026-01-01").Nights())
	})

	t.Run("時刻は日付に切り捨てられる", func(t *testing.T) {
		w, err := booking.NewStayWindow(
			time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 2, 1, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, 1, w.Nights())
		assert.Equal(t, date("2025-01-01"), w.CheckIn())
	})

	t.Run("重複判定は半開区間", func(t *testing.T) {
		base := stay(t, "2025-01-01", "2025-01-03")
		cases := []struct {
			name     string
			other    booking.StayWindow
			overlaps bool
		}{
			{"同一期間", stay(t, "2025-01-01", "2025-01-03"), true},
			{"チェックアウト日にチェックイン", stay(t, "2025-01-03", "2025-01-05"), false},
			{"チェックイン日にチェックアウト", stay(t, "2024-12-30", "2025-01-01"), false},
			{"一日だけ重なる", stay(t, "2025-01-02", "2025-01-04"), true},
			{"内包", stay(t, "2024-12-01", "2025-02-01"), true},
			{"完全に後", stay(t, "2025-02-01", "2025-02-02"), false},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.overlaps, base.Overlaps(c.other))
				assert.Equal(t, c.overlaps, c.other.Overlaps(base))
			})
		}
	})
}

func TestDiningWindow(t *testing.T) {
	a := booking.NewDiningWindow(date("2025-03-01"), "12:00:00")
	assert.Equal(t, "12:00", a.SlotStart())

	assert.True(t, a.Overlaps(booking.NewDiningWindow(date("2025-03-01"), "12:00")))
	assert.False(t, a.Overlaps(booking.NewDiningWindow(date("2025-03-01"), "13:00")))
	assert.False(t, a.Overlaps(booking.NewDiningWindow(date("2025-03-02"), "12:00")))
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to booking.Status
		ok       bool
	}{
		{booking.StatusPending, booking.StatusConfirmed, true},
		{booking.StatusPending, booking.StatusCancelled, true},
		{booking.StatusPending, booking.StatusCompleted, false},
		{booking.StatusConfirmed, booking.StatusCompleted, true},
		{booking.StatusConfirmed, booking.StatusCancelled, true},
		{booking.StatusConfirmed, booking.StatusPending, false},
		{booking.StatusCancelled, booking.StatusConfirmed, false},
		{booking.StatusCancelled, booking.StatusCancelled, false},
		{booking.StatusCompleted, booking.StatusCancelled, false},
	}
	for _, c := range cases {
		t.Run(string(c.from)+"→"+string(c.to), func(t *testing.T) {
			next, err := c.from.TransitionTo(c.to)
			if c.ok {
				require.NoError(t, err)
				assert.Equal(t, c.to, next)
			} else {
				require.ErrorIs(t, err, booking.ErrInvalidTransition)
				assert.Equal(t, c.from, next)
			}
		})
	}

	t.Run("未知のステータスNG", func(t *testing.T) {
		_, err := booking.ParseStatus("refunded")
		require.ErrorIs(t, err, booking.ErrInvalidStatus)

		_, err = booking.StatusPending.TransitionTo("refunded")
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("終端ステータス", func(t *testing.T) {
		assert.True(t, booking.StatusCancelled.IsTerminal())
		assert.True(t, booking.StatusCompleted.IsTerminal())
		assert.False(t, booking.StatusPending.IsTerminal())
	})
}

func TestActor(t *testing.T) {
	owner := uuid.New()
	customer := booking.Actor{UserID: owner, Role: user.RoleCustomer}
	other := booking.Actor{UserID: uuid.New(), Role: user.RoleCustomer}
	admin := booking.Actor{UserID: uuid.New(), Role: user.RoleAdmin}
	guest := booking.GuestActor()

	t.Run("ステータス変更の権限", func(t *testing.T) {
		cases := []struct {
			name  string
			actor booking.Actor
			next  booking.Status
			errIs error
		}{
			{"管理者は確定できる", admin, booking.StatusConfirmed, nil},
			{"管理者は完了にできる", admin, booking.StatusCompleted, nil},
			{"本人はキャンセルできる", customer, booking.StatusCancelled, nil},
			{"本人でも確定はできない", customer, booking.StatusConfirmed, booking.ErrCancelOnly},
			{"他人はキャンセルできない", other, booking.StatusCancelled, booking.ErrNotOwner},
			{"ゲストは変更できない", guest, booking.StatusCancelled, booking.ErrGuestCannotEdit},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				err := c.actor.AuthorizeStatusChange(&owner, c.next)
				if c.errIs == nil {
					require.NoError(t, err)
					return
				}
				require.ErrorIs(t, err, c.errIs)
				assert.True(t, errs.Is(err, errs.ErrForbidden))
			})
		}
	})

	t.Run("ゲスト予約は本人扱いにならない", func(t *testing.T) {
		err := customer.AuthorizeStatusChange(nil, booking.StatusCancelled)
		require.ErrorIs(t, err, booking.ErrNotOwner)
		assert.False(t, customer.CanView(nil))
		assert.True(t, admin.CanView(nil))
	})

	t.Run("閲覧権限", func(t *testing.T) {
		assert.True(t, customer.CanView(&owner))
		assert.False(t, other.CanView(&owner))
		assert.False(t, guest.CanView(&owner))
		assert.True(t, admin.CanView(&owner))
	})

	t.Run("UserIDPtr", func(t *testing.T) {
		assert.Nil(t, guest.UserIDPtr())
		require.NotNil(t, customer.UserIDPtr())
		assert.Equal(t, owner, *customer.UserIDPtr())
	})
}

func TestValueObjects(t *testing.T) {
	t.Run("日付", func(t *testing.T) {
		d, err := booking.ParseDate(" 2025-01-01 ")
		require.NoError(t, err)
		assert.Equal(t, time.UTC, d.Location())

		_, err = booking.ParseDate("2025/01/01")
		require.ErrorIs(t, err, booking.ErrInvalidDate)
	})

	t.Run("電話番号は11桁", func(t *testing.T) {
		_, err := booking.NewPhone("13800138000")
		require.NoError(t, err)

		for _, bad := range []string{"", "1380013800", "138001380000", "1380013800a"} {
			_, err := booking.NewPhone(bad)
			require.ErrorIs(t, err, booking.ErrInvalidPhone, bad)
		}
	})

	t.Run("人数は正の整数", func(t *testing.T) {
		_, err := booking.NewGuestCount(0)
		require.ErrorIs(t, err, booking.ErrInvalidGuestCount)
		g, err := booking.NewGuestCount(3)
		require.NoError(t, err)
		assert.Equal(t, 3, g.Int())
	})

	t.Run("食事区分", func(t *testing.T) {
		m, err := booking.ParseMealType("dinner")
		require.NoError(t, err)
		assert.Equal(t, booking.MealDinner, m)
		_, err = booking.ParseMealType("brunch")
		require.ErrorIs(t, err, booking.ErrInvalidMealType)
	})

	t.Run("特記事項は1000文字まで", func(t *testing.T) {
		r, err := booking.NewSpecialRequests(strings.Repeat("a", 1000))
		require.NoError(t, err)
		assert.NotNil(t, r.Ptr())

		_, err = booking.NewSpecialRequests(strings.Repeat("a", 1001))
		require.ErrorIs(t, err, booking.ErrSpecialRequestsTooLong)

		empty, err := booking.NewSpecialRequests("  ")
		require.NoError(t, err)
		assert.Nil(t, empty.Ptr())
	})
}

func TestValidateContact(t *testing.T) {
	t.Run("ゲストは氏名と電話番号が必須", func(t *testing.T) {
		var v booking.Validator
		booking.ValidateContact(&v, booking.GuestActor(), "", "")

		var ve *booking.ValidationError
		require.ErrorAs(t, v.Err(), &ve)
		assert.True(t, ve.Has("guest_name"))
		assert.True(t, ve.Has("guest_phone"))
		assert.True(t, errs.Is(v.Err(), errs.ErrValidation))
	})

	t.Run("ログインユーザーは省略できる", func(t *testing.T) {
		var v booking.Validator
		c := booking.ValidateContact(&v, booking.Actor{UserID: uuid.New(), Role: user.RoleCustomer}, "", "")
		require.NoError(t, v.Err())
		assert.Nil(t, c.NamePtr())
		assert.Nil(t, c.PhonePtr())
	})

	t.Run("ログインユーザーでも指定した値は検証される", func(t *testing.T) {
		var v booking.Validator
		booking.ValidateContact(&v, booking.Actor{UserID: uuid.New(), Role: user.RoleCustomer}, "Li Lei", "123")

		var ve *booking.ValidationError
		require.ErrorAs(t, v.Err(), &ve)
		assert.False(t, ve.Has("guest_name"))
		assert.True(t, ve.Has("guest_phone"))
	})
}

func TestLimitError(t *testing.T) {
	err := booking.NewLimitError("guest_count", "exceeds room occupancy", "max_occupancy", 2)

	var ve *booking.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 2, ve.Detail["max_occupancy"])
	assert.Contains(t, err.Error(), "guest_count: exceeds room occupancy")
}
