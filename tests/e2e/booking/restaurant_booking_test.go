//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"

	"booking-engine/internal/domain/user"
	"booking-engine/internal/handler/dto/request"
	"booking-engine/internal/pkg/patch"
	"booking-engine/internal/usecase/queries"
	"booking-engine/tests/common/authtest"
	"booking-engine/tests/common/dbtest"
	"booking-engine/tests/common/httptest"
	"booking-engine/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const restaurantBookingsURL = "/api/restaurant/bookings"

type restaurantBookingSuite struct {
	e2e.SharedSuite
	slotID   uuid.UUID
	roomID   uuid.UUID
	customer string
	admin    string
}

func TestRestaurantBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(restaurantBookingSuite))
}

func (s *restaurantBookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	s.slotID = dbtest.TimeSlotID(t, s.DB, "lunch", "11:30")
	s.roomID = dbtest.DiningRoomID(t, s.DB, "Bamboo Room")
	s.customer = authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))
	s.admin = authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
}

func (s *restaurantBookingSuite) lunch(guests int, inRoom bool) request.CreateRestaurantBookingRequest {
	body := request.CreateRestaurantBookingRequest{
		Date:       futureDate(0),
		MealType:   "lunch",
		TimeSlotID: s.slotID.String(),
		GuestCount: guests,
		TotalPrice: "188.00",
	}
	if inRoom {
		body.DiningRoomID = s.roomID.String()
	}
	return body
}

func (s *restaurantBookingSuite) create(body request.CreateRestaurantBookingRequest, token string) bookingBody {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, restaurantBookingsURL, body, token)
	return decodeCreated(t, w, restaurantBookingsURL)
}

func (s *restaurantBookingSuite) update(id string, body request.UpdateRestaurantBookingRequest, token string) int {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPut, restaurantBookingsURL+"/"+id, body, token).Code
}

func (s *restaurantBookingSuite) TestCreate() {
	s.Run("個室の定員内なら予約できる", func() {
		t := s.T()

		b := s.create(s.lunch(6, true), s.customer)
		require.Equal(t, "pending", b.Status)
		require.Equal(t, 6, b.GuestCount)
		require.Equal(t, "188.00", b.TotalPrice)
	})

	s.Run("個室の残席を超えると409で残り人数を返す", func() {
		t := s.T()

		s.create(s.lunch(6, true), s.customer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, restaurantBookingsURL, s.lunch(5, true), s.customer)
		detail := httptest.AssertConflict(t, w, "dining_room", "insufficient_capacity")
		require.EqualValues(t, 4, detail["available_capacity"])

		s.create(s.lunch(4, true), s.customer)
	})

	s.Run("個室の定員そのものを超える人数は409", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, restaurantBookingsURL, s.lunch(11, true), s.customer)
		detail := httptest.AssertConflict(t, w, "dining_room", "exceeds_capacity")
		require.EqualValues(t, 10, detail["max_capacity"])
	})

	s.Run("時間帯の定員を超えると409", func() {
		t := s.T()

		// lunch 11:30 seats 50
		for range 4 {
			s.create(s.lunch(12, false), s.customer)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, restaurantBookingsURL, s.lunch(3, false), s.customer)
		detail := httptest.AssertConflict(t, w, "time_slot", "insufficient_capacity")
		require.EqualValues(t, 2, detail["available_capacity"])

		s.create(s.lunch(2, false), s.customer)
	})

	s.Run("セットメニューの最大人数を超えると400", func() {
		t := s.T()

		body := s.lunch(5, false)
		body.PackageID = dbtest.PackageID(t, s.DB, "French Lunch Set").String()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, restaurantBookingsURL, body, s.customer)
		e := httptest.DecodeError(t, w, http.StatusBadRequest)
		require.Contains(t, e.FieldNames(), "guest_count")
	})

	s.Run("食事区分と時間帯が一致しないと400", func() {
		t := s.T()

		body := s.lunch(2, false)
		body.MealType = "dinner"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, restaurantBookingsURL, body, s.customer)
		e := httptest.DecodeError(t, w, http.StatusBadRequest)
		require.Contains(t, e.FieldNames(), "time_slot_id")
	})

	s.Run("ゲストは認証コード付きで予約できる", func() {
		const phone = "13700137000"
		t := s.T()

		body := s.lunch(2, true)
		body.GuestName = "Han Meimei"
		body.GuestPhone = phone
		body.VerificationCode = issueCode(t, s.Router, s.Config.Redis.Addr, phone)
		s.create(body, "")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, restaurantBookingsURL+"?phone="+phone, nil, s.admin)
		var page struct {
			Items []bookingBody `json:"items"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Items, 1)
	})
}

func (s *restaurantBookingSuite) TestCancellation() {
	s.Run("キャンセルすると席が解放される", func() {
		t := s.T()

		b := s.create(s.lunch(8, true), s.customer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, restaurantBookingsURL, s.lunch(4, true), s.customer)
		require.Equal(t, http.StatusConflict, w.Code)

		require.Equal(t, http.StatusNoContent, s.update(b.ID, request.UpdateRestaurantBookingRequest{Status: patch.Set("cancelled")}, s.customer))

		s.create(s.lunch(4, true), s.customer)
	})

	s.Run("完了した予約は席を消費し続ける", func() {
		t := s.T()

		b := s.create(s.lunch(8, true), s.customer)
		require.Equal(t, http.StatusNoContent, s.update(b.ID, request.UpdateRestaurantBookingRequest{Status: patch.Set("confirmed")}, s.admin))
		require.Equal(t, http.StatusNoContent, s.update(b.ID, request.UpdateRestaurantBookingRequest{Status: patch.Set("completed")}, s.admin))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, restaurantBookingsURL, s.lunch(4, true), s.customer)
		require.Equal(t, http.StatusConflict, w.Code)

		require.Equal(t, http.StatusConflict, s.update(b.ID, request.UpdateRestaurantBookingRequest{Status: patch.Set("cancelled")}, s.admin))
	})

	s.Run("他人の予約は変更できない", func() {
		t := s.T()

		b := s.create(s.lunch(2, false), s.customer)
		other := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleCustomer))

		require.Equal(t, http.StatusForbidden, s.update(b.ID, request.UpdateRestaurantBookingRequest{SpecialRequests: patch.Set("window seat")}, other))
		require.Equal(t, http.StatusNoContent, s.update(b.ID, request.UpdateRestaurantBookingRequest{SpecialRequests: patch.Set("window seat")}, s.customer))
	})
}

func (s *restaurantBookingSuite) TestConcurrentCreate() {
	s.Run("同時予約でも個室の定員を超えない", func() {
		t := s.T()

		const n = 10
		body := s.lunch(3, true)
		codes := httptest.PerformConcurrently(t, s.Router, n, http.MethodPost, restaurantBookingsURL,
			func(int) any { return body },
			func(int) string { return s.customer })

		require.Equal(t, 3, httptest.CountStatus(codes, http.StatusCreated), "codes: %v", codes)
		require.Equal(t, n-3, httptest.CountStatus(codes, http.StatusConflict), "codes: %v", codes)

		var guests int
		err := s.DB.QueryRow(t.Context(),
			"SELECT COALESCE(SUM(guest_count), 0) FROM restaurant_bookings WHERE dining_room_id = $1 AND status <> 'cancelled'", s.roomID).Scan(&guests)
		require.NoError(t, err)
		require.Equal(t, 9, guests)
	})

	s.Run("合計が定員内の同時予約はすべて成功する", func() {
		t := s.T()

		// 定員10の個室に4名と5名
		sizes := []int{4, 5}
		codes := httptest.PerformConcurrently(t, s.Router, len(sizes), http.MethodPost, restaurantBookingsURL,
			func(i int) any { return s.lunch(sizes[i], true) },
			func(int) string { return s.customer })

		require.Equal(t, len(sizes), httptest.CountStatus(codes, http.StatusCreated), "codes: %v", codes)

		var guests int
		err := s.DB.QueryRow(t.Context(),
			"SELECT COALESCE(SUM(guest_count), 0) FROM restaurant_bookings WHERE dining_room_id = $1 AND status <> 'cancelled'", s.roomID).Scan(&guests)
		require.NoError(t, err)
		require.Equal(t, 9, guests)
	})
}

func (s *restaurantBookingSuite) TestAvailability() {
	s.Run("予約済みの人数が空き状況に反映される", func() {
		t := s.T()

		s.create(s.lunch(6, true), s.customer)

		path := fmt.Sprintf("/api/dining-rooms/availability?date=%s&meal_type=lunch&time_slot_id=%s", futureDate(0), s.slotID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		var rooms []queries.DiningRoomAvailabilityView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rooms)

		var found bool
		for _, r := range rooms {
			if r.ID == s.roomID {
				found = true
				require.Equal(t, 6, r.BookedGuests)
				require.Equal(t, 4, r.AvailableCapacity)
			}
		}
		require.True(t, found, "Bamboo Room missing from availability")
	})

	s.Run("統計は確定済みと完了済みのみを集計する", func() {
		t := s.T()

		confirmed := s.create(s.lunch(4, true), s.customer)
		s.create(s.lunch(2, true), s.customer)
		require.Equal(t, http.StatusNoContent, s.update(confirmed.ID, request.UpdateRestaurantBookingRequest{Status: patch.Set("confirmed")}, s.admin))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/dining-rooms/"+s.roomID.String()+"/statistics", nil, s.admin)
		var stats queries.DiningRoomStatsView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &stats)
		require.Equal(t, 1, stats.BookingCount)
		require.Equal(t, 4, stats.TotalGuests)
	})

	s.Run("予約の削除は管理者のみ", func() {
		t := s.T()

		b := s.create(s.lunch(2, false), s.customer)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, restaurantBookingsURL+"/"+b.ID, nil, s.customer)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, restaurantBookingsURL+"/"+b.ID, nil, s.admin)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})
}
