//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"

	"booking-engine/internal/domain/user"
	"booking-engine/internal/handler/dto/request"
	"booking-engine/internal/usecase/queries"
	"booking-engine/tests/common/authtest"
	"booking-engine/tests/common/dbtest"
	"booking-engine/tests/common/httptest"
	"booking-engine/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const roomBookingsURL = "/api/rooms/bookings"

type roomBookingSuite struct {
	e2e.SharedSuite
	roomID   uuid.UUID
	customer string
	admin    string
}

func TestRoomBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(roomBookingSuite))
}

func (s *roomBookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	s.roomID = dbtest.RoomID(t, s.DB, "D101")
	s.customer = authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))
	s.admin = authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
}

func (s *roomBookingSuite) stay(from, nights int) request.CreateRoomBookingRequest {
	return request.CreateRoomBookingRequest{
		RoomID:     s.roomID.String(),
		CheckIn:    futureDate(from),
		CheckOut:   futureDate(from + nights),
		GuestCount: 2,
	}
}

func (s *roomBookingSuite) create(body request.CreateRoomBookingRequest, token string) *bookingBody {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomBookingsURL, body, token)
	b := decodeCreated(t, w, roomBookingsURL)
	return &b
}

func (s *roomBookingSuite) TestCreate() {
	s.Run("会員が2泊予約すると料金は1泊分の2倍", func() {
		t := s.T()

		b := s.create(s.stay(0, 2), s.customer)
		require.Equal(t, "pending", b.Status)
		require.Equal(t, "1760.00", b.TotalPrice)
	})

	s.Run("重複する宿泊期間は409", func() {
		t := s.T()

		s.create(s.stay(0, 3), s.customer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomBookingsURL, s.stay(2, 2), s.customer)
		httptest.AssertConflict(t, w, "room", "room_already_booked")
	})

	s.Run("チェックアウト日にチェックインする予約は重複しない", func() {
		s.create(s.stay(0, 2), s.customer)
		s.create(s.stay(2, 2), s.customer)
	})

	s.Run("キャンセル済みの予約は部屋を占有しない", func() {
		t := s.T()

		b := s.create(s.stay(0, 2), s.customer)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, roomBookingsURL+"/"+b.ID+"/status",
			request.UpdateStatusRequest{Status: "cancelled"}, s.customer)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		s.create(s.stay(0, 2), s.customer)
	})

	s.Run("入力エラーはまとめて返される", func() {
		t := s.T()

		body := request.CreateRoomBookingRequest{
			RoomID:     "not-a-uuid",
			CheckIn:    futureDate(3),
			CheckOut:   futureDate(1),
			GuestCount: 0,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomBookingsURL, body, s.customer)
		httptest.AssertValidationFields(t, w, "room_id", "check_out", "guest_count")
	})

	s.Run("存在しない部屋は404", func() {
		t := s.T()

		body := s.stay(0, 1)
		body.RoomID = uuid.NewString()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomBookingsURL, body, s.customer)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *roomBookingSuite) TestGuestVerification() {
	const phone = "13900139000"

	s.Run("ゲスト予約には認証コードが必要", func() {
		t := s.T()

		body := s.stay(0, 1)
		body.GuestName = "Li Lei"
		body.GuestPhone = phone
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomBookingsURL, body, "")
		e := httptest.DecodeError(t, w, http.StatusBadRequest)
		require.Contains(t, e.FieldNames(), "verification_code")
	})

	s.Run("認証コードは一度だけ使える", func() {
		t := s.T()

		code := issueCode(t, s.Router, s.Config.Redis.Addr, phone)

		body := s.stay(0, 1)
		body.GuestName = "Li Lei"
		body.GuestPhone = phone
		body.VerificationCode = code
		s.create(body, "")

		again := s.stay(5, 1)
		again.GuestName = "Li Lei"
		again.GuestPhone = phone
		again.VerificationCode = code
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomBookingsURL, again, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("入力エラーの場合はコードを消費しない", func() {
		t := s.T()

		code := issueCode(t, s.Router, s.Config.Redis.Addr, phone)

		bad := s.stay(0, 1)
		bad.GuestPhone = phone
		bad.VerificationCode = code
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomBookingsURL, bad, "")
		e := httptest.DecodeError(t, w, http.StatusBadRequest)
		require.Contains(t, e.FieldNames(), "guest_name")

		bad.GuestName = "Li Lei"
		s.create(bad, "")
	})

	s.Run("満室で断られたコードは空きが出た後の再試行で使える", func() {
		t := s.T()

		blocker := s.create(s.stay(20, 2), s.customer)
		code := issueCode(t, s.Router, s.Config.Redis.Addr, phone)

		body := s.stay(20, 2)
		body.GuestName = "Li Lei"
		body.GuestPhone = phone
		body.VerificationCode = code
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomBookingsURL, body, "")
		httptest.AssertConflict(t, w, "room", "room_already_booked")

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, roomBookingsURL+"/"+blocker.ID+"/status",
			request.UpdateStatusRequest{Status: "cancelled"}, s.admin)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		s.create(body, "")
	})
}

func (s *roomBookingSuite) TestConcurrentCreate() {
	s.Run("同じ部屋への同時予約は1件だけ成功する", func() {
		t := s.T()

		const n = 8
		body := s.stay(10, 2)
		codes := httptest.PerformConcurrently(t, s.Router, n, http.MethodPost, roomBookingsURL,
			func(int) any { return body },
			func(int) string { return s.customer })

		require.Equal(t, 1, httptest.CountStatus(codes, http.StatusCreated), "codes: %v", codes)
		require.Equal(t, n-1, httptest.CountStatus(codes, http.StatusConflict), "codes: %v", codes)

		var active int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM room_bookings WHERE room_id = $1 AND status IN ('pending', 'confirmed')", s.roomID).Scan(&active)
		require.NoError(t, err)
		require.Equal(t, 1, active)
	})

	s.Run("連続する期間の同時予約はどちらも成功する", func() {
		t := s.T()

		// チェックアウト日に次のチェックインが重なっても半開区間なので競合しない
		stays := []request.CreateRoomBookingRequest{s.stay(30, 2), s.stay(32, 2)}
		codes := httptest.PerformConcurrently(t, s.Router, len(stays), http.MethodPost, roomBookingsURL,
			func(i int) any { return stays[i] },
			func(int) string { return s.customer })

		require.Equal(t, len(stays), httptest.CountStatus(codes, http.StatusCreated), "codes: %v", codes)
	})
}

func (s *roomBookingSuite) TestAvailability() {
	s.Run("予約済みの期間は空室なしになる", func() {
		t := s.T()

		s.create(s.stay(0, 2), s.customer)

		path := fmt.Sprintf("/api/rooms/%s/availability?check_in=%s&check_out=%s", s.roomID, futureDate(1), futureDate(3))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		var view queries.RoomAvailabilityView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.False(t, view.Available)
		require.Equal(t, "room_already_booked", view.Reason)

		path = fmt.Sprintf("/api/rooms/%s/availability?check_in=%s&check_out=%s", s.roomID, futureDate(2), futureDate(4))
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.True(t, view.Available)
	})
}

func (s *roomBookingSuite) TestLifecycle() {
	s.Run("管理者が確定し、会員は確定済みの予約をキャンセルできる", func() {
		t := s.T()

		b := s.create(s.stay(0, 2), s.customer)
		url := roomBookingsURL + "/" + b.ID + "/status"

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, request.UpdateStatusRequest{Status: "confirmed"}, s.admin)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url, request.UpdateStatusRequest{Status: "cancelled"}, s.customer)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url, request.UpdateStatusRequest{Status: "confirmed"}, s.admin)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Invalid status transition")
	})

	s.Run("自分の予約一覧には自分の予約だけが含まれる", func() {
		t := s.T()

		other := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleCustomer))
		mine := s.create(s.stay(0, 1), s.customer)
		s.create(s.stay(3, 1), other)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomBookingsURL+"/my", nil, s.customer)
		var page struct {
			Items []bookingBody `json:"items"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Items, 1)
		require.Equal(t, mine.ID, page.Items[0].ID)
	})

	s.Run("予約の削除は管理者のみ", func() {
		t := s.T()

		b := s.create(s.stay(0, 1), s.customer)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, roomBookingsURL+"/"+b.ID, nil, s.customer)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, roomBookingsURL+"/"+b.ID, nil, s.admin)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, roomBookingsURL+"/"+b.ID, nil, s.admin)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
