//go:build e2e

package booking_test

import (
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"booking-engine/internal/handler/dto/request"
	"booking-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const dateLayout = "2006-01-02"

// futureDate keeps stays a month ahead so they never straddle today.
func futureDate(days int) string {
	return time.Now().AddDate(0, 0, 30+days).Format(dateLayout)
}

type bookingBody struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	GuestCount int    `json:"guest_count"`
	TotalPrice string `json:"total_price"`
}

// decodeCreated requires a 201 whose Location points at the returned booking.
func decodeCreated(t *testing.T, w *nethttptest.ResponseRecorder, collection string) bookingBody {
	t.Helper()
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var b bookingBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	require.Equal(t, b.ID, httptest.AssertLocation(t, w, collection+"/"))
	return b
}

// issueCode runs the send-code endpoint and reads the stored code back from Redis.
func issueCode(t *testing.T, router *gin.Engine, addr, phone string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/verification-codes",
		request.SendVerificationCodeRequest{Phone: phone}, "")
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()
	code, err := rdb.Get(t.Context(), "verify:phone:"+phone).Result()
	require.NoError(t, err)
	require.Len(t, code, 6)
	return code
}
