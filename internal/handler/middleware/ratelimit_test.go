//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/limited", middleware.NewRateLimiter(cfg).Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hit(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter(t *testing.T) {
	t.Run("burst is allowed then requests are rejected", func(t *testing.T) {
		r := newLimitedRouter(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 3})

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"), "request %d", i)
		}
		assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))
	})

	t.Run("buckets are per client IP", func(t *testing.T) {
		r := newLimitedRouter(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1})

		assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))
		assert.Equal(t, http.StatusOK, hit(r, "10.0.0.2"))
	})

	t.Run("disabled limiter lets everything through", func(t *testing.T) {
		r := newLimitedRouter(config.RateLimitConfig{Enabled: false, RPS: 0.001, Burst: 1})

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
		}
	})
}
