//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipeline(logs *bytes.Buffer, register func(r *gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(logs, nil))

	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.ErrorHandler())
	register(r)
	return r
}

func serve(r *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, httperr.Response) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var body httperr.Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestErrorHandler(t *testing.T) {
	t.Run("private errors are classified", func(t *testing.T) {
		var logs bytes.Buffer
		r := newPipeline(&logs, func(r *gin.Engine) {
			r.GET("/bookings/:id", func(c *gin.Context) {
				_ = c.Error(errs.Mark(errs.New("booking not found"), errs.ErrNotFound))
			})
		})

		w, body := serve(r, httptest.NewRequest(http.MethodGet, "/bookings/1", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "booking not found", body.Error.Message)
		assert.NotEmpty(t, body.RequestID)
	})

	t.Run("validation errors keep their field detail", func(t *testing.T) {
		var logs bytes.Buffer
		r := newPipeline(&logs, func(r *gin.Engine) {
			r.POST("/bookings", func(c *gin.Context) {
				_ = c.Error(booking.NewFieldError("guest_count", "must be positive"))
			})
		})

		w, body := serve(r, httptest.NewRequest(http.MethodPost, "/bookings", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Validation failed", body.Error.Message)
		assert.Contains(t, w.Body.String(), `"guest_count"`)
	})

	t.Run("public errors are not rewritten", func(t *testing.T) {
		var logs bytes.Buffer
		r := newPipeline(&logs, func(r *gin.Engine) {
			r.GET("/me", func(c *gin.Context) {
				httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no token"), "User not authenticated", nil)
			})
		})

		w, body := serve(r, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "User not authenticated", body.Error.Message)
	})

	t.Run("panics become 500", func(t *testing.T) {
		var logs bytes.Buffer
		r := newPipeline(&logs, func(r *gin.Engine) {
			r.GET("/boom", func(c *gin.Context) { panic("boom") })
		})

		w, body := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", body.Error.Message)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("incoming request id is kept and echoed", func(t *testing.T) {
		var logs bytes.Buffer
		r := newPipeline(&logs, func(r *gin.Engine) {
			r.GET("/rooms", func(c *gin.Context) { c.Status(http.StatusOK) })
		})

		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w, _ := serve(r, req)

		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))

		var line map[string]any
		require.NoError(t, json.Unmarshal(logs.Bytes(), &line))
		assert.Equal(t, "req-123", line["request_id"])
		assert.EqualValues(t, http.StatusOK, line["status_code"])
	})

	t.Run("health checks are not logged when they succeed", func(t *testing.T) {
		var logs bytes.Buffer
		r := newPipeline(&logs, func(r *gin.Engine) {
			r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
		})

		serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Empty(t, logs.String())
	})

	t.Run("failures are logged at warn with the error", func(t *testing.T) {
		var logs bytes.Buffer
		r := newPipeline(&logs, func(r *gin.Engine) {
			r.GET("/rooms/:id", func(c *gin.Context) {
				httperr.Abort(c, errs.Mark(errs.New("room not found"), errs.ErrNotFound))
			})
		})

		serve(r, httptest.NewRequest(http.MethodGet, "/rooms/42", nil))

		var line map[string]any
		require.NoError(t, json.Unmarshal(logs.Bytes(), &line))
		assert.Equal(t, "WARN", line["level"])
		assert.Equal(t, "/rooms/:id", line["route"])
		assert.Equal(t, "room not found", line["error"])
	})
}
