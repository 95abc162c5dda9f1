//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"booking-engine/internal/handler/dto/request"
	"booking-engine/internal/pkg/cookie"
	"booking-engine/tests/common/dbtest"
	"booking-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Session holds what a browser keeps after a successful login.
type Session struct {
	AccessToken string
	Cookies     []*http.Cookie
}

func Login(t *testing.T, router *gin.Engine, email, password string) Session {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, access, "access token cookie missing")
	require.NotEmpty(t, access.Value)
	require.NotNil(t, httptest.ExtractCookie(w, cookie.RefreshTokenCookieName), "refresh token cookie missing")

	return Session{AccessToken: access.Value, Cookies: httptest.ExtractCookies(w)}
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	return Login(t, router, email, password).AccessToken
}

// CreateAndLogin seeds an active user with dbtest.DefaultPassword and returns its access token.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.DefaultPassword)
}

// Logout returns the cookies the server sent back, which should all be expired.
func Logout(t *testing.T, router *gin.Engine, session Session) []*http.Cookie {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, session.Cookies, session.AccessToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	return httptest.ExtractCookies(w)
}
