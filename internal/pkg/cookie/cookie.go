package cookie

import (
	"net/http"
	"time"

	"booking-engine/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	// the refresh token is only ever read by the auth endpoints
	refreshTokenPath = "/api/auth"
)

type tokenCookie struct {
	name  string
	value string
	path  string
	ttl   time.Duration
}

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	write(c, cfg,
		tokenCookie{name: AccessTokenCookieName, value: accessToken, path: "/", ttl: accessExpiry},
		tokenCookie{name: RefreshTokenCookieName, value: refreshToken, path: refreshTokenPath, ttl: refreshExpiry},
	)
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg,
		tokenCookie{name: AccessTokenCookieName, path: "/", ttl: -time.Second},
		tokenCookie{name: RefreshTokenCookieName, path: refreshTokenPath, ttl: -time.Second},
	)
}

func write(c *gin.Context, cfg config.CookieConfig, cookies ...tokenCookie) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	for _, ck := range cookies {
		c.SetCookie(ck.name, ck.value, int(ck.ttl.Seconds()), ck.path, cfg.Domain, cfg.Secure, true)
	}
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
