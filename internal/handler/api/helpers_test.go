//go:build unit

package api_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"booking-engine/internal/domain/user"
	"booking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// commandsNotFound marks a domain sentinel the way the usecases do after a
// repository miss.
func commandsNotFound(sentinel error) error {
	return errs.Mark(sentinel, errs.ErrNotFound)
}

// performAs sends a bodyless request signed in with the given role.
func performAs(t *testing.T, router *gin.Engine, method, path string, role user.Role) *nethttptest.ResponseRecorder {
	t.Helper()

	req := nethttptest.NewRequest(method, path, http.NoBody)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-Test-Role", role.String())

	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
