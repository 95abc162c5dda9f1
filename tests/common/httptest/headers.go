//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertLocation requires a Location header under prefix and returns the trailing ID.
func AssertLocation(t *testing.T, w *httptest.ResponseRecorder, prefix string) string {
	t.Helper()

	loc := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(loc, prefix), "Location %q is not under %q", loc, prefix)
	id := strings.TrimPrefix(loc, prefix)
	require.NotEmpty(t, id)
	return id
}
