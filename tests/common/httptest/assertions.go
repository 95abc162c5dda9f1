//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorBody mirrors the error response written by the handlers.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail    map[string]any `json:"detail"`
	RequestID string         `json:"request_id"`
}

// FieldNames lists the fields of a validation failure in response order.
func (e ErrorBody) FieldNames() []string {
	raw, _ := e.Detail["fields"].([]any)
	names := make([]string, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(map[string]any); ok {
			if name, ok := m["field"].(string); ok {
				names = append(names, name)
			}
		}
	}
	return names
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse ErrorBody
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// DecodeError requires status and returns the decoded error body.
func DecodeError(t *testing.T, w *httptest.ResponseRecorder, status int) ErrorBody {
	t.Helper()

	require.Equal(t, status, w.Code, w.Body.String())
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

// AssertValidationFields requires a 400 naming exactly the given fields.
func AssertValidationFields(t *testing.T, w *httptest.ResponseRecorder, fields ...string) {
	t.Helper()

	body := DecodeError(t, w, http.StatusBadRequest)
	assert.Equal(t, "Validation failed", body.Error.Message)
	assert.ElementsMatch(t, fields, body.FieldNames())
}

// AssertConflict requires a capacity 409 for resource and reason and returns its detail.
func AssertConflict(t *testing.T, w *httptest.ResponseRecorder, resource, reason string) map[string]any {
	t.Helper()

	body := DecodeError(t, w, http.StatusConflict)
	assert.Equal(t, resource, body.Detail["resource"], w.Body.String())
	assert.Equal(t, reason, body.Detail["reason"], w.Body.String())
	return body.Detail
}
