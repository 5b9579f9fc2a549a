package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/junction-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// CleanupResponseBody registers a cleanup function to close the response body
// to prevent resource leaks. Should be used in tests when receiving an HTTP response.
func CleanupResponseBody(t *testing.T, resp *http.Response) {
	t.Helper()
	if resp != nil && resp.Body != nil {
		t.Cleanup(func() {
			if err := resp.Body.Close(); err != nil {
				t.Logf("Warning: failed to close response body: %v", err)
			}
		})
	}
}

// ReadBody reads the full response body.
func ReadBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return body
}

// AssertJSONResponse checks the status code, the JSON content type and that
// the body is JSON-equivalent to expected.
func AssertJSONResponse(t *testing.T, resp *http.Response, expectedStatus int, expected string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, expected, string(ReadBody(t, resp)))
}

// AssertErrorResponse checks that a response carries {"error": expectedMessage}
// with the expected status code. For 204 No Content the body must be empty.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedMessage string,
) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)

	body := ReadBody(t, resp)
	if expectedStatus == http.StatusNoContent {
		assert.Empty(t, body, "Expected empty body for 204 No Content")
		return
	}

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "Failed to unmarshal error response: %s", string(body))
	assert.Equal(t, expectedMessage, errResp.Error)
}

// AssertValidationErrorResponse checks for the 400 {"errors":["validation errors"]} body.
func AssertValidationErrorResponse(t *testing.T, resp *http.Response) {
	t.Helper()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp shared.ValidationErrorResponse
	body := ReadBody(t, resp)
	require.NoError(t, json.Unmarshal(body, &errResp), "Failed to unmarshal validation response: %s", string(body))
	assert.Equal(t, []string{shared.ValidationErrorsMessage}, errResp.Errors)
}
