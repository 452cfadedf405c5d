package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/caravan-log/backend/internal/middleware"
)

const devOrigin = "http://localhost:5173"

// trivialHandler is a minimal http.Handler that always returns 200.
var trivialHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

// TestCORSHandler_GET_AllowedOrigin verifies that a GET from an allowed origin
// receives the Access-Control-Allow-Origin header, and that the report
// filename header is exposed to scripts.
func TestCORSHandler_GET_AllowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{devOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/entries?q=999", nil)
	req.Header.Set("Origin", devOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, devOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
}

// TestCORSHandler_OPTIONS_Preflight verifies that preflights for the
// non-simple methods the API uses are answered with a 2xx and CORS headers.
func TestCORSHandler_OPTIONS_Preflight(t *testing.T) {
	h := middleware.NewCORSHandler([]string{devOrigin})(trivialHandler)

	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPost} {
		req := httptest.NewRequest(http.MethodOptions, "/draft/fields/plate_number", nil)
		req.Header.Set("Origin", devOrigin)
		req.Header.Set("Access-Control-Request-Method", method)
		// Browsers send requested header names in lowercase and rs/cors
		// compares them verbatim.
		req.Header.Set("Access-Control-Request-Headers", "content-type")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
			"expected 2xx for %s preflight, got %d", method, rec.Code)
		assert.Equal(t, devOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), method)
	}
}

// TestCORSHandler_GET_DisallowedOrigin verifies that a request from a
// disallowed origin does not receive the Access-Control-Allow-Origin header.
// The response itself still goes out; the browser is what blocks it.
func TestCORSHandler_GET_DisallowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{devOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
