package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSecurityHeaders(t *testing.T) {
	dummyHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Present regardless of environment
	commonHeaders := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"X-XSS-Protection":        "1; mode=block",
		"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
	}

	tests := []struct {
		name     string
		isProd   bool
		wantHSTS bool
	}{
		{name: "Production_HasHSTS", isProd: true, wantHSTS: true},
		{name: "Dev_NoHSTS", isProd: false, wantHSTS: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()

			WithSecurityHeaders(dummyHandler, tt.isProd).ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			for key, want := range commonHeaders {
				assert.Equal(t, want, w.Header().Get(key), key)
			}
			assert.Equal(t, tt.wantHSTS, w.Header().Get("Strict-Transport-Security") != "")
		})
	}
}

func TestWithCORS(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	w := httptest.NewRecorder()
	WithCORS(next, "https://ticketvault.app").ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/events", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, called, "preflight must not reach the router")
	assert.Equal(t, "https://ticketvault.app", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")

	w = httptest.NewRecorder()
	WithCORS(next, "").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events", nil))
	assert.True(t, called)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMount_EmptyPathBecomesRoot(t *testing.T) {
	var got string
	h := mount("/events", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { got = r.URL.Path }))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/events", nil))
	assert.Equal(t, "/", got)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/events/7", nil))
	assert.Equal(t, "/7", got)
}
