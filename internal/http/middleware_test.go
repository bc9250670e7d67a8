package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		production bool
		path       string
		wantCSP    string
		wantCache  string
		wantHSTS   bool
	}{
		{name: "api in production", production: true, path: "/api/progress", wantCSP: apiCSP, wantCache: "no-store", wantHSTS: true},
		{name: "health in dev", production: false, path: "/health", wantCSP: apiCSP, wantCache: "", wantHSTS: false},
		{name: "swagger in dev", production: false, path: "/swagger/index.html", wantCSP: swaggerCSP, wantCache: "", wantHSTS: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SecurityHeaders(tt.production)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
			assert.Equal(t, tt.wantCSP, rec.Header().Get("Content-Security-Policy"))
			assert.Equal(t, tt.wantCache, rec.Header().Get("Cache-Control"))
			assert.Equal(t, tt.wantHSTS, rec.Header().Get("Strict-Transport-Security") != "")
		})
	}
}
