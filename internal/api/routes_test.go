package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tony-montemuro/smb-website-sub002/internal/config"
)

func testRouter() http.Handler {
	return SetupRouter(&config.Config{
		SubmitRatePerSec: 1,
		SubmitBurst:      1,
	})
}

func serve(t *testing.T, router http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRouter_HealthCheck(t *testing.T) {
	rec := serve(t, testRouter(), http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	// Sans header Authorization, le middleware d'authentification refuse la
	// requête avant tout accès base. Un 404 signifierait une route oubliée
	router := testRouter()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"box art upload", http.MethodPost, "/games/smb1/boxart"},
		{"avatar upload", http.MethodPost, "/users/u1/avatar"},
		{"create submission", http.MethodPost, "/submissions"},
		{"moderation queue", http.MethodGet, "/submissions/unapproved"},
		{"notifications", http.MethodGet, "/notifications"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, router, tt.method, tt.path)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	rec := serve(t, testRouter(), http.MethodGet, "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
