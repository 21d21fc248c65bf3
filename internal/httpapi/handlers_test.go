package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutes_InvalidMatchID(t *testing.T) {
	// Invalid ids are rejected before any storage access, so nil backends
	// are safe here.
	router := SetupRoutes(nil, nil)

	paths := []string{
		"/matches/not-a-uuid/feed",
		"/matches/not-a-uuid/placements",
		"/live/not-a-uuid/feed",
	}

	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestRoutes_BadPlacementScope(t *testing.T) {
	router := SetupRoutes(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/matches/3df9b652-9a9f-4f0e-b2f0-1b6a2e4f0c11/placements?scope=global", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_Healthz(t *testing.T) {
	router := SetupRoutes(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
