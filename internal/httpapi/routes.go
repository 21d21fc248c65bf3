package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"killfeed/internal/db"
	"killfeed/internal/live"
)

// SetupRoutes builds the read-API router over stored and live engine output.
func SetupRoutes(results *db.ResultReader, liveStore *live.Store) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/matches/{matchID}/feed", GetMatchFeed(results))
	r.Get("/matches/{matchID}/placements", GetMatchPlacements(results))
	r.Get("/live/{matchID}/feed", GetLiveFeed(liveStore))

	return r
}
