package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"killfeed/internal/db"
	"killfeed/internal/live"
	"killfeed/internal/logging"
)

// Healthz reports process liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// GetMatchFeed serves the stored classified kill feed for a completed match.
func GetMatchFeed(results *db.ResultReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID, ok := matchIDParam(w, r)
		if !ok {
			return
		}

		feed, err := results.GetKillFeed(r.Context(), matchID)
		if err != nil {
			logging.Logger().Errorf("get kill feed for %s: %v", matchID, err)
			http.Error(w, "failed to load kill feed", http.StatusInternalServerError)
			return
		}

		writeJSON(w, struct {
			MatchID string      `json:"matchId"`
			Feed    interface{} `json:"feed"`
		}{MatchID: matchID.String(), Feed: feed})
	}
}

// GetMatchPlacements serves the stored placement ranking. ?scope=team returns
// the per-team rankings; the default is the match-wide ranking.
func GetMatchPlacements(results *db.ResultReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID, ok := matchIDParam(w, r)
		if !ok {
			return
		}

		scope := r.URL.Query().Get("scope")
		if scope == "" {
			scope = "match"
		}
		if scope != "match" && scope != "team" {
			http.Error(w, "scope must be match or team", http.StatusBadRequest)
			return
		}

		placements, err := results.GetPlacements(r.Context(), matchID, scope)
		if err != nil {
			logging.Logger().Errorf("get placements for %s: %v", matchID, err)
			http.Error(w, "failed to load placements", http.StatusInternalServerError)
			return
		}

		writeJSON(w, struct {
			MatchID    string      `json:"matchId"`
			Scope      string      `json:"scope"`
			Placements interface{} `json:"placements"`
		}{MatchID: matchID.String(), Scope: scope, Placements: placements})
	}
}

// GetLiveFeed serves the latest published live result, straight from Redis.
// 404 means no poll has published yet or the TTL expired.
func GetLiveFeed(liveStore *live.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID, ok := matchIDParam(w, r)
		if !ok {
			return
		}

		raw, found, err := liveStore.GetFeed(r.Context(), matchID)
		if err != nil {
			logging.Logger().Errorf("get live feed for %s: %v", matchID, err)
			http.Error(w, "failed to load live feed", http.StatusInternalServerError)
			return
		}
		if !found {
			http.Error(w, "no live result for match", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(raw)
	}
}

func matchIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	matchID, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		http.Error(w, "invalid match id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return matchID, true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
