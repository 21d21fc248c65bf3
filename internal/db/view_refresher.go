package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"killfeed/internal/logging"
)

// ViewRefresher refreshes the materialized views that back the profile pages
// after a match has been written.
type ViewRefresher struct {
	pool *pgxpool.Pool
}

// NewViewRefresher creates a new view refresher instance.
func NewViewRefresher(pool *pgxpool.Pool) *ViewRefresher {
	return &ViewRefresher{pool: pool}
}

// materializedViews lists the views derived from kill_feed and placements.
// Ordered by dependency: per-match rollups first, then career rollups.
var materializedViews = []string{
	"mv_player_mvp_totals",   // rank-1 match-wide placements per puuid
	"mv_player_score_form",   // rolling score average per puuid
	"mv_champion_feed_stats", // first bloods / pentas / shutdowns per champion
}

// RefreshAll refreshes every materialized view. Failures are logged and
// skipped so one broken view never blocks the others; only a total failure
// is reported to the caller.
func (r *ViewRefresher) RefreshAll(ctx context.Context) error {
	logger := logging.Logger()

	startTime := time.Now()
	refreshed := 0

	for _, view := range materializedViews {
		if err := r.refreshView(ctx, view); err != nil {
			logger.Warnf("failed to refresh view %s: %v", view, err)
			continue
		}
		refreshed++
	}

	elapsed := time.Since(startTime)
	logger.Infof("view refresh completed: %d/%d succeeded in %v", refreshed, len(materializedViews), elapsed)

	if refreshed == 0 {
		return fmt.Errorf("all view refreshes failed")
	}

	return nil
}

func (r *ViewRefresher) refreshView(ctx context.Context, name string) error {
	query := fmt.Sprintf("REFRESH MATERIALIZED VIEW CONCURRENTLY %s", name)

	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("refresh %s: %w", name, err)
	}

	return nil
}
