package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"killfeed/internal/match"
	"killfeed/internal/timeline"
)

// ResultReader provides read access to stored engine output for the API.
type ResultReader struct {
	pool *pgxpool.Pool
}

// NewResultReader creates a new result reader.
func NewResultReader(pool *pgxpool.Pool) *ResultReader {
	return &ResultReader{pool: pool}
}

// GetKillFeed returns the stored classified feed for a match in timeline
// order. An unprocessed match yields an empty feed.
func (r *ResultReader) GetKillFeed(ctx context.Context, matchID uuid.UUID) ([]timeline.ClassifiedKillEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT timestamp_ms,
		       killer_slot, killer_name, killer_champion, killer_team_id,
		       victim_slot, victim_name, victim_champion, victim_team_id,
		       assists, bounty, shutdown_bounty,
		       first_blood, multi_kill, kill_streak, shutdown, execute, ace
		FROM kill_feed
		WHERE match_id = $1
		ORDER BY position
	`, matchID)
	if err != nil {
		return nil, fmt.Errorf("query kill feed: %w", err)
	}
	defer rows.Close()

	var feed []timeline.ClassifiedKillEvent
	for rows.Next() {
		var e timeline.ClassifiedKillEvent
		var assists []byte
		var multiKill, killStreak string
		if err := rows.Scan(&e.TimestampMS,
			&e.Killer.Slot, &e.Killer.DisplayName, &e.Killer.ChampionName, &e.KillerTeamID,
			&e.Victim.Slot, &e.Victim.DisplayName, &e.Victim.ChampionName, &e.VictimTeamID,
			&assists, &e.Bounty, &e.ShutdownBounty,
			&e.FirstBlood, &multiKill, &killStreak, &e.Shutdown, &e.Execute, &e.Ace); err != nil {
			return nil, err
		}
		e.Killer.TeamID = e.KillerTeamID
		e.Victim.TeamID = e.VictimTeamID
		e.MultiKill = timeline.MultiKillLabel(multiKill)
		e.KillStreak = timeline.KillStreakLabel(killStreak)
		if len(assists) > 0 {
			if err := json.Unmarshal(assists, &e.Assists); err != nil {
				return nil, fmt.Errorf("unmarshal assists: %w", err)
			}
		}
		feed = append(feed, e)
	}
	return feed, rows.Err()
}

// GetPlacements returns stored placement rows for a match. scope is "match"
// for the match-wide ranking or "team" for the per-team rankings; team rows
// come back grouped by team id, rank ascending within each group.
func (r *ResultReader) GetPlacements(ctx context.Context, matchID uuid.UUID, scope string) ([]match.PlacementRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT rank, slot, team_id, display_name, champion_name, score,
		       score_kills, score_assists, score_deaths, score_creep
		FROM placements
		WHERE match_id = $1 AND scope = $2
		ORDER BY team_id, rank
	`, matchID, scope)
	if err != nil {
		return nil, fmt.Errorf("query placements: %w", err)
	}
	defer rows.Close()

	var placements []match.PlacementRow
	for rows.Next() {
		var p match.PlacementRow
		if err := rows.Scan(&p.Rank, &p.Slot, &p.Identity.TeamID,
			&p.Identity.DisplayName, &p.Identity.ChampionName, &p.Score,
			&p.Breakdown.Kills, &p.Breakdown.Assists, &p.Breakdown.Deaths, &p.Breakdown.CreepScore); err != nil {
			return nil, err
		}
		p.Identity.Slot = p.Slot
		placements = append(placements, p)
	}
	return placements, rows.Err()
}
