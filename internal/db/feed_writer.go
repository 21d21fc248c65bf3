package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"killfeed/internal/match"
)

// FeedWriter handles writing engine output to the database.
type FeedWriter struct {
	pool *pgxpool.Pool
}

// NewFeedWriter creates a new feed writer.
func NewFeedWriter(pool *pgxpool.Pool) *FeedWriter {
	return &FeedWriter{pool: pool}
}

// placementScopeMatch marks match-wide placement rows; team-scoped rows carry
// their team id instead.
const placementScopeMatch = "match"
const placementScopeTeam = "team"

// WriteAll inserts the classified feed and placements within a single
// transaction. Takes an advisory lock on a shared project key so two workers
// never interleave writes for related tables, and purges existing rows for
// the match first — every snapshot re-run fully replaces the previous result.
func (w *FeedWriter) WriteAll(ctx context.Context, result *match.Result) error {
	tx, err := w.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock key: shared constant "killfeed" across writers.
	const writeLockKey int64 = 0x6b696c6c66656564
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, writeLockKey); err != nil {
		return fmt.Errorf("acquire write lock: %w", err)
	}

	if err := purgeMatchResult(ctx, tx, result.MatchID); err != nil {
		return fmt.Errorf("purge match result: %w", err)
	}

	if err := insertKillFeed(ctx, tx, result); err != nil {
		return fmt.Errorf("insert kill feed: %w", err)
	}

	if err := insertPlacements(ctx, tx, result); err != nil {
		return fmt.Errorf("insert placements: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func purgeMatchResult(ctx context.Context, tx pgx.Tx, matchID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM placements WHERE match_id = $1`, matchID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM kill_feed WHERE match_id = $1`, matchID); err != nil {
		return err
	}
	return nil
}

func insertKillFeed(ctx context.Context, tx pgx.Tx, result *match.Result) error {
	for i, e := range result.Feed {
		assists, err := json.Marshal(e.Assists)
		if err != nil {
			return fmt.Errorf("marshal assists: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO kill_feed (
				match_id, position, timestamp_ms,
				killer_slot, killer_name, killer_champion, killer_team_id,
				victim_slot, victim_name, victim_champion, victim_team_id,
				assists, bounty, shutdown_bounty,
				first_blood, multi_kill, kill_streak, shutdown, execute, ace
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		`,
			result.MatchID, i, e.TimestampMS,
			e.Killer.Slot, e.Killer.DisplayName, e.Killer.ChampionName, e.KillerTeamID,
			e.Victim.Slot, e.Victim.DisplayName, e.Victim.ChampionName, e.VictimTeamID,
			assists, e.Bounty, e.ShutdownBounty,
			e.FirstBlood, string(e.MultiKill), string(e.KillStreak), e.Shutdown, e.Execute, e.Ace,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertPlacements(ctx context.Context, tx pgx.Tx, result *match.Result) error {
	insert := func(scope string, teamID int, rows []match.PlacementRow) error {
		for _, p := range rows {
			_, err := tx.Exec(ctx, `
				INSERT INTO placements (
					match_id, scope, team_id, rank, slot,
					display_name, champion_name, score,
					score_kills, score_assists, score_deaths, score_creep
				) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
			`,
				result.MatchID, scope, teamID, p.Rank, p.Slot,
				p.Identity.DisplayName, p.Identity.ChampionName, p.Score,
				p.Breakdown.Kills, p.Breakdown.Assists, p.Breakdown.Deaths, p.Breakdown.CreepScore,
			)
			if err != nil {
				return err
			}
		}
		return nil
	}

	if err := insert(placementScopeMatch, 0, result.Placements); err != nil {
		return err
	}
	for teamID, rows := range result.TeamPlacements {
		if err := insert(placementScopeTeam, teamID, rows); err != nil {
			return err
		}
	}
	return nil
}
