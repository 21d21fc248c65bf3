package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"killfeed/internal/match"
	"killfeed/internal/timeline"
)

// MatchReader provides read-only access to canonical match tables.
type MatchReader struct {
	pool *pgxpool.Pool
}

// NewMatchReader creates a new canonical match reader.
func NewMatchReader(pool *pgxpool.Pool) *MatchReader {
	return &MatchReader{pool: pool}
}

// MatchExists reports whether a match row exists for the given UUID.
func (r *MatchReader) MatchExists(ctx context.Context, matchID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM matches WHERE id = $1)
	`, matchID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("match exists: %w", err)
	}
	return exists, nil
}

// GetMatchSnapshot retrieves the full engine input for a completed match:
// roster, time-ordered kill events, and final box scores.
func (r *MatchReader) GetMatchSnapshot(ctx context.Context, matchID uuid.UUID) (*match.Snapshot, error) {
	snap := &match.Snapshot{MatchID: matchID}

	participants, boxScores, err := r.getParticipants(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get participants: %w", err)
	}
	snap.Participants = participants
	snap.BoxScores = boxScores

	events, err := r.getKillEvents(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get kill events: %w", err)
	}
	snap.KillEvents = events

	return snap, nil
}

// getParticipants retrieves the roster and final box scores in one pass.
func (r *MatchReader) getParticipants(ctx context.Context, matchID uuid.UUID) ([]timeline.ParticipantIdentity, []match.BoxScore, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT slot, puuid, champion_id, champion_name, display_name, team_id,
		       kills, deaths, assists, minions_killed, neutral_minions_killed
		FROM participants
		WHERE match_id = $1
		ORDER BY slot
	`, matchID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var participants []timeline.ParticipantIdentity
	var boxScores []match.BoxScore
	for rows.Next() {
		var p timeline.ParticipantIdentity
		var bs match.BoxScore
		if err := rows.Scan(&p.Slot, &p.PUUID, &p.ChampionID, &p.ChampionName,
			&p.DisplayName, &p.TeamID,
			&bs.Kills, &bs.Deaths, &bs.Assists, &bs.MinionsKilled, &bs.NeutralMinionsKilled); err != nil {
			return nil, nil, err
		}
		bs.Slot = p.Slot
		participants = append(participants, p)
		boxScores = append(boxScores, bs)
	}
	return participants, boxScores, rows.Err()
}

// getKillEvents retrieves all kill events for a match sorted by timestamp.
// The classifier requires ascending order; ties keep insertion order via the
// serial id.
func (r *MatchReader) getKillEvents(ctx context.Context, matchID uuid.UUID) ([]timeline.RawKillEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT timestamp_ms, killer_slot, victim_slot, assist_slots,
		       bounty, shutdown_bounty, multi_kill_length, kill_streak_length, ace
		FROM kill_events
		WHERE match_id = $1
		ORDER BY timestamp_ms, id
	`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []timeline.RawKillEvent
	for rows.Next() {
		var e timeline.RawKillEvent
		var assists []int32
		if err := rows.Scan(&e.TimestampMS, &e.KillerSlot, &e.VictimSlot, &assists,
			&e.Bounty, &e.ShutdownBounty, &e.MultiKillLength, &e.KillStreakLength, &e.Ace); err != nil {
			return nil, err
		}
		for _, a := range assists {
			e.AssistSlots = append(e.AssistSlots, int(a))
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
