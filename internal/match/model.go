package match

import (
	"github.com/google/uuid"

	"killfeed/internal/scoring"
	"killfeed/internal/timeline"
)

// BoxScore is one participant's box-score line, final or mid-game.
type BoxScore struct {
	Slot                 int `json:"slot"`
	Kills                int `json:"kills"`
	Deaths               int `json:"deaths"`
	Assists              int `json:"assists"`
	MinionsKilled        int `json:"minionsKilled"`
	NeutralMinionsKilled int `json:"neutralMinionsKilled"`
}

// CreepScore is the combined lane and jungle farm count used for scoring.
func (b BoxScore) CreepScore() int {
	return b.MinionsKilled + b.NeutralMinionsKilled
}

// Snapshot holds everything the engine needs for one invocation: the roster,
// the time-ordered kill events, and per-participant box scores. A snapshot is
// always complete, never an incremental diff — re-running on the same
// snapshot yields the same result.
type Snapshot struct {
	MatchID      uuid.UUID                      `json:"matchId"`
	Participants []timeline.ParticipantIdentity `json:"participants"`
	KillEvents   []timeline.RawKillEvent        `json:"killEvents"`
	BoxScores    []BoxScore                     `json:"boxScores"`
}

// ParticipantMap indexes the roster by slot for identity resolution.
// Partial rosters are fine; missing slots resolve to placeholders downstream.
func (s *Snapshot) ParticipantMap() map[int]timeline.ParticipantIdentity {
	m := make(map[int]timeline.ParticipantIdentity, len(s.Participants))
	for _, p := range s.Participants {
		m[p.Slot] = p
	}
	return m
}

// PlacementRow is one ranked roster entry joined with its display identity
// and score breakdown.
type PlacementRow struct {
	Rank      int                          `json:"rank"`
	Slot      int                          `json:"slot"`
	Identity  timeline.ParticipantIdentity `json:"identity"`
	Score     float64                      `json:"score"`
	Breakdown scoring.Breakdown            `json:"breakdown"`
}

// Result is the full engine output for one snapshot: the annotated kill feed,
// the match-wide placement ranking, and per-team rankings.
type Result struct {
	MatchID        uuid.UUID                      `json:"matchId"`
	Feed           []timeline.ClassifiedKillEvent `json:"feed"`
	Placements     []PlacementRow                 `json:"placements"`
	TeamPlacements map[int][]PlacementRow         `json:"teamPlacements"`
}
