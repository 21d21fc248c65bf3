package match

import (
	"killfeed/internal/scoring"
	"killfeed/internal/timeline"
)

// Build runs the whole engine over one snapshot: classify the kill feed, then
// score and rank the roster match-wide and per team. Pure — no I/O, no state
// kept between calls, safe to re-run unconditionally on every poll tick.
func Build(snap *Snapshot) *Result {
	participants := snap.ParticipantMap()

	result := &Result{
		MatchID:        snap.MatchID,
		Feed:           timeline.ClassifyFeed(snap.KillEvents, participants),
		TeamPlacements: make(map[int][]PlacementRow),
	}

	// Match-wide ranking over every box-score line, input order preserved for
	// ties (spec'd stable ordering comes from the ranker).
	roster := make([]scoring.RosterEntry, 0, len(snap.BoxScores))
	for _, bs := range snap.BoxScores {
		roster = append(roster, scoring.RosterEntry{
			Slot: bs.Slot,
			Stats: scoring.ScoreInput{
				Kills:      bs.Kills,
				Deaths:     bs.Deaths,
				Assists:    bs.Assists,
				CreepScore: bs.CreepScore(),
			},
		})
	}
	result.Placements = joinPlacements(scoring.RankPlacements(roster), roster, participants)

	// Team-scoped rankings. Box scores whose slot has no roster entry rank
	// under team id 0 so nothing is silently dropped.
	byTeam := make(map[int][]scoring.RosterEntry)
	teamOrder := make([]int, 0, 2)
	for _, entry := range roster {
		teamID := timeline.ResolveIdentity(participants, entry.Slot).TeamID
		if _, seen := byTeam[teamID]; !seen {
			teamOrder = append(teamOrder, teamID)
		}
		byTeam[teamID] = append(byTeam[teamID], entry)
	}
	for _, teamID := range teamOrder {
		entries := byTeam[teamID]
		result.TeamPlacements[teamID] = joinPlacements(scoring.RankPlacements(entries), entries, participants)
	}

	return result
}

func joinPlacements(placements []scoring.PlacementEntry, roster []scoring.RosterEntry, participants map[int]timeline.ParticipantIdentity) []PlacementRow {
	statsBySlot := make(map[int]scoring.ScoreInput, len(roster))
	for _, entry := range roster {
		statsBySlot[entry.Slot] = entry.Stats
	}

	rows := make([]PlacementRow, 0, len(placements))
	for _, p := range placements {
		rows = append(rows, PlacementRow{
			Rank:      p.Rank,
			Slot:      p.Slot,
			Identity:  timeline.ResolveIdentity(participants, p.Slot),
			Score:     p.Score,
			Breakdown: scoring.ComputeBreakdown(statsBySlot[p.Slot]),
		})
	}
	return rows
}
