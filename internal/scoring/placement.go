package scoring

import "sort"

// RosterEntry is one candidate for placement ranking. Slot identifies the
// participant; the caller decides whether the roster is team-scoped or
// match-wide.
type RosterEntry struct {
	Slot  int
	Stats ScoreInput
}

// PlacementEntry is one ranked roster entry. Rank is 1-based in descending
// score order.
type PlacementEntry struct {
	Slot  int
	Rank  int
	Score float64
}

// RankPlacements scores every roster entry and returns the full ranking,
// best first. The sort is stable: entries with identical scores keep their
// original relative input order, so re-running on the same roster can never
// silently swap two tied players. An empty roster yields an empty ranking.
func RankPlacements(roster []RosterEntry) []PlacementEntry {
	placements := make([]PlacementEntry, 0, len(roster))
	for _, entry := range roster {
		placements = append(placements, PlacementEntry{
			Slot:  entry.Slot,
			Score: ComputeScore(entry.Stats),
		})
	}

	sort.SliceStable(placements, func(i, j int) bool {
		return placements[i].Score > placements[j].Score
	})

	for i := range placements {
		placements[i].Rank = i + 1
	}

	return placements
}
