package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankPlacements_DescendingByScore(t *testing.T) {
	roster := []RosterEntry{
		{Slot: 1, Stats: ScoreInput{Kills: 2, Deaths: 5, Assists: 3}},
		{Slot: 2, Stats: ScoreInput{Kills: 10, Deaths: 2, Assists: 5, CreepScore: 150}},
		{Slot: 3, Stats: ScoreInput{Kills: 5, Deaths: 5, Assists: 10}},
	}

	placements := RankPlacements(roster)
	require.Len(t, placements, 3)

	assert.Equal(t, 2, placements[0].Slot)
	assert.Equal(t, 1, placements[0].Rank)
	assert.Equal(t, 3, placements[1].Slot)
	assert.Equal(t, 2, placements[1].Rank)
	assert.Equal(t, 1, placements[2].Slot)
	assert.Equal(t, 3, placements[2].Rank)
}

func TestRankPlacements_TiesKeepInputOrder(t *testing.T) {
	same := ScoreInput{Kills: 3, Deaths: 2, Assists: 4, CreepScore: 100}
	roster := []RosterEntry{
		{Slot: 7, Stats: same},
		{Slot: 4, Stats: same},
		{Slot: 9, Stats: ScoreInput{Kills: 20}},
		{Slot: 2, Stats: same},
	}

	placements := RankPlacements(roster)
	require.Len(t, placements, 4)

	assert.Equal(t, 9, placements[0].Slot)
	// Tied entries retain their original relative order.
	assert.Equal(t, 7, placements[1].Slot)
	assert.Equal(t, 4, placements[2].Slot)
	assert.Equal(t, 2, placements[3].Slot)
}

func TestRankPlacements_EmptyRoster(t *testing.T) {
	assert.Empty(t, RankPlacements(nil))
}

func TestRankPlacements_FullRankingReturned(t *testing.T) {
	roster := make([]RosterEntry, 10)
	for i := range roster {
		roster[i] = RosterEntry{Slot: i + 1, Stats: ScoreInput{Kills: i}}
	}

	placements := RankPlacements(roster)
	require.Len(t, placements, 10)
	for i, p := range placements {
		assert.Equal(t, i+1, p.Rank)
	}
	assert.Equal(t, 10, placements[0].Slot) // most kills first
	assert.Equal(t, 1, placements[9].Slot)
}
