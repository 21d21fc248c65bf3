package match

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"killfeed/internal/timeline"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		MatchID: uuid.MustParse("3df9b652-9a9f-4f0e-b2f0-1b6a2e4f0c11"),
		Participants: []timeline.ParticipantIdentity{
			{Slot: 1, DisplayName: "MidDiff", ChampionName: "Ahri", TeamID: timeline.TeamBlue},
			{Slot: 2, DisplayName: "JglGap", ChampionName: "LeeSin", TeamID: timeline.TeamBlue},
			{Slot: 6, DisplayName: "ShadowStep", ChampionName: "Zed", TeamID: timeline.TeamRed},
			{Slot: 7, DisplayName: "Headshot", ChampionName: "Caitlyn", TeamID: timeline.TeamRed},
		},
		KillEvents: []timeline.RawKillEvent{
			{TimestampMS: 60000, KillerSlot: 1, VictimSlot: 6},
			{TimestampMS: 65000, KillerSlot: 1, VictimSlot: 7},
			{TimestampMS: 120000, KillerSlot: timeline.ExecuteSlot, VictimSlot: 1},
		},
		BoxScores: []BoxScore{
			{Slot: 1, Kills: 2, Deaths: 1, Assists: 0, MinionsKilled: 140, NeutralMinionsKilled: 10},
			{Slot: 2, Kills: 0, Deaths: 0, Assists: 2, MinionsKilled: 30, NeutralMinionsKilled: 90},
			{Slot: 6, Kills: 0, Deaths: 1, Assists: 0, MinionsKilled: 120, NeutralMinionsKilled: 0},
			{Slot: 7, Kills: 0, Deaths: 1, Assists: 0, MinionsKilled: 150, NeutralMinionsKilled: 4},
		},
	}
}

func TestBuild_FeedAndPlacements(t *testing.T) {
	snap := testSnapshot()
	result := Build(snap)

	require.Len(t, result.Feed, 3)
	assert.True(t, result.Feed[0].FirstBlood)
	assert.Equal(t, timeline.MultiKillDouble, result.Feed[1].MultiKill)
	assert.True(t, result.Feed[2].Execute)

	require.Len(t, result.Placements, 4)
	assert.Equal(t, 1, result.Placements[0].Rank)
	assert.Equal(t, 1, result.Placements[0].Slot) // 2 kills, best score
	assert.Equal(t, "MidDiff", result.Placements[0].Identity.DisplayName)
	assert.InDelta(t, result.Placements[0].Score, result.Placements[0].Breakdown.Total(), 1e-9)

	require.Len(t, result.TeamPlacements, 2)
	require.Len(t, result.TeamPlacements[timeline.TeamBlue], 2)
	require.Len(t, result.TeamPlacements[timeline.TeamRed], 2)
	assert.Equal(t, 1, result.TeamPlacements[timeline.TeamRed][0].Rank)
}

func TestBuild_EmptySnapshot(t *testing.T) {
	result := Build(&Snapshot{})
	assert.Empty(t, result.Feed)
	assert.Empty(t, result.Placements)
	assert.Empty(t, result.TeamPlacements)
}

func TestBuild_Deterministic(t *testing.T) {
	snap := testSnapshot()
	assert.Equal(t, Build(snap), Build(snap))
}

func TestBuild_PartialRosterStillRanks(t *testing.T) {
	snap := testSnapshot()
	snap.Participants = snap.Participants[:1] // late-joining spectator data

	result := Build(snap)
	require.Len(t, result.Placements, 4)

	// Slots without roster entries group under team id 0 instead of dropping.
	total := 0
	for _, rows := range result.TeamPlacements {
		total += len(rows)
	}
	assert.Equal(t, 4, total)
}
