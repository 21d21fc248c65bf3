package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIdentity_ExecuteSlotIgnoresMap(t *testing.T) {
	participants := map[int]ParticipantIdentity{
		0: {Slot: 0, DisplayName: "ShouldNeverWin"},
		1: {Slot: 1, DisplayName: "MidDiff", TeamID: TeamBlue},
	}

	got := ResolveIdentity(participants, ExecuteSlot)
	assert.Equal(t, ExecutedIdentity, got)
}

func TestResolveIdentity_KnownSlot(t *testing.T) {
	participants := testParticipants()
	got := ResolveIdentity(participants, 6)
	assert.Equal(t, "ShadowStep", got.DisplayName)
	assert.Equal(t, TeamRed, got.TeamID)
}

func TestResolveIdentity_MissingSlotGetsPlaceholder(t *testing.T) {
	got := ResolveIdentity(map[int]ParticipantIdentity{}, 5)
	assert.Equal(t, "Unknown", got.DisplayName)
	assert.Equal(t, 5, got.Slot)
	assert.Zero(t, got.TeamID)
}

func TestResolveIdentity_NilMap(t *testing.T) {
	got := ResolveIdentity(nil, 9)
	assert.Equal(t, "Unknown", got.DisplayName)
	assert.Equal(t, 9, got.Slot)
}

func TestResolveAssists(t *testing.T) {
	participants := testParticipants()

	assert.Nil(t, ResolveAssists(participants, nil))
	assert.Nil(t, ResolveAssists(participants, []int{}))

	got := ResolveAssists(participants, []int{2, 5, 7})
	assert.Len(t, got, 3)
	assert.Equal(t, "JglGap", got[0].DisplayName)
	assert.Equal(t, "Unknown", got[1].DisplayName)
	assert.Equal(t, "Headshot", got[2].DisplayName)
}
