package timeline

// Riot team identifiers as they appear in match-v5 payloads.
const (
	TeamBlue = 100
	TeamRed  = 200
)

// ExecuteSlot is the killer slot reported when a non-player source
// (turret, minion, jungle monster) gets the kill credit.
const ExecuteSlot = 0

// MaxSlots is the highest participant slot in a standard match (1..10).
const MaxSlots = 10

// ParticipantIdentity resolves a participant slot to a stable player identity.
// Immutable for the duration of a match.
type ParticipantIdentity struct {
	Slot         int    `json:"slot"`
	PUUID        string `json:"puuid,omitempty"`
	ChampionID   int    `json:"championId,omitempty"`
	ChampionName string `json:"championName,omitempty"`
	DisplayName  string `json:"displayName"`
	TeamID       int    `json:"teamId,omitempty"`
}

// ExecutedIdentity is the fixed identity credited for environment kills
// (killer slot 0). It carries no team.
var ExecutedIdentity = ParticipantIdentity{
	Slot:        ExecuteSlot,
	DisplayName: "Executed",
}

// UnknownIdentity returns the placeholder identity for a slot that has no
// entry in the participant map. The slot number is preserved so counter
// bookkeeping stays coherent even when display data is missing.
func UnknownIdentity(slot int) ParticipantIdentity {
	return ParticipantIdentity{
		Slot:        slot,
		DisplayName: "Unknown",
	}
}

// RawKillEvent is a single kill from the match timeline, already decoded
// from transport. Events are expected sorted ascending by TimestampMS.
type RawKillEvent struct {
	TimestampMS      int64 `json:"timestampMs"`
	KillerSlot       int   `json:"killerSlot"`
	VictimSlot       int   `json:"victimSlot"`
	AssistSlots      []int `json:"assistSlots,omitempty"`
	Bounty           int   `json:"bounty,omitempty"`
	ShutdownBounty   int   `json:"shutdownBounty,omitempty"`
	MultiKillLength  int   `json:"multiKillLength,omitempty"`  // source-reported, 0 when unknown
	KillStreakLength int   `json:"killStreakLength,omitempty"` // source-reported, 0 when unknown
	Ace              bool  `json:"ace,omitempty"`              // supplied upstream, passed through untouched
}

// MultiKillLabel annotates consecutive kills inside the 10s window.
type MultiKillLabel string

const (
	MultiKillNone   MultiKillLabel = ""
	MultiKillDouble MultiKillLabel = "double"
	MultiKillTriple MultiKillLabel = "triple"
	MultiKillQuadra MultiKillLabel = "quadra"
	MultiKillPenta  MultiKillLabel = "penta"
)

// KillStreakLabel annotates uninterrupted kill runs (reset on death).
type KillStreakLabel string

const (
	KillStreakNone        KillStreakLabel = ""
	KillStreakSpree       KillStreakLabel = "spree"
	KillStreakRampage     KillStreakLabel = "rampage"
	KillStreakUnstoppable KillStreakLabel = "unstoppable"
	KillStreakGodlike     KillStreakLabel = "godlike"
	KillStreakLegendary   KillStreakLabel = "legendary"
)

// ClassifiedKillEvent is one annotated kill-feed entry. Output is a 1:1,
// order-preserving map of the raw input.
type ClassifiedKillEvent struct {
	TimestampMS    int64                 `json:"timestampMs"`
	Killer         ParticipantIdentity   `json:"killer"`
	Victim         ParticipantIdentity   `json:"victim"`
	Assists        []ParticipantIdentity `json:"assists,omitempty"`
	KillerTeamID   int                   `json:"killerTeamId"`
	VictimTeamID   int                   `json:"victimTeamId"`
	Bounty         int                   `json:"bounty,omitempty"`
	ShutdownBounty int                   `json:"shutdownBounty,omitempty"`
	FirstBlood     bool                  `json:"firstBlood"`
	MultiKill      MultiKillLabel        `json:"multiKill,omitempty"`
	KillStreak     KillStreakLabel       `json:"killStreak,omitempty"`
	Shutdown       bool                  `json:"shutdown"`
	Execute        bool                  `json:"execute"`
	Ace            bool                  `json:"ace,omitempty"`
}
