package timeline

// MultiKillWindowMS is the maximum time between consecutive kills by one
// player for the kills to chain into a multi-kill.
const MultiKillWindowMS = 10000 // 10 seconds

// slotCounters holds the per-participant bookkeeping threaded through the scan.
// The multi-kill chain and the kill streak are independent: a >10s gap resets
// only the chain, the streak resets solely on the player's own death.
type slotCounters struct {
	lastKillMS     int64
	hasKilledYet   bool
	multiKillChain int
	killStreak     int
}

// feedState keeps counters in a fixed array for the standard slots 1..10 and
// spills anything out of range into a map, so malformed slot ids degrade
// instead of crashing or losing counter state.
type feedState struct {
	hadFirstBlood bool
	slots         [MaxSlots + 1]slotCounters
	overflow      map[int]*slotCounters
}

func (s *feedState) counters(slot int) *slotCounters {
	if slot >= 1 && slot <= MaxSlots {
		return &s.slots[slot]
	}
	if s.overflow == nil {
		s.overflow = make(map[int]*slotCounters)
	}
	c, ok := s.overflow[slot]
	if !ok {
		c = &slotCounters{}
		s.overflow[slot] = c
	}
	return c
}

// ClassifyFeed turns a time-ordered stream of raw kill events into the
// annotated kill feed. The output is 1:1 with the input and order preserving;
// classification of an event never depends on later events. Events must be
// pre-sorted ascending by timestamp; ties keep input order.
func ClassifyFeed(events []RawKillEvent, participants map[int]ParticipantIdentity) []ClassifiedKillEvent {
	feed := make([]ClassifiedKillEvent, 0, len(events))
	state := &feedState{}

	for _, e := range events {
		feed = append(feed, classifyOne(state, e, participants))
	}

	return feed
}

func classifyOne(state *feedState, e RawKillEvent, participants map[int]ParticipantIdentity) ClassifiedKillEvent {
	execute := e.KillerSlot == ExecuteSlot

	killer := ResolveIdentity(participants, e.KillerSlot)
	victim := ResolveIdentity(participants, e.VictimSlot)

	out := ClassifiedKillEvent{
		TimestampMS:    e.TimestampMS,
		Killer:         killer,
		Victim:         victim,
		Assists:        ResolveAssists(participants, e.AssistSlots),
		KillerTeamID:   killer.TeamID,
		VictimTeamID:   victim.TeamID,
		Bounty:         e.Bounty,
		ShutdownBounty: e.ShutdownBounty,
		Shutdown:       e.ShutdownBounty > 0,
		Execute:        execute,
		Ace:            e.Ace,
	}

	// Multi-kill: trust the source-reported length when present, otherwise
	// derive from the 10s window. Counters are keyed by slot id, so an
	// unresolvable killer still accumulates chain state.
	if e.MultiKillLength >= 2 {
		out.MultiKill = multiKillLabel(e.MultiKillLength)
	} else if !execute {
		kc := state.counters(e.KillerSlot)
		if kc.hasKilledYet && e.TimestampMS-kc.lastKillMS < MultiKillWindowMS {
			kc.multiKillChain++
		} else {
			kc.multiKillChain = 1
		}
		out.MultiKill = multiKillLabel(kc.multiKillChain)
	}
	if !execute {
		kc := state.counters(e.KillerSlot)
		kc.lastKillMS = e.TimestampMS
		kc.hasKilledYet = true
	}

	// Kill streak: executes never advance a streak as killer, but the victim
	// died either way, so their streak resets below.
	if e.KillStreakLength >= 3 {
		out.KillStreak = killStreakLabel(e.KillStreakLength)
	} else if !execute {
		kc := state.counters(e.KillerSlot)
		kc.killStreak++
		out.KillStreak = killStreakLabel(kc.killStreak)
	}
	if e.VictimSlot != ExecuteSlot {
		state.counters(e.VictimSlot).killStreak = 0
	}

	// First blood belongs to the earliest non-execute kill only.
	if !state.hadFirstBlood && !execute {
		out.FirstBlood = true
		state.hadFirstBlood = true
	}

	return out
}

// multiKillLabel maps a chain length to its feed label. Lengths past penta
// clamp to penta rather than rejecting the event.
func multiKillLabel(n int) MultiKillLabel {
	switch {
	case n >= 5:
		return MultiKillPenta
	case n == 4:
		return MultiKillQuadra
	case n == 3:
		return MultiKillTriple
	case n == 2:
		return MultiKillDouble
	default:
		return MultiKillNone
	}
}

// killStreakLabel maps a streak length to its feed label. Lengths past
// legendary clamp to legendary.
func killStreakLabel(n int) KillStreakLabel {
	switch {
	case n >= 7:
		return KillStreakLegendary
	case n == 6:
		return KillStreakGodlike
	case n == 5:
		return KillStreakUnstoppable
	case n == 4:
		return KillStreakRampage
	case n == 3:
		return KillStreakSpree
	default:
		return KillStreakNone
	}
}
