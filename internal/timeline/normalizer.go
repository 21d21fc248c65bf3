package timeline

// ResolveIdentity maps a participant slot to its identity. Slot 0 is always
// the environment ("executed by") credit, regardless of the map contents.
// Any other slot missing from the map resolves to the Unknown placeholder —
// live spectator data can lag behind the roster, so resolution never fails
// and never drops an event.
func ResolveIdentity(participants map[int]ParticipantIdentity, slot int) ParticipantIdentity {
	if slot == ExecuteSlot {
		return ExecutedIdentity
	}
	if id, ok := participants[slot]; ok {
		return id
	}
	return UnknownIdentity(slot)
}

// ResolveAssists resolves each assister slot in input order. A nil or empty
// slot list yields a nil slice.
func ResolveAssists(participants map[int]ParticipantIdentity, slots []int) []ParticipantIdentity {
	if len(slots) == 0 {
		return nil
	}
	assists := make([]ParticipantIdentity, 0, len(slots))
	for _, slot := range slots {
		assists = append(assists, ResolveIdentity(participants, slot))
	}
	return assists
}
