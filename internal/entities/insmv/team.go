package insmv

// Team is an ordered, balance-validated set of characters for one faction.
// A Team only exists in the BALANCED state: the balancer never returns a
// partially filled one.
type Team struct {
	Faction    Faction      `json:"faction"`
	Seed       int64        `json:"seed"`
	Characters []*Character `json:"characters"`

	// WidenedSlots lists slot indexes that were only filled after the
	// power-score tolerance was widened by one increment
	WidenedSlots []int `json:"widened_slots,omitempty"`
}

// Size returns the number of characters in the team
func (t *Team) Size() int {
	return len(t.Characters)
}

// PowerSpread returns max minus min power score across the team
func (t *Team) PowerSpread() int {
	if len(t.Characters) == 0 {
		return 0
	}
	minScore, maxScore := t.Characters[0].PowerScore, t.Characters[0].PowerScore
	for _, c := range t.Characters[1:] {
		if c.PowerScore < minScore {
			minScore = c.PowerScore
		}
		if c.PowerScore > maxScore {
			maxScore = c.PowerScore
		}
	}
	return maxScore - minScore
}

// ArchetypeCounts returns how many times each archetype id appears
func (t *Team) ArchetypeCounts() map[string]int {
	counts := make(map[string]int, len(t.Characters))
	for _, c := range t.Characters {
		counts[c.ArchetypeID]++
	}
	return counts
}
