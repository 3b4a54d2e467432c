package insmv

import "fmt"

// Faction is the side a character fights for
type Faction string

// The two factions of INS-MV
const (
	FactionAngel Faction = "angel"
	FactionDemon Faction = "demon"
)

// Factions lists all known factions in a stable order
func Factions() []Faction {
	return []Faction{FactionAngel, FactionDemon}
}

// ParseFaction converts a string into a Faction
func ParseFaction(s string) (Faction, error) {
	switch Faction(s) {
	case FactionAngel:
		return FactionAngel, nil
	case FactionDemon:
		return FactionDemon, nil
	default:
		return "", fmt.Errorf("unknown faction %q (want angel or demon)", s)
	}
}

// String returns the string representation of the faction
func (f Faction) String() string {
	return string(f)
}
