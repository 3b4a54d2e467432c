// Package insmv implements the INS-MV 4 entities
package insmv

// Rating is a named integer value on a character sheet
type Rating struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Power is a purchased special ability
type Power struct {
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

// Character represents a fully allocated quick-creation character.
// NOTE: This is a data-only struct. Allocation and scoring live in the
// orchestrators; once built and validated a Character is never mutated.
// Slices are kept in catalog declaration order so that serialization and
// rendering are deterministic.
type Character struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"` // blank placeholder until a player claims the sheet
	Faction       Faction  `json:"faction"`
	ArchetypeID   string   `json:"archetype_id"`
	ArchetypeName string   `json:"archetype_name"`
	Source        string   `json:"source"`
	Attributes    []Rating `json:"attributes"`
	Skills        []Rating `json:"skills"`
	Powers        []Power  `json:"powers"`

	// PowerScore is a derived balance metric, not a rule value
	PowerScore int `json:"power_score"`
}

// Attribute returns the value of the named attribute and whether it exists
func (c *Character) Attribute(name string) (int, bool) {
	for _, a := range c.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return 0, false
}

// Skill returns the rank of the named skill and whether it exists
func (c *Character) Skill(name string) (int, bool) {
	for _, s := range c.Skills {
		if s.Name == name {
			return s.Value, true
		}
	}
	return 0, false
}

// HasPower reports whether the character purchased the named power
func (c *Character) HasPower(name string) bool {
	for _, p := range c.Powers {
		if p.Name == name {
			return true
		}
	}
	return false
}
