// Package catalog holds the static quick-creation rule tables: archetype
// profiles for both factions plus the power-score weights. The catalog is
// loaded and validated once at process start and is read-only afterwards.
package catalog

import (
	"github.com/scoxgen/scox/internal/entities/insmv"
	"github.com/scoxgen/scox/internal/errors"
)

// AttributeRange bounds one attribute of an archetype. Weight is the
// selection weight the allocator uses when spending budget; higher means
// the archetype favors that attribute.
type AttributeRange struct {
	Name   string `yaml:"name"`
	Min    int    `yaml:"min"`
	Max    int    `yaml:"max"`
	Weight int    `yaml:"weight"`
}

// SkillSlot is one selectable skill of an archetype. Min ranks are bought
// from the base budget before free allocation starts.
type SkillSlot struct {
	Name   string `yaml:"name"`
	Min    int    `yaml:"min"`
	Cap    int    `yaml:"cap"`
	Weight int    `yaml:"weight"`
}

// PowerSlot is one purchasable special ability of an archetype
type PowerSlot struct {
	Name   string `yaml:"name"`
	Cost   int    `yaml:"cost"`
	Weight int    `yaml:"weight"`
}

// ArchetypeProfile is one immutable quick-creation template. Slice order is
// declaration order in the rulebook appendix and doubles as the
// deterministic tie-break order during allocation.
type ArchetypeProfile struct {
	ID         string           `yaml:"id"`
	Name       string           `yaml:"name"`
	Source     string           `yaml:"source"`
	Faction    insmv.Faction    `yaml:"-"`
	BaseBudget int              `yaml:"base_budget"`
	Attributes []AttributeRange `yaml:"attributes"`
	Skills     []SkillSlot      `yaml:"skills"`
	Powers     []PowerSlot      `yaml:"powers"`
}

// Scoring holds the power-score weights. They are rulebook data, not code.
type Scoring struct {
	Attribute int `yaml:"attribute"`
	Skill     int `yaml:"skill"`
	Power     int `yaml:"power"`
}

// MinSkillCost is the part of the budget consumed by minimum skill ranks
func (p *ArchetypeProfile) MinSkillCost() int {
	total := 0
	for _, s := range p.Skills {
		total += s.Min
	}
	return total
}

// Headroom is the number of budget points the profile can absorb beyond
// its minimums: attribute raises, skill raises, and power purchases
func (p *ArchetypeProfile) Headroom() int {
	total := 0
	for _, a := range p.Attributes {
		total += a.Max - a.Min
	}
	for _, s := range p.Skills {
		total += s.Cap - s.Min
	}
	for _, pw := range p.Powers {
		total += pw.Cost
	}
	return total
}

// Catalog is the validated, immutable set of archetype profiles
type Catalog struct {
	scoring   Scoring
	byFaction map[insmv.Faction][]*ArchetypeProfile
	index     map[insmv.Faction]map[string]*ArchetypeProfile
}

// New builds a catalog from profiles and scoring weights, validating every
// entry. Any authoring defect fails the whole catalog with a
// CatalogIntegrity error; nothing downstream ever re-checks these rules.
func New(profiles []*ArchetypeProfile, scoring Scoring) (*Catalog, error) {
	if scoring.Attribute < 1 || scoring.Skill < 1 || scoring.Power < 1 {
		return nil, errors.CatalogIntegrityf(
			"scoring weights must be positive (attribute=%d skill=%d power=%d)",
			scoring.Attribute, scoring.Skill, scoring.Power)
	}
	if len(profiles) == 0 {
		return nil, errors.CatalogIntegrity("catalog has no archetype profiles")
	}

	c := &Catalog{
		scoring:   scoring,
		byFaction: make(map[insmv.Faction][]*ArchetypeProfile),
		index:     make(map[insmv.Faction]map[string]*ArchetypeProfile),
	}

	for _, p := range profiles {
		if err := validateProfile(p); err != nil {
			return nil, err
		}
		if c.index[p.Faction] == nil {
			c.index[p.Faction] = make(map[string]*ArchetypeProfile)
		}
		if _, dup := c.index[p.Faction][p.ID]; dup {
			return nil, errors.CatalogIntegrityf("duplicate archetype id %q in faction %s", p.ID, p.Faction)
		}
		c.index[p.Faction][p.ID] = p
		c.byFaction[p.Faction] = append(c.byFaction[p.Faction], p)
	}

	return c, nil
}

func validateProfile(p *ArchetypeProfile) error {
	fail := func(format string, args ...interface{}) error {
		return errors.CatalogIntegrityf(format, args...).WithMeta("archetype_id", p.ID)
	}

	if p.ID == "" {
		return errors.CatalogIntegrity("archetype with empty id")
	}
	if p.Faction != insmv.FactionAngel && p.Faction != insmv.FactionDemon {
		return fail("archetype %q has unknown faction %q", p.ID, p.Faction)
	}
	if p.BaseBudget <= 0 {
		return fail("archetype %q has non-positive base budget %d", p.ID, p.BaseBudget)
	}
	if len(p.Attributes) == 0 {
		return fail("archetype %q declares no attributes", p.ID)
	}
	for _, a := range p.Attributes {
		if a.Min > a.Max {
			return fail("archetype %q attribute %q has inverted bounds (%d > %d)", p.ID, a.Name, a.Min, a.Max)
		}
		if a.Min < 0 {
			return fail("archetype %q attribute %q has negative minimum", p.ID, a.Name)
		}
		if a.Weight < 1 {
			return fail("archetype %q attribute %q has non-positive weight", p.ID, a.Name)
		}
	}
	for _, s := range p.Skills {
		if s.Min < 0 || s.Min > s.Cap {
			return fail("archetype %q skill %q has invalid minimum %d (cap %d)", p.ID, s.Name, s.Min, s.Cap)
		}
		if s.Weight < 1 {
			return fail("archetype %q skill %q has non-positive weight", p.ID, s.Name)
		}
	}
	for _, pw := range p.Powers {
		if pw.Cost <= 0 {
			return fail("archetype %q power %q has non-positive cost %d", p.ID, pw.Name, pw.Cost)
		}
		if pw.Weight < 1 {
			return fail("archetype %q power %q has non-positive weight", p.ID, pw.Name)
		}
	}

	// Minimum skill ranks are bought from the base budget; a budget that
	// cannot cover them is an authoring bug, caught here and not at
	// allocation time.
	if cost := p.MinSkillCost(); cost > p.BaseBudget {
		return fail("archetype %q minimum skill cost %d exceeds base budget %d", p.ID, cost, p.BaseBudget)
	}

	// The remaining budget must be fully spendable, otherwise every
	// allocation of this archetype deadlocks.
	if free := p.BaseBudget - p.MinSkillCost(); free > p.Headroom() {
		return fail("archetype %q budget %d cannot be fully spent (headroom %d)", p.ID, free, p.Headroom())
	}

	return nil
}

// Scoring returns the power-score weights
func (c *Catalog) Scoring() Scoring {
	return c.scoring
}

// Lookup returns the faction's archetype profiles in declaration order
func (c *Catalog) Lookup(faction insmv.Faction) ([]*ArchetypeProfile, error) {
	profiles, ok := c.byFaction[faction]
	if !ok {
		return nil, errors.NotFoundf("no archetypes for faction %q", faction)
	}
	return profiles, nil
}

// Get returns one archetype profile by faction and id
func (c *Catalog) Get(faction insmv.Faction, id string) (*ArchetypeProfile, error) {
	p, ok := c.index[faction][id]
	if !ok {
		return nil, errors.NotFoundf("archetype %q not found for faction %s", id, faction).
			WithMeta("archetype_id", id).
			WithMeta("faction", faction.String())
	}
	return p, nil
}
