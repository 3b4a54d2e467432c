package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoxgen/scox/internal/catalog"
	"github.com/scoxgen/scox/internal/entities/insmv"
	"github.com/scoxgen/scox/internal/errors"
)

func validScoring() catalog.Scoring {
	return catalog.Scoring{Attribute: 1, Skill: 1, Power: 1}
}

func validProfile() *catalog.ArchetypeProfile {
	return &catalog.ArchetypeProfile{
		ID:         "test",
		Name:       "Test",
		Faction:    insmv.FactionAngel,
		BaseBudget: 6,
		Attributes: []catalog.AttributeRange{
			{Name: "Force", Min: 2, Max: 4, Weight: 2},
			{Name: "Volonte", Min: 1, Max: 3, Weight: 1},
		},
		Skills: []catalog.SkillSlot{
			{Name: "enquete", Min: 1, Cap: 3, Weight: 2},
		},
		Powers: []catalog.PowerSlot{
			{Name: "benediction", Cost: 2, Weight: 1},
		},
	}
}

func TestLoad_ShippedCatalog(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	for _, faction := range insmv.Factions() {
		profiles, err := cat.Lookup(faction)
		require.NoError(t, err)
		assert.Len(t, profiles, 6, "faction %s", faction)

		for _, p := range profiles {
			assert.Equal(t, faction, p.Faction)
			assert.NotEmpty(t, p.Source)
			assert.GreaterOrEqual(t, p.Headroom(), p.BaseBudget-p.MinSkillCost(),
				"archetype %s must be able to spend its whole budget", p.ID)
		}
	}

	scoring := cat.Scoring()
	assert.Positive(t, scoring.Attribute)
	assert.Positive(t, scoring.Skill)
	assert.Positive(t, scoring.Power)
}

func TestLoad_PowerScoreTotalsStayTight(t *testing.T) {
	// The balancer relies on authored archetype totals staying inside the
	// default tolerance band; catch regressions when the tables change.
	cat, err := catalog.Load()
	require.NoError(t, err)

	for _, faction := range insmv.Factions() {
		profiles, err := cat.Lookup(faction)
		require.NoError(t, err)

		minTotal, maxTotal := 0, 0
		for i, p := range profiles {
			total := p.BaseBudget
			for _, a := range p.Attributes {
				total += a.Min
			}
			if i == 0 {
				minTotal, maxTotal = total, total
				continue
			}
			if total < minTotal {
				minTotal = total
			}
			if total > maxTotal {
				maxTotal = total
			}
		}
		assert.LessOrEqual(t, maxTotal-minTotal, 3, "faction %s", faction)
	}
}

func TestGet(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	p, err := cat.Get(insmv.FactionDemon, "corrupteur")
	require.NoError(t, err)
	assert.Equal(t, "Corrupteur", p.Name)

	_, err = cat.Get(insmv.FactionAngel, "corrupteur")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	_, err = cat.Get(insmv.FactionDemon, "nope")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestNew_ValidProfile(t *testing.T) {
	cat, err := catalog.New([]*catalog.ArchetypeProfile{validProfile()}, validScoring())
	require.NoError(t, err)

	p, err := cat.Get(insmv.FactionAngel, "test")
	require.NoError(t, err)
	assert.Equal(t, 6, p.BaseBudget)
}

func TestNew_InvertedBounds(t *testing.T) {
	p := validProfile()
	p.Attributes[0].Min = 5
	p.Attributes[0].Max = 3

	_, err := catalog.New([]*catalog.ArchetypeProfile{p}, validScoring())
	require.Error(t, err)
	assert.True(t, errors.IsCatalogIntegrity(err))
	assert.Contains(t, err.Error(), "inverted bounds")
}

func TestNew_MinimumSkillCostExceedsBudget(t *testing.T) {
	p := validProfile()
	p.BaseBudget = 2
	p.Skills = []catalog.SkillSlot{
		{Name: "enquete", Min: 3, Cap: 4, Weight: 1},
	}

	_, err := catalog.New([]*catalog.ArchetypeProfile{p}, validScoring())
	require.Error(t, err)
	assert.True(t, errors.IsCatalogIntegrity(err))
}

func TestNew_BudgetExceedsHeadroom(t *testing.T) {
	p := validProfile()
	p.BaseBudget = 50

	_, err := catalog.New([]*catalog.ArchetypeProfile{p}, validScoring())
	require.Error(t, err)
	assert.True(t, errors.IsCatalogIntegrity(err))
	assert.Contains(t, err.Error(), "cannot be fully spent")
}

func TestNew_DuplicateID(t *testing.T) {
	_, err := catalog.New([]*catalog.ArchetypeProfile{validProfile(), validProfile()}, validScoring())
	require.Error(t, err)
	assert.True(t, errors.IsCatalogIntegrity(err))
	assert.Contains(t, err.Error(), "duplicate archetype id")
}

func TestNew_NonPositiveWeight(t *testing.T) {
	p := validProfile()
	p.Skills[0].Weight = 0

	_, err := catalog.New([]*catalog.ArchetypeProfile{p}, validScoring())
	require.Error(t, err)
	assert.True(t, errors.IsCatalogIntegrity(err))
}

func TestNew_BadScoring(t *testing.T) {
	_, err := catalog.New([]*catalog.ArchetypeProfile{validProfile()}, catalog.Scoring{Attribute: 1, Skill: 0, Power: 1})
	require.Error(t, err)
	assert.True(t, errors.IsCatalogIntegrity(err))
}

func TestNew_EmptyCatalog(t *testing.T) {
	_, err := catalog.New(nil, validScoring())
	require.Error(t, err)
	assert.True(t, errors.IsCatalogIntegrity(err))
}

func TestLookup_UnknownFaction(t *testing.T) {
	cat, err := catalog.New([]*catalog.ArchetypeProfile{validProfile()}, validScoring())
	require.NoError(t, err)

	_, err = cat.Lookup(insmv.FactionDemon)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
