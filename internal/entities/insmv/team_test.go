package insmv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoxgen/scox/internal/entities/insmv"
)

func TestParseFaction(t *testing.T) {
	f, err := insmv.ParseFaction("angel")
	require.NoError(t, err)
	assert.Equal(t, insmv.FactionAngel, f)

	f, err = insmv.ParseFaction("demon")
	require.NoError(t, err)
	assert.Equal(t, insmv.FactionDemon, f)

	_, err = insmv.ParseFaction("imp")
	require.Error(t, err)
}

func TestTeam_PowerSpread(t *testing.T) {
	team := &insmv.Team{}
	assert.Equal(t, 0, team.PowerSpread())

	team.Characters = []*insmv.Character{
		{ArchetypeID: "gardien", PowerScore: 25},
		{ArchetypeID: "erudit", PowerScore: 24},
		{ArchetypeID: "justicier", PowerScore: 26},
		{ArchetypeID: "gardien", PowerScore: 25},
	}
	assert.Equal(t, 4, team.Size())
	assert.Equal(t, 2, team.PowerSpread())

	counts := team.ArchetypeCounts()
	assert.Equal(t, 2, counts["gardien"])
	assert.Equal(t, 1, counts["erudit"])
	assert.Equal(t, 1, counts["justicier"])
}

func TestCharacter_Lookups(t *testing.T) {
	ch := &insmv.Character{
		Attributes: []insmv.Rating{{Name: "Force", Value: 3}},
		Skills:     []insmv.Rating{{Name: "vigilance", Value: 2}},
		Powers:     []insmv.Power{{Name: "aura", Cost: 2}},
	}

	v, ok := ch.Attribute("Force")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = ch.Attribute("Chance")
	assert.False(t, ok)

	v, ok = ch.Skill("vigilance")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	assert.True(t, ch.HasPower("aura"))
	assert.False(t, ch.HasPower("rempart"))
}
