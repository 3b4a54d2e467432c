package svg_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoxgen/scox/internal/entities/insmv"
	"github.com/scoxgen/scox/internal/errors"
	"github.com/scoxgen/scox/internal/export/svg"
)

func testCharacter() *insmv.Character {
	return &insmv.Character{
		ID:            "angel_001",
		Faction:       insmv.FactionAngel,
		ArchetypeID:   "gardien",
		ArchetypeName: "Gardien",
		Source:        "INS-MV 4, annexe Creation Rapide",
		Attributes: []insmv.Rating{
			{Name: "Force", Value: 3},
			{Name: "Volonte", Value: 2},
		},
		Skills: []insmv.Rating{
			{Name: "vigilance", Value: 2},
			{Name: "discretion", Value: 0},
		},
		Powers: []insmv.Power{
			{Name: "aura de protection", Cost: 2},
		},
		PowerScore: 25,
	}
}

func render(t *testing.T, ch *insmv.Character) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, svg.Render(&buf, ch))
	return buf.String()
}

func TestRender_ContainsSheetBlocks(t *testing.T) {
	out := render(t, testCharacter())

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")

	assert.Contains(t, out, "Attributs")
	assert.Contains(t, out, "Talents")
	assert.Contains(t, out, "Pouvoirs")
	assert.Contains(t, out, "Ange - Gardien")
	assert.Contains(t, out, "Force")
	assert.Contains(t, out, "aura de protection")
}

func TestRender_UnnamedCharacterGetsPlaceholder(t *testing.T) {
	ch := testCharacter()
	ch.Name = ""

	out := render(t, ch)
	assert.Contains(t, out, "________")
}

func TestRender_ZeroSkillDrawnAsDash(t *testing.T) {
	ch := testCharacter()
	out := render(t, ch)

	// The zero-rank skill still gets its label, so an empty slot on the
	// sheet is visibly empty rather than missing.
	assert.Contains(t, out, "discretion")
}

func TestRender_Deterministic(t *testing.T) {
	first := render(t, testCharacter())
	second := render(t, testCharacter())
	assert.Equal(t, first, second)
}

func TestRender_TruncatesLongNames(t *testing.T) {
	ch := testCharacter()
	ch.Name = strings.Repeat("Tresmegiste", 10)

	out := render(t, ch)
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, ch.Name)
}

func TestRender_DemonLabel(t *testing.T) {
	ch := testCharacter()
	ch.Faction = insmv.FactionDemon

	out := render(t, ch)
	assert.Contains(t, out, "Demon - Gardien")
}

func TestRender_NilCharacter(t *testing.T) {
	var buf bytes.Buffer
	err := svg.Render(&buf, nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
