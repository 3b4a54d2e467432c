// Package svg renders one finished character as a self-contained vector
// sheet. Rendering is a pure function of the character: same input, same
// bytes. Overflowing text is truncated deterministically, never allowed to
// corrupt the neighbouring block.
package svg

import (
	"io"
	"log/slog"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/scoxgen/scox/internal/entities/insmv"
	"github.com/scoxgen/scox/internal/errors"
)

// Sheet geometry, half-scale A4 at 150 dpi
const (
	canvasWidth  = 1240
	canvasHeight = 1754

	marginX    = 80
	lineHeight = 44

	headerY     = 120
	attributesY = 340
	skillsY     = attributesY + 8*lineHeight
	powersY     = skillsY + 10*lineHeight

	// column budgets in characters; anything longer is truncated
	maxNameChars  = 32
	maxLabelChars = 24
)

const (
	fontTitle = "font-size:34px;font-family:'Traveling Typewriter',monospace;font-weight:bold"
	fontLabel = "font-size:26px;font-family:'Traveling Typewriter',monospace"
	fontSmall = "font-size:20px;font-family:'Traveling Typewriter',monospace"
	fontRank  = "font-size:26px;font-family:'Baron Kuffner',serif"
)

// namePlaceholder is printed when the character has no name yet
const namePlaceholder = "________________"

// Render writes the character sheet as SVG
func Render(w io.Writer, ch *insmv.Character) error {
	if ch == nil {
		return errors.InvalidArgument("character is required")
	}

	canvas := svg.New(w)
	canvas.Start(canvasWidth, canvasHeight)
	canvas.Rect(marginX/2, marginX/2, canvasWidth-marginX, canvasHeight-marginX,
		"fill:none;stroke:black;stroke-width:3")

	renderHeader(canvas, ch)
	renderRatings(canvas, "Attributs", ch.Attributes, attributesY, false)
	renderRatings(canvas, "Talents", ch.Skills, skillsY, true)
	renderPowers(canvas, ch)

	canvas.End()
	return nil
}

func renderHeader(canvas *svg.SVG, ch *insmv.Character) {
	name := ch.Name
	if name == "" {
		name = namePlaceholder
	}
	canvas.Text(marginX, headerY, truncate(name, maxNameChars, "name"), fontTitle)
	canvas.Text(marginX, headerY+lineHeight,
		factionLabel(ch.Faction)+" - "+truncate(ch.ArchetypeName, maxLabelChars, "archetype"), fontLabel)
	canvas.Text(marginX, headerY+2*lineHeight, truncate(ch.Source, maxNameChars+8, "source"), fontSmall)
	canvas.Line(marginX, headerY+2*lineHeight+20, canvasWidth-marginX, headerY+2*lineHeight+20,
		"stroke:black;stroke-width:2")
}

// renderRatings draws a titled block of name/value lines. Zero values are
// drawn as a dash when skipZero is set, matching the look of an unfilled
// paper sheet.
func renderRatings(canvas *svg.SVG, title string, ratings []insmv.Rating, y int, skipZero bool) {
	canvas.Text(marginX, y, title, fontTitle)
	line := 1
	for _, rt := range ratings {
		label := truncate(rt.Name, maxLabelChars, "rating")
		canvas.Text(marginX+20, y+line*lineHeight, label, fontLabel)
		if skipZero && rt.Value == 0 {
			canvas.Text(marginX+560, y+line*lineHeight, "-", fontRank)
		} else {
			canvas.Text(marginX+560, y+line*lineHeight, rank(rt.Value), fontRank)
		}
		line++
	}
}

func renderPowers(canvas *svg.SVG, ch *insmv.Character) {
	canvas.Text(marginX, powersY, "Pouvoirs", fontTitle)
	line := 1
	for _, p := range ch.Powers {
		canvas.Text(marginX+20, powersY+line*lineHeight, truncate(p.Name, maxLabelChars, "power"), fontLabel)
		canvas.Text(marginX+560, powersY+line*lineHeight, rank(p.Cost), fontSmall)
		line++
	}
	if len(ch.Powers) == 0 {
		canvas.Text(marginX+20, powersY+lineHeight, "-", fontLabel)
	}
}

func factionLabel(f insmv.Faction) string {
	switch f {
	case insmv.FactionAngel:
		return "Ange"
	case insmv.FactionDemon:
		return "Demon"
	default:
		return string(f)
	}
}

func rank(v int) string {
	return strconv.Itoa(v)
}

// truncate cuts s to max runes, marking the cut with an ellipsis. The cut
// is logged but non-fatal.
func truncate(s string, max int, field string) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	slog.Warn("sheet field truncated", "field", field, "length", len(runes), "max", max)
	return string(runes[:max-1]) + "…"
}
