// Package txt renders one finished character as a compact text sheet, the
// format the table prints when no vector output is wanted.
package txt

import (
	"fmt"
	"io"
	"strings"

	"github.com/scoxgen/scox/internal/entities/insmv"
	"github.com/scoxgen/scox/internal/errors"
)

// Render writes the character as a short text paragraph
func Render(w io.Writer, ch *insmv.Character) error {
	if ch == nil {
		return errors.InvalidArgument("character is required")
	}

	name := ch.Name
	if name == "" {
		name = ch.ID
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s (%s)\n", name, ch.ArchetypeName, factionLabel(ch.Faction))
	fmt.Fprintf(&b, "Attributs : %s\n", joinRatings(ch.Attributes, false))
	fmt.Fprintf(&b, "Talents : %s\n", joinRatings(ch.Skills, true))
	fmt.Fprintf(&b, "Pouvoirs : %s\n", joinPowers(ch.Powers))

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return errors.Wrap(err, "failed to write text sheet")
	}
	return nil
}

func joinRatings(ratings []insmv.Rating, skipZero bool) string {
	parts := make([]string, 0, len(ratings))
	for _, r := range ratings {
		if skipZero && r.Value == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d", r.Name, r.Value))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func joinPowers(powers []insmv.Power) string {
	if len(powers) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(powers))
	for _, p := range powers {
		parts = append(parts, fmt.Sprintf("%s (%d)", p.Name, p.Cost))
	}
	return strings.Join(parts, ", ")
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
