package allocator

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/scoxgen/scox/internal/catalog"
	"github.com/scoxgen/scox/internal/entities/insmv"
)

// AllocateInput holds one allocation request. The roller is injected per
// call so that a whole run shares one seeded random stream.
type AllocateInput struct {
	Profile     *catalog.ArchetypeProfile
	Roller      dice.Roller
	CharacterID string
}

// AllocateOutput holds one fully allocated character
type AllocateOutput struct {
	Character *insmv.Character
}
