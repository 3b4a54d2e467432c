package team

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/scoxgen/scox/internal/entities/insmv"
)

// Default assembly parameters
const (
	DefaultDuplicateCap = 2
	DefaultTolerance    = 3
	DefaultMaxRetries   = 20
)

// AssembleInput describes one team generation request
type AssembleInput struct {
	Faction      insmv.Faction
	Size         int
	DuplicateCap int
	Tolerance    int
	Seed         int64
	Roller       dice.Roller
}

// AssembleOutput holds one balanced team
type AssembleOutput struct {
	Team *insmv.Team
}
