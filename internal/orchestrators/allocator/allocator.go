// Package allocator implements the allocation engine: it turns one
// archetype profile into one concrete character by spending the profile's
// point budget under its declared constraints.
package allocator

//go:generate mockgen -destination=mock/mock_service.go -package=allocatormock github.com/scoxgen/scox/internal/orchestrators/allocator Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/scoxgen/scox/internal/catalog"
	"github.com/scoxgen/scox/internal/entities/insmv"
	"github.com/scoxgen/scox/internal/errors"
)

// Service defines the interface for character allocation
type Service interface {
	Allocate(ctx context.Context, input *AllocateInput) (*AllocateOutput, error)
}

// Config holds the dependencies for the allocator
type Config struct {
	Scoring catalog.Scoring
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Scoring.Attribute < 1 {
		vb.InvalidField("Scoring.Attribute", "must be positive")
	}
	if c.Scoring.Skill < 1 {
		vb.InvalidField("Scoring.Skill", "must be positive")
	}
	if c.Scoring.Power < 1 {
		vb.InvalidField("Scoring.Power", "must be positive")
	}

	return vb.Build()
}

type orchestrator struct {
	scoring catalog.Scoring
}

// NewOrchestrator creates a new allocator with the provided configuration
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{scoring: cfg.Scoring}, nil
}

// increment kinds, in deterministic tie-break order: attributes before
// skills before powers, each in catalog declaration order
const (
	incAttribute = iota
	incSkill
	incPower
)

// option is one legal single-unit spend
type option struct {
	kind   int
	index  int
	weight int
	cost   int
}

// Allocate distributes the profile's budget and returns a finished
// character with remaining budget zero. Ties between equally weighted
// options are broken by declaration order before randomness applies, so a
// fixed roller stream yields a bit-identical character.
func (o *orchestrator) Allocate(ctx context.Context, input *AllocateInput) (*AllocateOutput, error) {
	if input == nil || input.Profile == nil {
		return nil, errors.InvalidArgument("profile is required")
	}
	if input.Roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}
	p := input.Profile

	attrVals := make([]int, len(p.Attributes))
	for i, a := range p.Attributes {
		attrVals[i] = a.Min
	}
	skillVals := make([]int, len(p.Skills))
	for i, s := range p.Skills {
		skillVals[i] = s.Min
	}
	powerBought := make([]bool, len(p.Powers))

	// Minimum skill ranks are bought up front from the base budget.
	remaining := p.BaseBudget - p.MinSkillCost()
	if remaining < 0 {
		return nil, errors.AllocationDeadlockf(
			"archetype %q budget %d cannot cover minimum skill ranks", p.ID, p.BaseBudget).
			WithMeta("archetype_id", p.ID)
	}

	for remaining > 0 {
		options := legalOptions(p, attrVals, skillVals, powerBought, remaining)
		if len(options) == 0 {
			return nil, errors.AllocationDeadlockf(
				"archetype %q has %d budget left but no legal increment", p.ID, remaining).
				WithMeta("archetype_id", p.ID).
				WithMeta("remaining_budget", remaining)
		}

		picked, err := draw(input.Roller, options)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to draw increment for archetype %q", p.ID)
		}

		switch picked.kind {
		case incAttribute:
			attrVals[picked.index]++
		case incSkill:
			skillVals[picked.index]++
		case incPower:
			powerBought[picked.index] = true
		}
		remaining -= picked.cost
	}

	ch := o.buildCharacter(input, attrVals, skillVals, powerBought)
	slog.DebugContext(ctx, "allocated character",
		"archetype_id", p.ID,
		"faction", p.Faction.String(),
		"power_score", ch.PowerScore)

	return &AllocateOutput{Character: ch}, nil
}

// legalOptions enumerates every legal single-unit increment in declaration order
func legalOptions(p *catalog.ArchetypeProfile, attrVals, skillVals []int, powerBought []bool, remaining int) []option {
	options := make([]option, 0, len(p.Attributes)+len(p.Skills)+len(p.Powers))
	for i, a := range p.Attributes {
		if attrVals[i] < a.Max {
			options = append(options, option{kind: incAttribute, index: i, weight: a.Weight, cost: 1})
		}
	}
	for i, s := range p.Skills {
		if skillVals[i] < s.Cap {
			options = append(options, option{kind: incSkill, index: i, weight: s.Weight, cost: 1})
		}
	}
	for i, pw := range p.Powers {
		if !powerBought[i] && pw.Cost <= remaining {
			options = append(options, option{kind: incPower, index: i, weight: pw.Weight, cost: pw.Cost})
		}
	}
	return options
}

// draw picks one option by weighted roll over the total weight
func draw(r dice.Roller, options []option) (option, error) {
	total := 0
	for _, op := range options {
		total += op.weight
	}

	roll, err := r.Roll(total)
	if err != nil {
		return option{}, err
	}

	cumulative := 0
	for _, op := range options {
		cumulative += op.weight
		if roll <= cumulative {
			return op, nil
		}
	}
	// Unreachable while Roll honors its [1, total] contract.
	return options[len(options)-1], nil
}

func (o *orchestrator) buildCharacter(input *AllocateInput, attrVals, skillVals []int, powerBought []bool) *insmv.Character {
	p := input.Profile

	ch := &insmv.Character{
		ID:            input.CharacterID,
		Faction:       p.Faction,
		ArchetypeID:   p.ID,
		ArchetypeName: p.Name,
		Source:        p.Source,
		Attributes:    make([]insmv.Rating, len(p.Attributes)),
		Skills:        make([]insmv.Rating, len(p.Skills)),
	}

	score := 0
	for i, a := range p.Attributes {
		ch.Attributes[i] = insmv.Rating{Name: a.Name, Value: attrVals[i]}
		score += o.scoring.Attribute * attrVals[i]
	}
	for i, s := range p.Skills {
		ch.Skills[i] = insmv.Rating{Name: s.Name, Value: skillVals[i]}
		score += o.scoring.Skill * skillVals[i]
	}
	for i, pw := range p.Powers {
		if powerBought[i] {
			ch.Powers = append(ch.Powers, insmv.Power{Name: pw.Name, Cost: pw.Cost})
			score += o.scoring.Power * pw.Cost
		}
	}
	ch.PowerScore = score

	return ch
}
