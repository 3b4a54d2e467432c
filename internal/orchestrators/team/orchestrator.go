// Package team implements the team balancer: it assembles a faction team of
// the requested size, enforcing the archetype duplicate cap and keeping the
// power-score spread inside the tolerance band.
package team

//go:generate mockgen -destination=mock/mock_service.go -package=teammock github.com/scoxgen/scox/internal/orchestrators/team Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/scoxgen/scox/internal/catalog"
	"github.com/scoxgen/scox/internal/entities/insmv"
	"github.com/scoxgen/scox/internal/errors"
	"github.com/scoxgen/scox/internal/orchestrators/allocator"
	"github.com/scoxgen/scox/internal/pkg/idgen"
)

// Service defines the interface for team assembly
type Service interface {
	Assemble(ctx context.Context, input *AssembleInput) (*AssembleOutput, error)
}

// Config holds the dependencies for the team balancer
type Config struct {
	Catalog     *catalog.Catalog
	Allocator   allocator.Service
	IDGenerator idgen.Generator

	// MaxRetries bounds candidate draws per slot before the tolerance is
	// widened; defaults to DefaultMaxRetries
	MaxRetries int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Allocator == nil {
		vb.RequiredField("Allocator")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog    *catalog.Catalog
	allocator  allocator.Service
	idGen      idgen.Generator
	maxRetries int
}

// NewOrchestrator creates a new team balancer with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = DefaultMaxRetries
	}

	return &orchestrator{
		catalog:    cfg.Catalog,
		allocator:  cfg.Allocator,
		idGen:      cfg.IDGenerator,
		maxRetries: maxRetries,
	}, nil
}

// Assemble fills the requested team slot by slot. Per slot it draws an
// archetype from the pool still under the duplicate cap, allocates a
// candidate, and accepts it only if the running power-score spread stays
// within tolerance. After maxRetries rejected candidates the tolerance is
// widened by one for that slot and one final candidate is drawn; if that
// one is rejected too, the whole assembly fails. No partial team is ever
// returned.
func (o *orchestrator) Assemble(ctx context.Context, input *AssembleInput) (*AssembleOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	profiles, err := o.catalog.Lookup(input.Faction)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up faction %s", input.Faction)
	}

	dupCap := input.DuplicateCap
	if dupCap == 0 {
		dupCap = DefaultDuplicateCap
	}

	t := &insmv.Team{
		Faction: input.Faction,
		Seed:    input.Seed,
	}
	counts := make(map[string]int)

	for slot := 0; slot < input.Size; slot++ {
		ch, widened, err := o.fillSlot(ctx, input, profiles, counts, t, slot, dupCap)
		if err != nil {
			return nil, err
		}
		t.Characters = append(t.Characters, ch)
		counts[ch.ArchetypeID]++
		if widened {
			t.WidenedSlots = append(t.WidenedSlots, slot)
			slog.WarnContext(ctx, "slot accepted under widened tolerance",
				"faction", input.Faction.String(),
				"slot", slot,
				"tolerance", input.Tolerance+1)
		}
	}

	slog.InfoContext(ctx, "team assembled",
		"faction", input.Faction.String(),
		"size", t.Size(),
		"power_spread", t.PowerSpread(),
		"widened_slots", len(t.WidenedSlots))

	return &AssembleOutput{Team: t}, nil
}

func validateInput(input *AssembleInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Faction != insmv.FactionAngel && input.Faction != insmv.FactionDemon {
		vb.InvalidField("Faction", "must be angel or demon")
	}
	if input.Size < 1 {
		vb.InvalidField("Size", "must be at least 1")
	}
	if input.DuplicateCap < 0 {
		vb.InvalidField("DuplicateCap", "must not be negative")
	}
	if input.Tolerance < 0 {
		vb.InvalidField("Tolerance", "must not be negative")
	}
	if input.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

// fillSlot produces the accepted character for one slot, reporting whether
// the widened tolerance was needed
func (o *orchestrator) fillSlot(
	ctx context.Context,
	input *AssembleInput,
	profiles []*catalog.ArchetypeProfile,
	counts map[string]int,
	t *insmv.Team,
	slot, dupCap int,
) (*insmv.Character, bool, error) {
	// maxRetries candidates at the requested tolerance, then exactly one
	// more at tolerance+1.
	for attempt := 0; attempt <= o.maxRetries; attempt++ {
		widened := attempt == o.maxRetries
		tolerance := input.Tolerance
		if widened {
			tolerance++
		}

		candidate, err := o.drawCandidate(ctx, input, profiles, counts, slot, dupCap)
		if err != nil {
			return nil, false, err
		}

		if spreadWith(t, candidate) <= tolerance {
			return candidate, widened, nil
		}

		slog.DebugContext(ctx, "candidate rejected for balance",
			"faction", input.Faction.String(),
			"slot", slot,
			"attempt", attempt,
			"candidate_score", candidate.PowerScore)
	}

	return nil, false, errors.TeamBalancef(
		"faction %s slot %d exhausted its retry budget, even under widened tolerance",
		input.Faction, slot).
		WithMeta("faction", input.Faction.String()).
		WithMeta("slot", slot)
}

// drawCandidate picks an archetype still under the duplicate cap and runs
// the allocator on it
func (o *orchestrator) drawCandidate(
	ctx context.Context,
	input *AssembleInput,
	profiles []*catalog.ArchetypeProfile,
	counts map[string]int,
	slot, dupCap int,
) (*insmv.Character, error) {
	eligible := make([]*catalog.ArchetypeProfile, 0, len(profiles))
	for _, p := range profiles {
		if counts[p.ID] < dupCap {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		return nil, errors.TeamBalancef(
			"faction %s slot %d has no archetype left under duplicate cap %d",
			input.Faction, slot, dupCap).
			WithMeta("faction", input.Faction.String()).
			WithMeta("slot", slot).
			WithMeta("duplicate_cap", dupCap)
	}

	pick, err := pickUniform(input.Roller, len(eligible))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to draw archetype for slot %d", slot)
	}

	out, err := o.allocator.Allocate(ctx, &allocator.AllocateInput{
		Profile:     eligible[pick],
		Roller:      input.Roller,
		CharacterID: o.idGen.Generate(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to allocate archetype %q for slot %d", eligible[pick].ID, slot)
	}

	return out.Character, nil
}

// pickUniform draws an index in [0, n)
func pickUniform(r dice.Roller, n int) (int, error) {
	roll, err := r.Roll(n)
	if err != nil {
		return 0, err
	}
	return roll - 1, nil
}

// spreadWith returns the team's power-score spread including the candidate
func spreadWith(t *insmv.Team, candidate *insmv.Character) int {
	minScore, maxScore := candidate.PowerScore, candidate.PowerScore
	for _, c := range t.Characters {
		if c.PowerScore < minScore {
			minScore = c.PowerScore
		}
		if c.PowerScore > maxScore {
			maxScore = c.PowerScore
		}
	}
	return maxScore - minScore
}
