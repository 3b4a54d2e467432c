package team_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/scoxgen/scox/internal/catalog"
	"github.com/scoxgen/scox/internal/entities/insmv"
	"github.com/scoxgen/scox/internal/errors"
	"github.com/scoxgen/scox/internal/orchestrators/allocator"
	allocatormock "github.com/scoxgen/scox/internal/orchestrators/allocator/mock"
	"github.com/scoxgen/scox/internal/orchestrators/team"
	"github.com/scoxgen/scox/internal/pkg/idgen"
	"github.com/scoxgen/scox/internal/pkg/roller"
)

type TeamTestSuite struct {
	suite.Suite
	ctx     context.Context
	catalog *catalog.Catalog
}

func (s *TeamTestSuite) SetupTest() {
	s.ctx = context.Background()

	cat, err := catalog.Load()
	s.Require().NoError(err)
	s.catalog = cat
}

// newService wires a balancer against the real allocator and shipped catalog
func (s *TeamTestSuite) newService() team.Service {
	alloc, err := allocator.NewOrchestrator(&allocator.Config{Scoring: s.catalog.Scoring()})
	s.Require().NoError(err)

	service, err := team.NewOrchestrator(&team.Config{
		Catalog:     s.catalog,
		Allocator:   alloc,
		IDGenerator: idgen.NewSequential("angel"),
	})
	s.Require().NoError(err)
	return service
}

func (s *TeamTestSuite) TestAssemble_BalancedTeam() {
	service := s.newService()

	out, err := service.Assemble(s.ctx, &team.AssembleInput{
		Faction:      insmv.FactionAngel,
		Size:         4,
		DuplicateCap: 2,
		Tolerance:    3,
		Seed:         42,
		Roller:       roller.NewSeeded(42),
	})
	s.Require().NoError(err)

	t := out.Team
	s.Equal(insmv.FactionAngel, t.Faction)
	s.Equal(int64(42), t.Seed)
	s.Equal(4, t.Size())
	s.LessOrEqual(t.PowerSpread(), 3)
	s.Empty(t.WidenedSlots)

	for id, n := range t.ArchetypeCounts() {
		s.LessOrEqual(n, 2, "archetype %s", id)
	}
	for i, ch := range t.Characters {
		s.NotEmpty(ch.ID, "slot %d", i)
		s.Equal(insmv.FactionAngel, ch.Faction, "slot %d", i)
	}
}

func (s *TeamTestSuite) TestAssemble_Deterministic() {
	first, err := s.newService().Assemble(s.ctx, &team.AssembleInput{
		Faction: insmv.FactionAngel,
		Size:    4,
		Seed:    42,
		Roller:  roller.NewSeeded(42),
	})
	s.Require().NoError(err)

	second, err := s.newService().Assemble(s.ctx, &team.AssembleInput{
		Faction: insmv.FactionAngel,
		Size:    4,
		Seed:    42,
		Roller:  roller.NewSeeded(42),
	})
	s.Require().NoError(err)

	s.Equal(first.Team, second.Team)
}

func (s *TeamTestSuite) TestAssemble_DuplicateCapExhaustsPool() {
	// Six demon archetypes at cap 1 cannot fill seven slots.
	service := s.newService()

	_, err := service.Assemble(s.ctx, &team.AssembleInput{
		Faction:      insmv.FactionDemon,
		Size:         7,
		DuplicateCap: 1,
		Tolerance:    3,
		Roller:       roller.NewSeeded(9),
	})
	s.Require().Error(err)
	s.True(errors.IsTeamBalance(err))

	meta := errors.GetMeta(err)
	s.Require().NotNil(meta)
	s.Equal(6, meta["slot"])
	s.Equal(1, meta["duplicate_cap"])
}

func (s *TeamTestSuite) TestAssemble_FullPoolAtCap() {
	// Twelve slots at cap 2 uses every archetype exactly twice.
	service := s.newService()

	out, err := service.Assemble(s.ctx, &team.AssembleInput{
		Faction:      insmv.FactionAngel,
		Size:         12,
		DuplicateCap: 2,
		Tolerance:    3,
		Roller:       roller.NewSeeded(3),
	})
	s.Require().NoError(err)

	s.Equal(12, out.Team.Size())
	counts := out.Team.ArchetypeCounts()
	s.Len(counts, 6)
	for id, n := range counts {
		s.Equal(2, n, "archetype %s", id)
	}
}

func (s *TeamTestSuite) TestAssemble_WidenedTolerance() {
	ctrl := gomock.NewController(s.T())
	mockAlloc := allocatormock.NewMockService(ctrl)

	service, err := team.NewOrchestrator(&team.Config{
		Catalog:     s.catalog,
		Allocator:   mockAlloc,
		IDGenerator: idgen.NewSequential("angel"),
		MaxRetries:  3,
	})
	s.Require().NoError(err)

	// Slot 0 lands at score 10; every later candidate scores 14, outside
	// tolerance 3 but inside the widened band of 4. Slot 1 therefore burns
	// its three retries and accepts on the widened final attempt.
	scored := func(score int) *allocator.AllocateOutput {
		return &allocator.AllocateOutput{Character: &insmv.Character{
			ID:          "angel_x",
			Faction:     insmv.FactionAngel,
			ArchetypeID: "gardien",
			PowerScore:  score,
		}}
	}
	gomock.InOrder(
		mockAlloc.EXPECT().Allocate(gomock.Any(), gomock.Any()).Return(scored(10), nil),
		mockAlloc.EXPECT().Allocate(gomock.Any(), gomock.Any()).Return(scored(14), nil).Times(4),
	)

	out, err := service.Assemble(s.ctx, &team.AssembleInput{
		Faction:   insmv.FactionAngel,
		Size:      2,
		Tolerance: 3,
		Roller:    roller.NewSeeded(1),
	})
	s.Require().NoError(err)

	s.Equal(2, out.Team.Size())
	s.Equal([]int{1}, out.Team.WidenedSlots)
	s.Equal(4, out.Team.PowerSpread())
}

func (s *TeamTestSuite) TestAssemble_BalanceFailure() {
	ctrl := gomock.NewController(s.T())
	mockAlloc := allocatormock.NewMockService(ctrl)

	service, err := team.NewOrchestrator(&team.Config{
		Catalog:     s.catalog,
		Allocator:   mockAlloc,
		IDGenerator: idgen.NewSequential("angel"),
		MaxRetries:  3,
	})
	s.Require().NoError(err)

	// Score 15 against 10 is outside even the widened band, so slot 1
	// fails after its final widened attempt.
	scored := func(score int) *allocator.AllocateOutput {
		return &allocator.AllocateOutput{Character: &insmv.Character{
			ID:          "angel_x",
			Faction:     insmv.FactionAngel,
			ArchetypeID: "gardien",
			PowerScore:  score,
		}}
	}
	gomock.InOrder(
		mockAlloc.EXPECT().Allocate(gomock.Any(), gomock.Any()).Return(scored(10), nil),
		mockAlloc.EXPECT().Allocate(gomock.Any(), gomock.Any()).Return(scored(15), nil).Times(4),
	)

	_, err = service.Assemble(s.ctx, &team.AssembleInput{
		Faction:   insmv.FactionAngel,
		Size:      2,
		Tolerance: 3,
		Roller:    roller.NewSeeded(1),
	})
	s.Require().Error(err)
	s.True(errors.IsTeamBalance(err))

	meta := errors.GetMeta(err)
	s.Require().NotNil(meta)
	s.Equal(1, meta["slot"])
	s.Equal("angel", meta["faction"])
}

func (s *TeamTestSuite) TestAssemble_AllocatorErrorPropagates() {
	ctrl := gomock.NewController(s.T())
	mockAlloc := allocatormock.NewMockService(ctrl)

	service, err := team.NewOrchestrator(&team.Config{
		Catalog:     s.catalog,
		Allocator:   mockAlloc,
		IDGenerator: idgen.NewSequential("angel"),
	})
	s.Require().NoError(err)

	mockAlloc.EXPECT().
		Allocate(gomock.Any(), gomock.Any()).
		Return(nil, errors.AllocationDeadlockf("stranded budget"))

	_, err = service.Assemble(s.ctx, &team.AssembleInput{
		Faction: insmv.FactionAngel,
		Size:    1,
		Roller:  roller.NewSeeded(1),
	})
	s.Require().Error(err)
	s.True(errors.IsAllocationDeadlock(err))
}

func (s *TeamTestSuite) TestAssemble_InvalidInput() {
	service := s.newService()

	_, err := service.Assemble(s.ctx, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = service.Assemble(s.ctx, &team.AssembleInput{
		Faction: insmv.FactionAngel,
		Size:    0,
		Roller:  roller.NewSeeded(1),
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = service.Assemble(s.ctx, &team.AssembleInput{
		Faction: insmv.FactionAngel,
		Size:    4,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = service.Assemble(s.ctx, &team.AssembleInput{
		Faction: insmv.Faction("imp"),
		Size:    4,
		Roller:  roller.NewSeeded(1),
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *TeamTestSuite) TestNewOrchestrator_MissingDependencies() {
	_, err := team.NewOrchestrator(&team.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestTeamTestSuite(t *testing.T) {
	suite.Run(t, new(TeamTestSuite))
}
