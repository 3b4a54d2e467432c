// Package roller provides a seeded dice.Roller. Every random decision in a
// generation run is drawn from one of these, so a run is exactly
// reproducible from its seed.
package roller

import (
	"math/rand"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/scoxgen/scox/internal/errors"
)

// Seeded implements dice.Roller on top of a seeded math/rand source.
// Not safe for concurrent use; generation is sequential by design.
type Seeded struct {
	rng *rand.Rand
}

// Ensure Seeded implements dice.Roller
var _ dice.Roller = (*Seeded)(nil)

// NewSeeded creates a roller whose whole output stream is determined by seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))} // #nosec G404 // determinism is the point
}

// Roll returns a uniform value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidArgumentf("invalid die size: %d", size)
	}
	return s.rng.Intn(size) + 1, nil
}

// RollN returns count uniform values in [1, size]
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("invalid roll count: %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
