// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// PrefixedGenerator generates IDs with a specific prefix. Used for stored
// records, where uniqueness matters and reproducibility does not.
type PrefixedGenerator struct {
	prefix string
}

// NewPrefixed creates a new generator with the given prefix
func NewPrefixed(prefix string) *PrefixedGenerator {
	return &PrefixedGenerator{prefix: prefix}
}

// Generate creates a new ID with the format: prefix_uuid
func (g *PrefixedGenerator) Generate() string {
	return fmt.Sprintf("%s_%s", g.prefix, uuid.NewString())
}

// SequentialGenerator hands out prefix_001, prefix_002, ... Generated
// characters carry these so that equal-seed runs produce byte-identical
// output; a timestamped or random ID would break that.
type SequentialGenerator struct {
	prefix string
	n      atomic.Int64
}

// NewSequential creates a new sequential generator with the given prefix
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next ID in the sequence
func (g *SequentialGenerator) Generate() string {
	return fmt.Sprintf("%s_%03d", g.prefix, g.n.Add(1))
}
