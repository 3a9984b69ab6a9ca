// SPDX-License-Identifier: MIT
// Package: former-solver/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/mhusbyn/former-solver/grid"
)

// BuilderOption customizes a build by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithSize sets the board dimensions. Panics if either is < 1.
func WithSize(height, width int) BuilderOption {
	if height < 1 || width < 1 {
		panic("builder: WithSize(height<1 || width<1)")
	}
	return func(c *builderConfig) {
		c.height, c.width = height, width
	}
}

// WithRand provides an explicit RNG for Random. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPalette sets the colours Random draws from.
// Panics on an empty palette or one containing grid.Empty.
func WithPalette(colours ...grid.Colour) BuilderOption {
	if len(colours) == 0 {
		panic("builder: WithPalette()")
	}
	own := make([]grid.Colour, len(colours))
	for i, c := range colours {
		if c == grid.Empty {
			panic("builder: WithPalette(grid.Empty)")
		}
		own[i] = c
	}
	return func(c *builderConfig) {
		c.palette = own
	}
}
