// SPDX-License-Identifier: MIT
// Package: former-solver/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • height × width = grid.DefaultHeight × grid.DefaultWidth (9×7)
//   • palette        = grid.Palette()  (O, G, B, R)
//   • rng            = nil             (pure unless seeded)

package builder

import (
	"math/rand"

	"github.com/mhusbyn/former-solver/grid"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	height  int
	width   int
	palette []grid.Colour
	// rng is nil unless WithSeed/WithRand was given.
	rng *rand.Rand
}

// newBuilderConfig applies options over the defaults, last one wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		height:  grid.DefaultHeight,
		width:   grid.DefaultWidth,
		palette: grid.Palette(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// blank returns an all-Empty height×width working matrix.
func (c builderConfig) blank() [][]grid.Colour {
	m := make([][]grid.Colour, c.height)
	for r := range m {
		m[r] = make([]grid.Colour, c.width)
	}
	return m
}
