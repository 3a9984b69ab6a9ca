// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/mhusbyn/former-solver/grid"
)

// Constructor paints a working matrix of cfg.height×cfg.width cells.
// Constructors run in order, each over the result of the previous one.
type Constructor func(cells [][]grid.Colour, cfg builderConfig) error

// Build resolves opts, runs every constructor over an all-Empty board and
// returns the resulting grid.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped with "Build: ".
func Build(opts []BuilderOption, cons ...Constructor) (*grid.Grid, error) {
	cfg := newBuilderConfig(opts...)
	cells := cfg.blank()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuild, i, ErrConstructFailed)
		}
		if err := fn(cells, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}

	g, err := grid.New(cells, grid.WithSize(cfg.height, cfg.width))
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodBuild, err, ErrConstructFailed)
	}
	return g, nil
}

// MustBuild is like Build but panics on error. Intended for fixtures.
func MustBuild(opts []BuilderOption, cons ...Constructor) *grid.Grid {
	g, err := Build(opts, cons...)
	if err != nil {
		panic(err)
	}
	return g
}
