// SPDX-License-Identifier: MIT
// Package: former-solver/builder
//
// impl_random.go: Random constructor.
//
// Contract:
//   • Requires cfg.rng (ErrNeedRandSource otherwise).
//   • Draws every cell uniformly from cfg.palette, row-major, so a fixed
//     seed always yields the same board.

package builder

import (
	"fmt"

	"github.com/mhusbyn/former-solver/grid"
)

// Random fills every cell with a colour drawn from the palette.
func Random() Constructor {
	return func(cells [][]grid.Colour, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		for r := range cells {
			for col := range cells[r] {
				cells[r][col] = cfg.palette[cfg.rng.Intn(len(cfg.palette))]
			}
		}
		return nil
	}
}
