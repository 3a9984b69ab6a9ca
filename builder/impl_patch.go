// SPDX-License-Identifier: MIT
// Package: former-solver/builder
//
// impl_patch.go: Patch constructor: stamps a small text board at an offset.
//
// Contract:
//   • The patch is read with grid.Parse ('.' is Empty).
//   • Empty patch cells are transparent: they keep what is underneath.
//   • The whole patch must fit (else ErrPatchOutOfBounds); nothing is painted
//     on failure.

package builder

import (
	"fmt"

	"github.com/mhusbyn/former-solver/grid"
)

// Patch stamps the board described by text with its top-left corner at
// (top, left).
func Patch(top, left int, text string) Constructor {
	return func(cells [][]grid.Colour, cfg builderConfig) error {
		p, err := grid.Parse(text)
		if err != nil {
			return fmt.Errorf("%s: %w", methodPatch, err)
		}
		if top < 0 || left < 0 || top+p.Height() > cfg.height || left+p.Width() > cfg.width {
			return fmt.Errorf("%s: %dx%d at (%d,%d) on %dx%d: %w",
				methodPatch, p.Height(), p.Width(), top, left, cfg.height, cfg.width, ErrPatchOutOfBounds)
		}
		for _, q := range p.Occupied() {
			cells[top+q.Row][left+q.Column] = q.Colour
		}
		return nil
	}
}
