// SPDX-License-Identifier: MIT
// Package: former-solver/builder
//
// impl_fill.go: Uniform, Rows and Columns constructors.
//
// Rows/Columns cycle their colour list: with one entry per row (or column)
// the list is explicit, with fewer entries it repeats. This covers the
// "odd row out" and "alternating rows" boards alike.

package builder

import (
	"fmt"

	"github.com/mhusbyn/former-solver/grid"
)

// Uniform paints every cell with colour c.
func Uniform(c grid.Colour) Constructor {
	return func(cells [][]grid.Colour, _ builderConfig) error {
		for r := range cells {
			for col := range cells[r] {
				cells[r][col] = c
			}
		}
		return nil
	}
}

// Rows paints row r with colours[r % len(colours)].
func Rows(colours ...grid.Colour) Constructor {
	return func(cells [][]grid.Colour, _ builderConfig) error {
		if len(colours) == 0 {
			return fmt.Errorf("%s: %w", methodRows, ErrEmptyPattern)
		}
		for r := range cells {
			c := colours[r%len(colours)]
			for col := range cells[r] {
				cells[r][col] = c
			}
		}
		return nil
	}
}

// Columns paints column c with colours[c % len(colours)].
func Columns(colours ...grid.Colour) Constructor {
	return func(cells [][]grid.Colour, _ builderConfig) error {
		if len(colours) == 0 {
			return fmt.Errorf("%s: %w", methodColumns, ErrEmptyPattern)
		}
		for r := range cells {
			for col := range cells[r] {
				cells[r][col] = colours[col%len(colours)]
			}
		}
		return nil
	}
}
