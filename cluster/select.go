// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"

	"github.com/mhusbyn/former-solver/grid"
)

// SelectOption customizes Select.
type SelectOption func(*selectConfig)

type selectConfig struct {
	collapseColumns bool
}

// WithColumnCollapse makes Select also slide non-empty columns toward
// column 0, leaving fully empty columns at the right edge.
// Off by default: the standard puzzle only lets tiles fall.
func WithColumnCollapse() SelectOption {
	return func(c *selectConfig) { c.collapseColumns = true }
}

// Select removes the cluster whose representative is p and lets the
// remaining tiles fall, returning the new grid. g itself is not modified
// and the result shares no memory with it.
//
// Steps:
//  1. Find the cluster on g (ErrInvalidSelection if p is not a representative).
//  2. Clear its cells in a working copy of the cells.
//  3. Settle every column: survivors keep their top-to-bottom order and
//     rest on the bottom edge, Empty cells fill the top.
//  4. Optionally collapse empty columns (WithColumnCollapse).
//
// Complexity: O(H×W·α(H×W)) time, O(H×W) memory.
func Select(g *grid.Grid, p grid.Point, opts ...SelectOption) (*grid.Grid, error) {
	var cfg selectConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	target, err := Find(g, p)
	if err != nil {
		return nil, fmt.Errorf("Select: %w", err)
	}

	return remove(g, target, cfg), nil
}

// Remove is Select for a cluster already discovered on g, skipping the
// representative lookup. c must come from Discover(g).
func Remove(g *grid.Grid, c Cluster, opts ...SelectOption) *grid.Grid {
	var cfg selectConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return remove(g, c, cfg)
}

func remove(g *grid.Grid, target Cluster, cfg selectConfig) *grid.Grid {
	h, w := g.Height(), g.Width()
	cells := g.Colours()
	for _, q := range target.Points {
		cells[g.Index(q.Row, q.Column)] = grid.Empty
	}

	settle(cells, h, w)
	if cfg.collapseColumns {
		collapseColumns(cells, h, w)
	}

	out, err := grid.FromColours(h, w, cells)
	if err != nil {
		// cells came from g, so its dimensions and colours are valid.
		panic(err)
	}
	return out
}

// settle compacts each column of a row-major h×w slice toward the bottom.
// It walks each column upward with a write cursor on the lowest free row,
// so survivors keep their relative order.
func settle(cells []grid.Colour, h, w int) {
	for c := 0; c < w; c++ {
		write := h - 1
		for r := h - 1; r >= 0; r-- {
			v := cells[r*w+c]
			if v == grid.Empty {
				continue
			}
			if write != r {
				cells[write*w+c] = v
				cells[r*w+c] = grid.Empty
			}
			write--
		}
	}
}

// collapseColumns moves every column holding a tile left, keeping their
// order, and clears the columns left over on the right.
func collapseColumns(cells []grid.Colour, h, w int) {
	write := 0
	for c := 0; c < w; c++ {
		if columnEmpty(cells, h, w, c) {
			continue
		}
		if write != c {
			for r := 0; r < h; r++ {
				cells[r*w+write] = cells[r*w+c]
				cells[r*w+c] = grid.Empty
			}
		}
		write++
	}
}

func columnEmpty(cells []grid.Colour, h, w, c int) bool {
	for r := 0; r < h; r++ {
		if cells[r*w+c] != grid.Empty {
			return false
		}
	}
	return true
}
