// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mhusbyn/former-solver/grid"
)

var errBadSelection = errors.New("former: malformed selection")

// cell is a row/column pair typed on the command line.
type cell struct{ row, col int }

// parseSelections reads "r,c;r,c;..." into cells. Blank input is no cells;
// spaces around numbers are ignored.
func parseSelections(s string) ([]cell, error) {
	var out []cell
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		rc := strings.Split(part, ",")
		if len(rc) != 2 {
			return nil, fmt.Errorf("%q: want row,col: %w", part, errBadSelection)
		}
		r, err := strconv.Atoi(strings.TrimSpace(rc[0]))
		if err != nil {
			return nil, fmt.Errorf("%q: row: %w", part, errBadSelection)
		}
		c, err := strconv.Atoi(strings.TrimSpace(rc[1]))
		if err != nil {
			return nil, fmt.Errorf("%q: column: %w", part, errBadSelection)
		}
		out = append(out, cell{row: r, col: c})
	}
	return out, nil
}

// pointAt completes a typed cell with the colour currently at it.
func pointAt(g *grid.Grid, rc cell) (grid.Point, error) {
	c, err := g.ColourAt(rc.row, rc.col)
	if err != nil {
		return grid.Point{}, err
	}
	return grid.Point{Row: rc.row, Column: rc.col, Colour: c}, nil
}

// formatPoints joins points as "(r0, c0, B) (r1, c0, R)", or "none".
func formatPoints(ps []grid.Point) string {
	if len(ps) == 0 {
		return "none"
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
