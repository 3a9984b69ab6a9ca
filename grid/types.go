// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"sort"
)

// Default board dimensions of the standard puzzle.
const (
	DefaultHeight = 9
	DefaultWidth  = 7
)

// Colour tags the tile held by a cell. The zero value Empty marks an absent
// tile; any other printable ASCII byte is a colour, so callers may use any
// finite palette.
type Colour byte

const (
	// Empty is the absent tile.
	Empty Colour = 0
	// Orange tile, symbol 'O'.
	Orange Colour = 'O'
	// Green tile, symbol 'G'.
	Green Colour = 'G'
	// Blue tile, symbol 'B'.
	Blue Colour = 'B'
	// Red tile, symbol 'R'.
	Red Colour = 'R'
)

// emptySymbol is the text form of Empty.
const emptySymbol = '.'

// Palette returns the four colours of the standard puzzle in a fixed order.
func Palette() []Colour {
	return []Colour{Orange, Green, Blue, Red}
}

// IsEmpty reports whether c is the absent tile.
func (c Colour) IsEmpty() bool {
	return c == Empty
}

// String returns the one-character symbol of c ("." for Empty).
func (c Colour) String() string {
	if c == Empty {
		return string(emptySymbol)
	}
	return string(rune(c))
}

// Point identifies a cell together with the colour it holds.
// Points are plain values: comparable with == and usable as map keys.
type Point struct {
	Row    int
	Column int
	Colour Colour
}

// String renders p as "(r3, c4, B)".
func (p Point) String() string {
	return fmt.Sprintf("(r%d, c%d, %s)", p.Row, p.Column, p.Colour)
}

// Less orders points by row, then column, then colour.
// Inside one cluster every point shares a colour, so the colour key never
// breaks a tie there; it only keeps the order total.
func (p Point) Less(q Point) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	if p.Column != q.Column {
		return p.Column < q.Column
	}
	return p.Colour < q.Colour
}

// SortPoints sorts ps in place by Point.Less.
func SortPoints(ps []Point) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Less(ps[j]) })
}
