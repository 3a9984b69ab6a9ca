// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// Grid is an immutable Height×Width board. cells holds the colours in
// row-major order: cell (r,c) lives at index r*width + c.
type Grid struct {
	height int
	width  int
	cells  []Colour
}

// New builds a Grid where cell (r,c) holds initial[r][c]. Empty entries are
// allowed. The input is deep-copied.
// Returns ErrEmptyGrid if initial has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrSizeMismatch if a
// WithSize option disagrees with the shape.
// Complexity: O(H×W) time and memory.
func New(initial [][]Colour, opts ...Option) (*Grid, error) {
	if len(initial) == 0 || len(initial[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(initial), len(initial[0])
	for r, row := range initial {
		if len(row) != w {
			return nil, fmt.Errorf("New: row %d has %d cells, want %d: %w", r, len(row), w, ErrNonRectangular)
		}
	}
	if err := newConfig(opts...).check("New", h, w); err != nil {
		return nil, err
	}

	cells := make([]Colour, 0, h*w)
	for _, row := range initial {
		cells = append(cells, row...)
	}

	return &Grid{height: h, width: w, cells: cells}, nil
}

// NewEmpty returns a height×width grid with every cell Empty.
func NewEmpty(height, width int) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, ErrEmptyGrid
	}
	return &Grid{height: height, width: width, cells: make([]Colour, height*width)}, nil
}

// FromColours builds a grid from a row-major slice of height*width colours.
// The slice is copied.
func FromColours(height, width int, cells []Colour) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != height*width {
		return nil, fmt.Errorf("FromColours: %d cells for %dx%d: %w", len(cells), height, width, ErrSizeMismatch)
	}
	own := make([]Colour, len(cells))
	copy(own, cells)

	return &Grid{height: height, width: width, cells: own}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// InBounds reports whether (r,c) lies within the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.height && c >= 0 && c < g.width
}

// Index maps (r,c) to its row-major index. The caller must check bounds.
func (g *Grid) Index(r, c int) int {
	return r*g.width + c
}

// Coordinate converts a row-major index back to (r,c).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.width, idx % g.width
}

// ColourAt returns the colour held by cell (r,c), Empty for an absent tile.
// Fails with ErrOutOfBounds outside the grid.
func (g *Grid) ColourAt(r, c int) (Colour, error) {
	if !g.InBounds(r, c) {
		return Empty, fmt.Errorf("ColourAt(%d,%d) on %dx%d grid: %w", r, c, g.height, g.width, ErrOutOfBounds)
	}
	return g.cells[g.Index(r, c)], nil
}

// Export returns the whole board as a fresh row-major matrix.
func (g *Grid) Export() [][]Colour {
	out := make([][]Colour, g.height)
	for r := range out {
		out[r] = make([]Colour, g.width)
		copy(out[r], g.cells[r*g.width:(r+1)*g.width])
	}
	return out
}

// Colours returns a copy of the row-major cell slice.
func (g *Grid) Colours() []Colour {
	out := make([]Colour, len(g.cells))
	copy(out, g.cells)
	return out
}

// Occupied returns every non-empty cell as a Point, in row-major order.
func (g *Grid) Occupied() []Point {
	out := make([]Point, 0, len(g.cells))
	for i, c := range g.cells {
		if c == Empty {
			continue
		}
		r, col := g.Coordinate(i)
		out = append(out, Point{Row: r, Column: col, Colour: c})
	}
	return out
}

// IsSolved reports whether every cell is Empty.
func (g *Grid) IsSolved() bool {
	for _, c := range g.cells {
		if c != Empty {
			return false
		}
	}
	return true
}

// Count returns how many cells hold colour c.
func (g *Grid) Count(c Colour) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Counts returns the number of tiles per colour. Empty is not counted.
func (g *Grid) Counts() map[Colour]int {
	out := make(map[Colour]int)
	for _, c := range g.cells {
		if c != Empty {
			out[c]++
		}
	}
	return out
}

// Equal reports whether g and o have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.height == o.height && g.width == o.width && g.Key() == o.Key()
}

// Key returns a compact string identifying the board contents, suitable as
// a map key. Grids of equal shape have equal keys iff they are Equal.
func (g *Grid) Key() string {
	return string(colourBytes(g.cells))
}

// String renders one line per row using colour symbols, "." for Empty.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1))
	for r := 0; r < g.height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.width; c++ {
			b.WriteString(g.cells[g.Index(r, c)].String())
		}
	}
	return b.String()
}

// colourBytes reinterprets a colour slice as bytes (copying).
func colourBytes(cells []Colour) []byte {
	out := make([]byte, len(cells))
	for i, c := range cells {
		out[i] = byte(c)
	}
	return out
}
