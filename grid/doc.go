// SPDX-License-Identifier: MIT

// Package grid is the board model of the puzzle: a fixed-size rectangular
// matrix of cells, each holding an optional colour tag.
//
// What:
//
//   - Grid wraps a Height×Width row-major slice of Colour values.
//   - Colour is a one-byte tag; the zero value Empty marks an absent tile.
//   - Point names a cell (row, column) together with the colour it holds.
//   - Parse / String convert between a Grid and its plain-text form.
//
// Grids are immutable once built. Every accessor that hands out slices
// hands out copies, so a Grid can be shared between goroutines and a new
// board state is always a new Grid.
//
// Coordinates:
//
//	row 0 is the top row and rows grow downward;
//	column 0 is the leftmost column.
//
// Complexity:
//
//   - New, FromColours, Export, Colours, Occupied: O(H×W) time and memory.
//   - ColourAt, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrSizeMismatch: shape differs from the size requested via WithSize.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrBadColour: symbol that cannot be read as a colour.
package grid
