// SPDX-License-Identifier: MIT

package grid

import "errors"

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrSizeMismatch indicates the input shape differs from the configured size.
	ErrSizeMismatch = errors.New("grid: input shape does not match configured size")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of range")
	// ErrBadColour indicates a symbol that is not a colour.
	ErrBadColour = errors.New("grid: invalid colour symbol")
)
