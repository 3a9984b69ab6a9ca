// SPDX-License-Identifier: MIT

package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhusbyn/former-solver/grid"
)

// TestDisjointSet_UnionFind checks transitive merges and untouched singletons.
func TestDisjointSet_UnionFind(t *testing.T) {
	ds := newDisjointSet(6)
	ds.union(0, 1)
	ds.union(2, 3)
	ds.union(1, 3)

	assert.Equal(t, ds.find(0), ds.find(3))
	assert.Equal(t, ds.find(2), ds.find(1))
	assert.NotEqual(t, ds.find(0), ds.find(4))
	assert.NotEqual(t, ds.find(4), ds.find(5))

	// Repeated union is a no-op.
	root := ds.find(0)
	ds.union(3, 0)
	assert.Equal(t, root, ds.find(2))
}

// TestSettle drops tiles to the bottom of each column, keeping their order.
func TestSettle(t *testing.T) {
	const (
		x = grid.Empty
		a = grid.Colour('A')
		b = grid.Colour('B')
		c = grid.Colour('C')
	)
	cells := []grid.Colour{
		a, x, c,
		x, b, x,
		b, x, x,
		x, x, a,
	}
	settle(cells, 4, 3)
	assert.Equal(t, []grid.Colour{
		x, x, x,
		x, x, x,
		a, x, c,
		b, b, a,
	}, cells)
}

func TestCollapseColumns(t *testing.T) {
	const (
		x = grid.Empty
		a = grid.Colour('A')
		b = grid.Colour('B')
	)
	cells := []grid.Colour{
		x, x, a, x, x,
		x, b, a, x, b,
	}
	collapseColumns(cells, 2, 5)
	assert.Equal(t, []grid.Colour{
		x, a, x, x, x,
		b, a, b, x, x,
	}, cells)
	assert.True(t, columnEmpty(cells, 2, 5, 4))
	assert.False(t, columnEmpty(cells, 2, 5, 0))
}
