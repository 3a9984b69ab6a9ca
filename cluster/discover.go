// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"

	"github.com/mhusbyn/former-solver/grid"
)

// Cluster is a maximal 4-connected group of same-colour tiles.
// Points are sorted by grid.Point.Less; Points[0] is the representative.
type Cluster struct {
	Colour grid.Colour
	Points []grid.Point
}

// Representative returns the smallest point of the cluster.
func (c Cluster) Representative() grid.Point {
	return c.Points[0]
}

// Size returns the number of tiles in the cluster.
func (c Cluster) Size() int {
	return len(c.Points)
}

// Contains reports whether cell (r,col) belongs to the cluster.
func (c Cluster) Contains(r, col int) bool {
	for _, p := range c.Points {
		if p.Row == r && p.Column == col {
			return true
		}
	}
	return false
}

// Discover partitions the occupied cells of g into clusters.
// Clusters come back ordered by representative.
//
// Steps:
//  1. Scan cells row-major; skip Empty.
//  2. Union each cell with its left and upper neighbour of the same colour.
//     Both were scanned already, so every same-colour edge is seen once.
//  3. Scan again row-major and append each cell to the cluster of its root.
//     The first cell met for a root is the smallest, so Points stay sorted
//     and clusters are created in representative order.
//
// Complexity: O(H×W·α(H×W)) time, O(H×W) memory.
func Discover(g *grid.Grid) []Cluster {
	w := g.Width()
	cells := g.Colours()
	ds := newDisjointSet(len(cells))

	for i, c := range cells {
		if c == grid.Empty {
			continue
		}
		r, col := g.Coordinate(i)
		if col > 0 && cells[i-1] == c {
			ds.union(i-1, i)
		}
		if r > 0 && cells[i-w] == c {
			ds.union(i-w, i)
		}
	}

	var clusters []Cluster
	byRoot := make(map[int]int)
	for i, c := range cells {
		if c == grid.Empty {
			continue
		}
		root := ds.find(i)
		k, ok := byRoot[root]
		if !ok {
			k = len(clusters)
			byRoot[root] = k
			clusters = append(clusters, Cluster{Colour: c})
		}
		r, col := g.Coordinate(i)
		clusters[k].Points = append(clusters[k].Points, grid.Point{Row: r, Column: col, Colour: c})
	}

	return clusters
}

// Choices returns the representative of every cluster on g, ascending.
// An empty grid has no choices.
func Choices(g *grid.Grid) []grid.Point {
	clusters := Discover(g)
	out := make([]grid.Point, len(clusters))
	for i, c := range clusters {
		out[i] = c.Representative()
	}
	return out
}

// Find returns the cluster whose representative equals p, colour included.
// Fails with ErrInvalidSelection otherwise.
func Find(g *grid.Grid, p grid.Point) (Cluster, error) {
	for _, c := range Discover(g) {
		if c.Representative() == p {
			return c, nil
		}
	}
	return Cluster{}, fmt.Errorf("Find %v: %w", p, ErrInvalidSelection)
}
