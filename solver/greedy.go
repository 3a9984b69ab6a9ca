// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/mhusbyn/former-solver/cluster"
	"github.com/mhusbyn/former-solver/grid"
)

// Greedy clears g by always removing the largest cluster, the one with the
// smallest representative on ties. It honours WithColumnCollapse and
// WithLogger; other options are ignored. The result is never marked
// Optimal, except for a board that is already solved.
func Greedy(g *grid.Grid, opts ...Option) (Solution, error) {
	if g == nil {
		return Solution{}, fmt.Errorf("Greedy: %w", ErrNilGrid)
	}
	o := resolve(opts)

	var moves []grid.Point
	for cur := g; !cur.IsSolved(); {
		clusters := cluster.Discover(cur)
		best := clusters[0]
		for _, c := range clusters[1:] {
			if c.Size() > best.Size() {
				best = c
			}
		}
		moves = append(moves, best.Representative())
		cur = cluster.Remove(cur, best, o.selectOpts...)
	}

	o.Logger.WithField("moves", len(moves)).Debug("greedy finished")
	return Solution{Moves: moves, Expanded: len(moves), Optimal: len(moves) == 0}, nil
}
