// SPDX-License-Identifier: MIT

package solver

import "github.com/mhusbyn/former-solver/grid"

// node is one board state on the search tree.
type node struct {
	board  *grid.Grid
	parent *node
	move   grid.Point // selection that produced board from parent.board
	depth  int        // moves from the root
	est    int        // depth + remaining-colour estimate
}

// path returns the moves from the root to n.
func (n *node) path() []grid.Point {
	out := make([]grid.Point, n.depth)
	for at := n; at.parent != nil; at = at.parent {
		out[at.depth-1] = at.move
	}
	return out
}

// nodePQ is a min-heap of *node ordered by est, deeper nodes first on ties
// so the search dives toward a solution once estimates level out.
type nodePQ []*node

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by estimate, then by depth descending.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].est != pq[j].est {
		return pq[i].est < pq[j].est
	}
	return pq[i].depth > pq[j].depth
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *node.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
