// SPDX-License-Identifier: MIT

package solver

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mhusbyn/former-solver/cluster"
	"github.com/mhusbyn/former-solver/grid"
)

// progressEvery is how many expansions pass between debug progress lines.
const progressEvery = 10_000

// Solve returns a shortest clearing sequence for g.
//
// Steps:
//  1. Run Greedy to get an upper bound; states whose estimate exceeds it
//     are never queued.
//  2. Pop the state with the lowest estimate (deepest first on ties).
//     A solved state ends the search; a state already expanded is skipped.
//  3. Otherwise remove each of its clusters in turn and queue the results.
//
// Returns ctx.Err() on cancellation, ErrStateLimit when MaxStates states
// were expanded, and ErrNoSolution when MaxDepth cuts off every sequence.
func Solve(ctx context.Context, g *grid.Grid, opts ...Option) (Solution, error) {
	if g == nil {
		return Solution{}, fmt.Errorf("Solve: %w", ErrNilGrid)
	}
	o := resolve(opts)
	log := o.Logger.WithFields(logrus.Fields{
		"height": g.Height(),
		"width":  g.Width(),
		"tiles":  len(g.Occupied()),
	})

	bound, err := Greedy(g, opts...)
	if err != nil {
		return Solution{}, err
	}
	limit := len(bound.Moves)
	if o.MaxDepth > 0 && o.MaxDepth < limit {
		limit = o.MaxDepth
	}
	log.WithField("bound", len(bound.Moves)).Debug("greedy bound")

	root := &node{board: g, est: estimate(g)}
	pq := &nodePQ{root}
	closed := make(map[string]struct{})
	expanded := 0

	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return Solution{}, err
		}
		if expanded >= o.MaxStates {
			log.WithField("expanded", expanded).Warn("state limit reached")
			return Solution{}, fmt.Errorf("Solve: %d states: %w", expanded, ErrStateLimit)
		}

		cur := heap.Pop(pq).(*node)
		key := cur.board.Key()
		if _, seen := closed[key]; seen {
			continue
		}
		closed[key] = struct{}{}
		expanded++
		o.OnExpand(cur.depth, pq.Len())
		if expanded%progressEvery == 0 {
			log.WithFields(logrus.Fields{
				"expanded": expanded,
				"frontier": pq.Len(),
				"depth":    cur.depth,
				"estimate": cur.est,
			}).Debug("searching")
		}

		if cur.board.IsSolved() {
			sol := Solution{Moves: cur.path(), Expanded: expanded, Optimal: true}
			log.WithFields(logrus.Fields{
				"moves":    len(sol.Moves),
				"expanded": expanded,
			}).Info("solved")
			return sol, nil
		}
		if cur.depth >= limit {
			continue
		}

		for _, c := range cluster.Discover(cur.board) {
			next := cluster.Remove(cur.board, c, o.selectOpts...)
			if _, seen := closed[next.Key()]; seen {
				continue
			}
			child := &node{
				board:  next,
				parent: cur,
				move:   c.Representative(),
				depth:  cur.depth + 1,
			}
			child.est = child.depth + estimate(next)
			if child.est > limit {
				continue
			}
			heap.Push(pq, child)
		}
	}

	log.WithField("expanded", expanded).Info("no solution within depth limit")
	return Solution{}, fmt.Errorf("Solve: depth %d: %w", limit, ErrNoSolution)
}

// estimate is a lower bound on the moves left: every colour still present
// needs at least one move of its own.
func estimate(g *grid.Grid) int {
	return len(g.Counts())
}
