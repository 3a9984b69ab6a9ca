// SPDX-License-Identifier: MIT

// Package solver searches for short clearing sequences: lists of cluster
// representatives that, selected in order, leave the board empty.
//
// Solve runs A* over board states. The cost of a state is the number of
// moves made so far; the estimate of the remaining cost is the number of
// distinct colours still on the board. One move removes one cluster and so
// can make at most one colour disappear, so the estimate never overshoots
// and never drops by more than one per move: the first solved state taken
// from the queue is a shortest sequence.
//
// Greedy always takes the largest cluster. It is fast, never fails, and
// its length bounds Solve's search from above.
//
// Options:
//
//   - WithMaxStates: stop with ErrStateLimit after that many expansions.
//   - WithMaxDepth: ignore sequences longer than this.
//   - WithLogger: logrus logger for progress (debug) and result (info).
//   - WithOnExpand: hook called for every expanded state.
//   - WithColumnCollapse: search under the column-collapsing rule variant.
//
// Errors:
//
//   - ErrNilGrid: nil input.
//   - ErrNoSolution: no sequence within MaxDepth.
//   - ErrStateLimit: MaxStates expansions without a result.
//   - ctx.Err(): the context was cancelled.
package solver
