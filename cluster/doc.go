// SPDX-License-Identifier: MIT

// Package cluster is the rule engine of the puzzle: it groups same-colour,
// edge-connected tiles of a grid.Grid into clusters and removes a chosen
// cluster, letting the remaining tiles fall.
//
// What:
//
//   - Discover partitions the occupied cells into maximal 4-connected
//     same-colour clusters.
//   - Choices returns one representative point per cluster: its smallest
//     point in row-then-column order. Callers name a cluster only by it.
//   - Select removes the cluster behind a representative and settles every
//     column so tiles rest on the bottom edge, returning a new grid.
//
// Discovery is a single row-major scan over a disjoint-set keyed by cell
// index. Each occupied cell is joined to its left and upper neighbours when
// they share its colour, so two seeds that only meet through a later cell
// (a U shape) end up in one set. The partition, and so the set of
// representatives, depends only on the grid.
//
// Complexity:
//
//   - Discover, Choices, Find: O(H×W·α(H×W)) time, O(H×W) memory.
//   - Select: Discover plus O(H×W) for the column pass.
//
// Errors:
//
//   - ErrInvalidSelection: the point is not a current representative.
//     The input grid is never modified.
package cluster
