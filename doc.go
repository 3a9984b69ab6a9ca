// SPDX-License-Identifier: MIT

// Package former is the rule engine for a falling-block match puzzle and a
// search for clearing sequences on top of it.
//
// The board is a grid of coloured tiles (9×7 by default). Selecting a tile
// removes its whole cluster, the maximal group of same-colour tiles joined
// through shared edges, and everything above the gap falls straight down.
// The puzzle is solved when the board is empty.
//
// What is in here?
//
//	grid/       the immutable board: colours, points, parsing, snapshots
//	cluster/    union-find cluster discovery, representatives and Select
//	builder/    functional-option board constructors (uniform, rows, patch, random)
//	session/    a thread-safe game: Choices, Select, BoardState, IsSolved
//	solver/     A* shortest clearing sequence, plus a greedy baseline
//	cmd/former  command line front end
//	examples/   runnable scenarios
//
// Quick example:
//
//	BBB      selecting (r0, c0, B) removes all
//	BOB  →   eight BLUE tiles; the ORANGE one
//	BBB      falls to the bottom row.
//
// Every cluster is named by its representative: the member with the
// smallest row, then the smallest column. Choices returns those
// representatives in ascending order and Select accepts only them.
//
//	go get github.com/mhusbyn/former-solver
package former
