// SPDX-License-Identifier: MIT

// Package session holds the board of one puzzle in progress and exposes the
// caller-facing operations: Choices, Select, BoardState and IsSolved.
//
// A Session owns a single *grid.Grid snapshot behind a sync.RWMutex. Reads
// share the lock; Select computes the next grid and swaps it in under the
// write lock, so a failed Select leaves the board exactly as it was and
// readers never observe a half-applied move. Sessions share no state with
// each other, and grids handed out by Grid are immutable snapshots.
package session
