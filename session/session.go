// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mhusbyn/former-solver/cluster"
	"github.com/mhusbyn/former-solver/grid"
)

// ErrNilGrid indicates FromGrid was given a nil grid.
var ErrNilGrid = errors.New("session: grid is nil")

// Option configures a Session.
type Option func(*Session)

// WithSize requires the initial board to be exactly height×width.
// Panics if either dimension is < 1.
func WithSize(height, width int) Option {
	sizeOpt := grid.WithSize(height, width)
	return func(s *Session) {
		s.gridOpts = append(s.gridOpts, sizeOpt)
	}
}

// WithColumnCollapse makes every Select also close up empty columns.
func WithColumnCollapse() Option {
	return func(s *Session) {
		s.selectOpts = append(s.selectOpts, cluster.WithColumnCollapse())
	}
}

// Session is one puzzle in progress.
type Session struct {
	mu sync.RWMutex // guards current and moves

	initial *grid.Grid
	current *grid.Grid
	moves   []grid.Point

	gridOpts   []grid.Option
	selectOpts []cluster.SelectOption
}

// New starts a session from an initial colour matrix.
// Construction errors come from grid.New.
func New(initial [][]grid.Colour, opts ...Option) (*Session, error) {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	g, err := grid.New(initial, s.gridOpts...)
	if err != nil {
		return nil, fmt.Errorf("session.New: %w", err)
	}
	s.initial, s.current = g, g
	return s, nil
}

// FromGrid starts a session from an existing grid.
func FromGrid(g *grid.Grid, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return New(g.Export(), opts...)
}

// Choices returns the representative point of every current cluster.
func (s *Session) Choices() []grid.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cluster.Choices(s.current)
}

// Select removes the cluster represented by p and settles the board.
// On error (cluster.ErrInvalidSelection) the board is unchanged.
func (s *Session) Select(p grid.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := cluster.Select(s.current, p, s.selectOpts...)
	if err != nil {
		return err
	}
	s.current = next
	s.moves = append(s.moves, p)
	return nil
}

// BoardState returns the current board as a row-major matrix.
func (s *Session) BoardState() [][]grid.Colour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Export()
}

// IsSolved reports whether the board is empty.
func (s *Session) IsSolved() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.IsSolved()
}

// Grid returns the current immutable snapshot.
func (s *Session) Grid() *grid.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Moves returns the points selected so far, oldest first.
func (s *Session) Moves() []grid.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]grid.Point, len(s.moves))
	copy(out, s.moves)
	return out
}

// Reset restores the initial board and forgets all moves.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.initial
	s.moves = nil
}
