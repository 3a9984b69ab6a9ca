// SPDX-License-Identifier: MIT

package session_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhusbyn/former-solver/builder"
	"github.com/mhusbyn/former-solver/cluster"
	"github.com/mhusbyn/former-solver/grid"
	"github.com/mhusbyn/former-solver/session"
)

func twoRowBoard(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := builder.Build(nil, builder.Uniform(grid.Red), builder.Patch(0, 0, "BBBBBBB"))
	require.NoError(t, err)
	return g
}

// TestSession_PlayThrough clears a BLUE-over-RED board in two moves.
func TestSession_PlayThrough(t *testing.T) {
	s, err := session.FromGrid(twoRowBoard(t), session.WithSize(grid.DefaultHeight, grid.DefaultWidth))
	require.NoError(t, err)

	choices := s.Choices()
	require.Equal(t, []grid.Point{
		{Row: 0, Column: 0, Colour: grid.Blue},
		{Row: 1, Column: 0, Colour: grid.Red},
	}, choices)
	assert.False(t, s.IsSolved())

	require.NoError(t, s.Select(choices[0]))
	state := s.BoardState()
	for c := 0; c < grid.DefaultWidth; c++ {
		assert.Equal(t, grid.Empty, state[0][c], "top row must be empty after removing BLUE")
		assert.Equal(t, grid.Red, state[1][c])
	}

	choices = s.Choices()
	require.Equal(t, []grid.Point{{Row: 1, Column: 0, Colour: grid.Red}}, choices)
	require.NoError(t, s.Select(choices[0]))

	assert.True(t, s.IsSolved())
	assert.Empty(t, s.Choices())
	assert.Len(t, s.Moves(), 2)
}

// TestSession_InvalidSelectIsAtomic checks a bad point changes nothing.
func TestSession_InvalidSelectIsAtomic(t *testing.T) {
	s, err := session.New([][]grid.Colour{
		{grid.Blue, grid.Red},
		{grid.Blue, grid.Red},
	})
	require.NoError(t, err)
	before := s.Grid()

	err = s.Select(grid.Point{Row: 1, Column: 0, Colour: grid.Blue})
	assert.ErrorIs(t, err, cluster.ErrInvalidSelection)
	assert.Same(t, before, s.Grid())
	assert.Empty(t, s.Moves())
}

func TestSession_ResetAndSnapshots(t *testing.T) {
	s, err := session.New([][]grid.Colour{{grid.Green, grid.Orange}})
	require.NoError(t, err)
	start := s.Grid()

	require.NoError(t, s.Select(grid.Point{Row: 0, Column: 0, Colour: grid.Green}))
	after := s.Grid()
	assert.Equal(t, "GO", start.String(), "old snapshot must not change")
	assert.Equal(t, ".O", after.String())

	s.Reset()
	assert.Same(t, start, s.Grid())
	assert.Empty(t, s.Moves())
}

func TestSession_ConstructionErrors(t *testing.T) {
	_, err := session.FromGrid(nil)
	assert.ErrorIs(t, err, session.ErrNilGrid)

	_, err = session.New([][]grid.Colour{{grid.Red}}, session.WithSize(2, 2))
	assert.ErrorIs(t, err, grid.ErrSizeMismatch)

	_, err = session.New(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestSession_ColumnCollapse(t *testing.T) {
	s, err := session.New([][]grid.Colour{
		{grid.Blue, grid.Red, grid.Green},
	}, session.WithColumnCollapse())
	require.NoError(t, err)

	require.NoError(t, s.Select(grid.Point{Row: 0, Column: 1, Colour: grid.Red}))
	assert.Equal(t, "BG.", s.Grid().String())
}

// TestSession_ConcurrentReaders runs readers against a writer and checks that
// every snapshot a reader sees is internally consistent.
func TestSession_ConcurrentReaders(t *testing.T) {
	g, err := builder.Build([]builder.BuilderOption{builder.WithSeed(5)}, builder.Random())
	require.NoError(t, err)
	s, err := session.FromGrid(g)
	require.NoError(t, err)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap := s.Grid()
				for _, p := range cluster.Choices(snap) {
					c, err := snap.ColourAt(p.Row, p.Column)
					if err != nil || c != p.Colour {
						t.Errorf("inconsistent snapshot at %v", p)
						return
					}
				}
				_ = s.BoardState()
			}
		}()
	}

	for !s.IsSolved() {
		choices := s.Choices()
		require.NotEmpty(t, choices)
		require.NoError(t, s.Select(choices[len(choices)-1]))
	}
	close(stop)
	wg.Wait()
}

// TestSession_Isolation checks two sessions from one grid never share moves.
func TestSession_Isolation(t *testing.T) {
	g := twoRowBoard(t)
	a, err := session.FromGrid(g)
	require.NoError(t, err)
	b, err := session.FromGrid(g)
	require.NoError(t, err)

	require.NoError(t, a.Select(grid.Point{Row: 0, Column: 0, Colour: grid.Blue}))
	assert.Len(t, b.Choices(), 2)
	assert.True(t, b.Grid().Equal(g))
}
