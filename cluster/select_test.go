// SPDX-License-Identifier: MIT

package cluster_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhusbyn/former-solver/cluster"
	"github.com/mhusbyn/former-solver/grid"
)

// TestSelect_CrossInBlue removes the BLUE surround of an ORANGE plus sign;
// the ORANGE tiles fall within their own columns.
func TestSelect_CrossInBlue(t *testing.T) {
	g := grid.MustParse(`
		BBBBBBB
		BBBBBBB
		BBBBBBB
		BBBOBBB
		BBOOOBB
		BBBOBBB
		BBBBBBB
		BBBBBBB
		BBBBBBB
	`)
	require.Equal(t, []grid.Point{
		{Row: 0, Column: 0, Colour: B},
		{Row: 3, Column: 3, Colour: O},
	}, cluster.Choices(g))

	next, err := cluster.Select(g, grid.Point{Row: 0, Column: 0, Colour: B})
	require.NoError(t, err)

	want := grid.MustParse(`
		.......
		.......
		.......
		.......
		.......
		.......
		...O...
		...O...
		..OOO..
	`)
	assert.Equal(t, want.String(), next.String())
	assert.Equal(t, []grid.Point{{Row: 6, Column: 3, Colour: O}}, cluster.Choices(next))
}

// TestSelect_UniformBoardSolves clears a single-cluster board in one move.
func TestSelect_UniformBoardSolves(t *testing.T) {
	g := mustGrid(t, filled(func(int, int) grid.Colour { return G }))
	choices := cluster.Choices(g)
	require.Len(t, choices, 1)

	next, err := cluster.Select(g, choices[0])
	require.NoError(t, err)
	assert.True(t, next.IsSolved())
	assert.Empty(t, cluster.Choices(next))
}

// TestSelect_InvalidLeavesGridUntouched covers non-representative members,
// wrong colours and positions off the board.
func TestSelect_InvalidLeavesGridUntouched(t *testing.T) {
	g := grid.MustParse(`
		BBR
		GBR
	`)
	before := g.String()

	cases := []struct {
		name string
		p    grid.Point
	}{
		{"NonRepresentativeMember", grid.Point{Row: 1, Column: 1, Colour: B}},
		{"WrongColour", grid.Point{Row: 0, Column: 0, Colour: R}},
		{"OffBoard", grid.Point{Row: 5, Column: 5, Colour: B}},
		{"EmptyColour", grid.Point{Row: 0, Column: 0, Colour: E}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := cluster.Select(g, tc.p)
			assert.ErrorIs(t, err, cluster.ErrInvalidSelection)
			assert.Nil(t, next)
			assert.Equal(t, before, g.String())
		})
	}
}

// TestSelect_DoesNotMutateInput checks the input grid is unchanged after a
// successful move.
func TestSelect_DoesNotMutateInput(t *testing.T) {
	g := grid.MustParse("RB\nBB")
	key := g.Key()

	next, err := cluster.Select(g, grid.Point{Row: 0, Column: 1, Colour: B})
	require.NoError(t, err)
	assert.Equal(t, key, g.Key())
	assert.Equal(t, "..\nR.", next.String())
}

// TestSelect_ColumnCollapse shifts surviving columns left when asked to.
func TestSelect_ColumnCollapse(t *testing.T) {
	g := grid.MustParse(`
		BRB
		BRG
	`)
	p := grid.Point{Row: 0, Column: 1, Colour: R}

	plain, err := cluster.Select(g, p)
	require.NoError(t, err)
	assert.Equal(t, "B.B\nB.G", plain.String())

	collapsed, err := cluster.Select(g, p, cluster.WithColumnCollapse())
	require.NoError(t, err)
	assert.Equal(t, "BB.\nBG.", collapsed.String())
}

// columnStacks returns each column's non-empty colours, top to bottom.
func columnStacks(g *grid.Grid) [][]grid.Colour {
	m := g.Export()
	out := make([][]grid.Colour, g.Width())
	for c := range out {
		for r := range m {
			if m[r][c] != E {
				out[c] = append(out[c], m[r][c])
			}
		}
	}
	return out
}

// TestSelect_Properties plays random games and checks after every move that
// columns are settled, survivors keep their column order, and colour counts
// drop by exactly the removed cluster.
func TestSelect_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for game := 0; game < 50; game++ {
		g := randomGrid(t, rng, grid.DefaultHeight, grid.DefaultWidth, grid.Palette(), 0)

		for moves := 0; !g.IsSolved(); moves++ {
			require.Less(t, moves, grid.DefaultHeight*grid.DefaultWidth, "game %d did not finish", game)

			clusters := cluster.Discover(g)
			require.NotEmpty(t, clusters)
			pick := clusters[rng.Intn(len(clusters))]

			next, err := cluster.Select(g, pick.Representative())
			require.NoError(t, err)

			// Counts drop by the cluster size for its colour only.
			want := g.Counts()
			want[pick.Colour] -= pick.Size()
			if want[pick.Colour] == 0 {
				delete(want, pick.Colour)
			}
			assert.Equal(t, want, next.Counts())

			// Survivors keep their top-to-bottom order per column.
			m := g.Export()
			for _, p := range pick.Points {
				m[p.Row][p.Column] = E
			}
			survivors, err := grid.New(m)
			require.NoError(t, err)
			assert.Equal(t, columnStacks(survivors), columnStacks(next))

			// No Empty cell below a tile.
			out := next.Export()
			for c := 0; c < next.Width(); c++ {
				seenTile := false
				for r := 0; r < next.Height(); r++ {
					if out[r][c] != E {
						seenTile = true
					} else {
						assert.False(t, seenTile, "gap at (%d,%d)", r, c)
					}
				}
			}

			g = next
		}
		assert.Empty(t, cluster.Choices(g))
	}
}

// TestRemove_MatchesSelect checks Remove on every discovered cluster gives
// the same board as Select on its representative.
func TestRemove_MatchesSelect(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for trial := 0; trial < 20; trial++ {
		g := randomGrid(t, rng, grid.DefaultHeight, grid.DefaultWidth, grid.Palette()[:3], 5)
		for _, c := range cluster.Discover(g) {
			want, err := cluster.Select(g, c.Representative(), cluster.WithColumnCollapse())
			require.NoError(t, err)
			got := cluster.Remove(g, c, cluster.WithColumnCollapse())
			assert.True(t, want.Equal(got), "trial %d cluster %v", trial, c.Representative())
		}
	}
}
