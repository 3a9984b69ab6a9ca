// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mhusbyn/former-solver/grid"
)

// tileColours maps each tile colour to an ANSI 256 palette entry.
var tileColours = map[grid.Colour]lipgloss.Color{
	grid.Orange: lipgloss.Color("208"),
	grid.Green:  lipgloss.Color("34"),
	grid.Blue:   lipgloss.Color("33"),
	grid.Red:    lipgloss.Color("160"),
}

// renderer draws boards, one row per line. Plain renderers skip styling.
type renderer struct {
	styles map[grid.Colour]lipgloss.Style
	frame  lipgloss.Style
}

func newRenderer(plain bool) renderer {
	r := renderer{styles: make(map[grid.Colour]lipgloss.Style)}
	if plain {
		return r
	}
	for c, col := range tileColours {
		r.styles[c] = lipgloss.NewStyle().Foreground(col).Bold(true)
	}
	r.frame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	return r
}

func (r renderer) board(g *grid.Grid) string {
	var sb strings.Builder
	for i, row := range g.Export() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, c := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if st, ok := r.styles[c]; ok {
				sb.WriteString(st.Render(c.String()))
			} else {
				sb.WriteString(c.String())
			}
		}
	}
	if len(r.styles) == 0 {
		return sb.String()
	}
	return r.frame.Render(sb.String())
}
