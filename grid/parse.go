// SPDX-License-Identifier: MIT

package grid

import (
	"bufio"
	"fmt"
	"strings"
	"unicode"
)

// ParseColour reads one colour symbol. '.' and '_' mean Empty; letters are
// upper-cased; any other printable ASCII symbol is taken as a colour tag.
func ParseColour(r rune) (Colour, error) {
	switch {
	case r == emptySymbol || r == '_':
		return Empty, nil
	case r > unicode.MaxASCII || !unicode.IsPrint(r) || unicode.IsSpace(r):
		return Empty, fmt.Errorf("ParseColour(%q): %w", r, ErrBadColour)
	}
	return Colour(unicode.ToUpper(r)), nil
}

// Parse reads a grid from text: one row per non-blank line, one symbol per
// cell. Blanks inside a line are ignored, so "B R G" and "BRG" are the same
// row. Lines starting with '#' are comments.
func Parse(text string, opts ...Option) (*Grid, error) {
	var rows [][]Colour
	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		row := make([]Colour, 0, len(s))
		for _, r := range s {
			if unicode.IsSpace(r) {
				continue
			}
			c, err := ParseColour(r)
			if err != nil {
				return nil, fmt.Errorf("Parse: line %d: %w", line, err)
			}
			row = append(row, c)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return New(rows, opts...)
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(text string, opts ...Option) *Grid {
	g, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return g
}
