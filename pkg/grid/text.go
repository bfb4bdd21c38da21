package grid

import (
	"fmt"
	"strings"
)

// ParseRunes builds a character grid from newline-separated text. Each line
// is trimmed of surrounding whitespace and becomes one row with one rune per
// cell. Blank text gives a 0x0 grid.
func ParseRunes(input string) (*Grid[rune], error) {
	lines := splitLines(input)
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	return New(rows)
}

// ParseDigits builds a grid of single-digit integers from newline-separated
// text. Every character must be an ASCII digit.
func ParseDigits(input string) (*Grid[int], error) {
	lines := splitLines(input)
	rows := make([][]int, len(lines))
	for y, line := range lines {
		row := make([]int, 0, len(line))
		for x, r := range []rune(line) {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrNotDigit, r, y, x)
			}
			row = append(row, int(r-'0'))
		}
		rows[y] = row
	}
	return New(rows)
}

// Format renders a character grid as newline-separated text, the inverse of
// [ParseRunes].
func Format(g *Grid[rune]) string {
	var b strings.Builder
	for y := 0; y < g.Rows(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, r := range g.WalkRow(y) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func splitLines(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
