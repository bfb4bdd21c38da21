// Package day04 solves the paper roll puzzle. A roll ('@') can be reached
// by a forklift when fewer than four of its eight neighbours are rolls.
package day04

import (
	"context"

	"github.com/awlodge/adventofcode/pkg/grid"
	"github.com/awlodge/adventofcode/pkg/solver"
)

const (
	roll     = '@'
	empty    = '.'
	crowding = 4
)

// Solve returns the number of rolls reachable now, and the number removed
// when reachable rolls are taken away repeatedly until none are left.
func Solve(_ context.Context, input string) (solver.Answer, error) {
	g, err := grid.ParseRunes(input)
	if err != nil {
		return solver.Answer{}, err
	}

	first := reachable(g)
	removed := 0
	for batch := first; len(batch) > 0; batch = reachable(g) {
		for _, p := range batch {
			if err := g.Update(p, empty); err != nil {
				return solver.Answer{}, err
			}
		}
		removed += len(batch)
	}

	return solver.Answer{Part1: uint64(len(first)), Part2: uint64(removed)}, nil
}

func reachable(g *grid.Grid[rune]) []grid.Point {
	var out []grid.Point
	for p, v := range g.Walk() {
		if v != roll {
			continue
		}
		n := 0
		for _, w := range g.Adjacent(p) {
			if w == roll {
				n++
			}
		}
		if n < crowding {
			out = append(out, p)
		}
	}
	return out
}
