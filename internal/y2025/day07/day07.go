// Package day07 solves the tachyon manifold puzzle. A beam enters at 'S'
// and travels down; each splitter ('^') it meets sends it on from the cells
// to the left and right of the splitter.
package day07

import (
	"context"
	"errors"

	"github.com/awlodge/adventofcode/pkg/counter"
	"github.com/awlodge/adventofcode/pkg/grid"
	"github.com/awlodge/adventofcode/pkg/solver"
)

const (
	start    = 'S'
	splitter = '^'
)

var errNoStart = errors.New("manifold has no start")

// Solve returns the number of splits and the number of timelines a single
// particle ends up in.
//
// Beams move one row per step. The counter holds, for each beam position,
// the number of timelines that reached it; part one counts distinct beams
// hitting a splitter, so merged beams only split once.
func Solve(_ context.Context, input string) (solver.Answer, error) {
	g, err := grid.ParseRunes(input)
	if err != nil {
		return solver.Answer{}, err
	}
	s, ok := g.Find(func(r rune) bool { return r == start })
	if !ok {
		return solver.Answer{}, errNoStart
	}

	splits := 0
	beams := counter.Counter[grid.Point]{s: 1}
	for s.Y+1 < g.Rows() {
		next := counter.Counter[grid.Point]{}
		for b, n := range beams {
			below := b.Down()
			if v, _ := g.Get(below); v == splitter {
				splits++
				next.Add(below.Left(), n)
				next.Add(below.Right(), n)
				continue
			}
			next.Add(below, n)
		}
		beams = next
		s = s.Down()
	}

	return solver.Answer{Part1: uint64(splits), Part2: uint64(beams.Sum())}, nil
}
