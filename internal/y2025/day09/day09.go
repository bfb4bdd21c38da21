// Package day09 solves the theatre floor puzzle: any two red tiles can be
// opposite corners of a rectangle, and the largest such rectangle wins.
package day09

import (
	"context"

	"github.com/awlodge/adventofcode/pkg/grid"
	"github.com/awlodge/adventofcode/pkg/parse"
	"github.com/awlodge/adventofcode/pkg/solver"
)

// Solve returns the largest rectangle area. The second part is not solved
// and reported as zero.
func Solve(_ context.Context, input string) (solver.Answer, error) {
	tiles, err := parse.Lines[grid.Point](input)
	if err != nil {
		return solver.Answer{}, err
	}
	return solver.Answer{Part1: uint64(maxRectangle(tiles))}, nil
}

// area counts the tiles of the rectangle with corners p and q, inclusive.
func area(p, q grid.Point) int {
	return (abs(p.X-q.X) + 1) * (abs(p.Y-q.Y) + 1)
}

func maxRectangle(tiles []grid.Point) int {
	best := 0
	for i, p := range tiles {
		for _, q := range tiles[i+1:] {
			best = max(best, area(p, q))
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
