// Package y2025 registers the solvers for the 2025 event.
package y2025

import (
	"github.com/awlodge/adventofcode/internal/y2025/day01"
	"github.com/awlodge/adventofcode/internal/y2025/day03"
	"github.com/awlodge/adventofcode/internal/y2025/day04"
	"github.com/awlodge/adventofcode/internal/y2025/day07"
	"github.com/awlodge/adventofcode/internal/y2025/day08"
	"github.com/awlodge/adventofcode/internal/y2025/day09"
	"github.com/awlodge/adventofcode/internal/y2025/day11"
	"github.com/awlodge/adventofcode/pkg/solver"
)

// Year is the event year of this package's solvers.
const Year = 2025

var days = map[int]solver.Func{
	1:  day01.Solve,
	3:  day03.Solve,
	4:  day04.Solve,
	7:  day07.Solve,
	8:  day08.Solve,
	9:  day09.Solve,
	11: day11.Solve,
}

// Register adds every 2025 solver to r.
func Register(r *solver.Registry) error {
	for day, fn := range days {
		if err := r.Register(Year, day, fn); err != nil {
			return err
		}
	}
	return nil
}
