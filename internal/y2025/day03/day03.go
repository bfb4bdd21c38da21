// Package day03 solves the battery bank puzzle: from each row of digit
// joltages, switch on a fixed number of batteries in order so that the
// digits read as the largest possible number.
package day03

import (
	"context"

	"github.com/awlodge/adventofcode/pkg/grid"
	"github.com/awlodge/adventofcode/pkg/solver"
)

const (
	safeBatteries   = 2
	unsafeBatteries = 12
)

// Solve returns the total joltage with two and with twelve batteries per
// bank.
func Solve(_ context.Context, input string) (solver.Answer, error) {
	banks, err := grid.ParseDigits(input)
	if err != nil {
		return solver.Answer{}, err
	}

	var ans solver.Answer
	for y := range banks.Rows() {
		bank := make([]int, 0, banks.Cols())
		for _, d := range banks.WalkRow(y) {
			bank = append(bank, d)
		}
		ans.Part1 += joltage(bank, safeBatteries)
		ans.Part2 += joltage(bank, unsafeBatteries)
	}
	return ans, nil
}

// joltage picks n digits of bank, keeping their order, to form the largest
// number. Each digit is the largest one that still leaves enough batteries
// after it.
func joltage(bank []int, n int) uint64 {
	if n > len(bank) {
		n = len(bank)
	}

	var total uint64
	start := 0
	for i := range n {
		last := len(bank) - (n - i)
		best := start
		for j := start + 1; j <= last; j++ {
			if bank[j] > bank[best] {
				best = j
			}
		}
		total = total*10 + uint64(bank[best])
		start = best + 1
	}
	return total
}
