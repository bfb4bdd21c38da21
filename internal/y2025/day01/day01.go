// Package day01 solves the dial puzzle: a safe dial numbered 0-99 is turned
// left and right, and the password counts how often it points at zero.
package day01

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/awlodge/adventofcode/pkg/parse"
	"github.com/awlodge/adventofcode/pkg/solver"
)

const (
	dialSize = 100
	startPos = 50
)

var errBadRotation = errors.New("bad rotation")

type rotation struct {
	left     bool
	distance int
}

func (r *rotation) UnmarshalText(b []byte) error {
	if len(b) < 2 {
		return fmt.Errorf("%w: %q", errBadRotation, b)
	}
	switch b[0] {
	case 'L':
		r.left = true
	case 'R':
		r.left = false
	default:
		return fmt.Errorf("%w: direction %q", errBadRotation, b[0])
	}
	d, err := strconv.Atoi(string(b[1:]))
	if err != nil || d < 0 {
		return fmt.Errorf("%w: distance %q", errBadRotation, b[1:])
	}
	r.distance = d
	return nil
}

// turn returns the dial position after r and the number of times the dial
// points at zero during the turn, including where it stops.
func (r rotation) turn(pos int) (int, int) {
	if !r.left {
		end := pos + r.distance
		return end % dialSize, end / dialSize
	}

	zeroes := 0
	if pos == 0 {
		zeroes = r.distance / dialSize
	} else if r.distance >= pos {
		zeroes = (r.distance-pos)/dialSize + 1
	}
	end := ((pos-r.distance)%dialSize + dialSize) % dialSize
	return end, zeroes
}

// Solve returns the number of turns ending at zero and the number of clicks
// passing zero.
func Solve(_ context.Context, input string) (solver.Answer, error) {
	rotations, err := parse.Lines[rotation](input)
	if err != nil {
		return solver.Answer{}, err
	}

	var ans solver.Answer
	pos := startPos
	for _, r := range rotations {
		var zeroes int
		pos, zeroes = r.turn(pos)
		if pos == 0 {
			ans.Part1++
		}
		ans.Part2 += uint64(zeroes)
	}
	return ans, nil
}
