// Package day08 solves the junction box puzzle: boxes in 3D space are
// wired together closest pair first, forming circuits.
package day08

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/awlodge/adventofcode/pkg/disjointset"
	"github.com/awlodge/adventofcode/pkg/parse"
	"github.com/awlodge/adventofcode/pkg/solver"
)

const (
	joins       = 1000
	topCircuits = 3
)

var (
	errBadBox      = errors.New("bad junction box")
	errTooFewPairs = errors.New("too few junction box pairs")
)

type box struct {
	X, Y, Z int
}

func (b *box) UnmarshalText(text []byte) error {
	parts := strings.Split(string(text), ",")
	if len(parts) != 3 {
		return fmt.Errorf("%w: want 3 coordinates, got %d", errBadBox, len(parts))
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("%w: %w", errBadBox, err)
		}
		v[i] = n
	}
	b.X, b.Y, b.Z = v[0], v[1], v[2]
	return nil
}

func (b box) compare(o box) int {
	return cmp.Or(cmp.Compare(b.X, o.X), cmp.Compare(b.Y, o.Y), cmp.Compare(b.Z, o.Z))
}

// distance returns the squared straight-line distance.
func (b box) distance(o box) int {
	dx, dy, dz := b.X-o.X, b.Y-o.Y, b.Z-o.Z
	return dx*dx + dy*dy + dz*dz
}

type connection struct {
	distance int
	a, b     box
}

// connections returns every pair of boxes, closest first. Ties are broken
// by the boxes' coordinates.
func connections(boxes []box) []connection {
	conns := make([]connection, 0, len(boxes)*(len(boxes)-1)/2)
	for i, a := range boxes {
		for _, b := range boxes[i+1:] {
			conns = append(conns, connection{distance: a.distance(b), a: a, b: b})
		}
	}
	slices.SortFunc(conns, func(x, y connection) int {
		return cmp.Or(cmp.Compare(x.distance, y.distance), x.a.compare(y.a), x.b.compare(y.b))
	})
	return conns
}

// Solve returns the product of the three largest circuits after the
// closest thousand joins, and the product of the X coordinates of the pair
// whose join first puts every box in one circuit.
func Solve(_ context.Context, input string) (solver.Answer, error) {
	return solve(input, joins)
}

func solve(input string, n int) (solver.Answer, error) {
	boxes, err := parse.Lines[box](input)
	if err != nil {
		return solver.Answer{}, err
	}
	conns := connections(boxes)
	if len(conns) < n {
		return solver.Answer{}, fmt.Errorf("%w: %d boxes give %d pairs, need %d", errTooFewPairs, len(boxes), len(conns), n)
	}

	var ans solver.Answer
	joined := false
	circuits := disjointset.New[box]()
	for i, c := range conns {
		circuits.Insert(c.a, c.b)

		if i+1 == n {
			ans.Part1 = largestProduct(circuits, topCircuits)
		}
		if !joined && circuits.Len() == 1 {
			if all, ok := circuits.Find(c.a); ok && all.Len() == len(boxes) {
				ans.Part2 = uint64(c.a.X * c.b.X)
				joined = true
			}
		}
		if joined && i+1 >= n {
			break
		}
	}
	return ans, nil
}

// largestProduct multiplies the sizes of the k largest circuits.
func largestProduct(circuits *disjointset.Set[box], k int) uint64 {
	circuits.Sort()
	product := uint64(1)
	for c := range circuits.Clusters() {
		if k == 0 {
			break
		}
		product *= uint64(c.Len())
		k--
	}
	return product
}
