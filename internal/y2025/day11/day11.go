// Package day11 solves the server rack puzzle: devices forward data along
// their cables, and the answers count the routes between devices.
package day11

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/awlodge/adventofcode/pkg/dag"
	"github.com/awlodge/adventofcode/pkg/solver"
)

const (
	you = "you"
	svr = "svr"
	out = "out"
	dac = "dac"
	fft = "fft"
)

var errBadDevice = errors.New("bad device line")

// Parse reads lines of the form "aaa: bbb ccc" into a graph from each device
// to its outputs. The "out" device is added as a sink when no line defines
// it.
func Parse(input string) (*dag.Graph[string], error) {
	g := dag.New[string]()
	for i, line := range strings.Split(input, "\n") {
		name, outputs, ok := strings.Cut(strings.TrimSpace(line), ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w %d: %q", errBadDevice, i+1, line)
		}
		g.Insert(name, strings.Fields(outputs))
	}
	if _, ok := g.Children(out); !ok {
		g.Insert(out, nil)
	}
	return g, nil
}

// Solve returns the number of paths from "you" to "out", and the number of
// paths from "svr" to "out" that visit both "dac" and "fft". A part whose
// start device is missing from the input is reported as zero.
func Solve(_ context.Context, input string) (solver.Answer, error) {
	g, err := Parse(input)
	if err != nil {
		return solver.Answer{}, err
	}

	var ans solver.Answer
	if _, ok := g.Children(you); ok {
		n, err := g.CountPaths(you, out)
		if err != nil {
			return solver.Answer{}, err
		}
		ans.Part1 = uint64(n)
	}
	if _, ok := g.Children(svr); ok {
		n, err := pathsVia(g, svr, out, dac, fft)
		if err != nil {
			return solver.Answer{}, err
		}
		ans.Part2 = uint64(n)
	}
	return ans, nil
}

// pathsVia counts paths from start to end that pass through both a and b.
// In an acyclic graph they are met either as a then b, or as b then a.
func pathsVia(g *dag.Graph[string], start, end, a, b string) (int, error) {
	total := 0
	for _, route := range [][]string{{start, a, b, end}, {start, b, a, end}} {
		product := 1
		for i := 0; i+1 < len(route) && product > 0; i++ {
			n, err := g.CountPathsMemo(route[i], route[i+1])
			if err != nil {
				return 0, err
			}
			product *= n
		}
		total += product
	}
	return total, nil
}
