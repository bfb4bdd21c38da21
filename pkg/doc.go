// Package pkg provides the libraries behind the adventofcode puzzle runner.
//
// # Overview
//
// Puzzle solvers are small programs that parse a text input into one of a
// handful of data structures and then query or mutate it to compute two
// answers. The pkg directory is organized into two areas:
//
//  1. Core structures ([grid], [disjointset], [dag], [parse], [counter]):
//     in-memory, single-threaded, no logging.
//  2. Infrastructure ([solver], [runner], [cache], [render], [observability],
//     [errors], [buildinfo]): everything needed to run solvers from a CLI.
//
// # Architecture
//
// The typical data flow of one solve:
//
//	Puzzle input (text)
//	         ↓
//	    [parse] / [grid] (typed records or a character grid)
//	         ↓
//	    [grid] / [disjointset] / [dag] (day-specific queries)
//	         ↓
//	    [solver.Answer] (two numbers)
//	         ↓
//	    [runner] (cache lookup, hooks, logging)
//
// # Quick Start
//
// Count the routes through a cable graph:
//
//	g := dag.New[string]()
//	g.Insert("you", []string{"a", "b"})
//	g.Insert("a", []string{"out"})
//	g.Insert("b", []string{"out"})
//	g.Insert("out", nil)
//	n, err := g.CountPaths("you", "out") // 2
//
// Count the neighbours of each cell in a grid:
//
//	g, err := grid.ParseRunes("..@\n@@.\n.@.")
//	for p := range g.Walk() {
//	    n := 0
//	    for _, v := range g.Adjacent(p) {
//	        if v == '@' {
//	            n++
//	        }
//	    }
//	}
//
// Group points into clusters:
//
//	s := disjointset.New[int]()
//	s.Insert(1, 2)
//	s.Insert(3, 4)
//	s.Insert(2, 3)
//	s.Sort() // one cluster of four
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/dag/...      # Specific package
//	go test -run Example ./... # Examples only
//	go test -bench . ./pkg/dag # Path counting benchmarks
//
// [grid]: https://pkg.go.dev/github.com/awlodge/adventofcode/pkg/grid
// [disjointset]: https://pkg.go.dev/github.com/awlodge/adventofcode/pkg/disjointset
// [dag]: https://pkg.go.dev/github.com/awlodge/adventofcode/pkg/dag
// [parse]: https://pkg.go.dev/github.com/awlodge/adventofcode/pkg/parse
// [counter]: https://pkg.go.dev/github.com/awlodge/adventofcode/pkg/counter
// [solver]: https://pkg.go.dev/github.com/awlodge/adventofcode/pkg/solver
// [solver.Answer]: https://pkg.go.dev/github.com/awlodge/adventofcode/pkg/solver#Answer
// [runner]: https://pkg.go.dev/github.com/awlodge/adventofcode/pkg/runner
// [cache]: https://pkg.go.dev/github.com/awlodge/adventofcode/pkg/cache
// [render]: https://pkg.go.dev/github.com/awlodge/adventofcode/pkg/render
// [observability]: https://pkg.go.dev/github.com/awlodge/adventofcode/pkg/observability
// [errors]: https://pkg.go.dev/github.com/awlodge/adventofcode/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/awlodge/adventofcode/pkg/buildinfo
package pkg
