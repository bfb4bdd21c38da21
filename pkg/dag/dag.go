package dag

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrUnknownNode is returned by the path counters when a node other than
	// the target is reached but was never inserted.
	ErrUnknownNode = errors.New("dag: unknown node")

	// ErrGraphHasCycle is returned when a cycle is detected. Cycles are
	// detected using depth-first search with white/gray/black coloring.
	ErrGraphHasCycle = errors.New("dag: graph contains a cycle")
)

// Graph is a directed graph from each node to its ordered children.
// The zero value is not usable; call [New].
type Graph[T comparable] struct {
	children map[T][]T
	order    []T
}

// New returns an empty graph.
func New[T comparable]() *Graph[T] {
	return &Graph[T]{children: make(map[T][]T)}
}

// Insert sets the children of node, replacing any earlier list.
// The slice is copied.
func (g *Graph[T]) Insert(node T, children []T) {
	if _, ok := g.children[node]; !ok {
		g.order = append(g.order, node)
	}
	g.children[node] = slices.Clone(children)
}

// Children returns the children of node and whether it was inserted.
// The returned slice must not be modified.
func (g *Graph[T]) Children(node T) ([]T, bool) {
	c, ok := g.children[node]
	return c, ok
}

// Len returns the number of inserted nodes.
func (g *Graph[T]) Len() int {
	return len(g.order)
}

// Nodes returns the inserted nodes in insertion order.
func (g *Graph[T]) Nodes() []T {
	return slices.Clone(g.order)
}

// CountPaths returns the number of distinct paths from start to end by
// walking every one of them depth first. A path stops when it reaches end;
// if start equals end the result is 1.
func (g *Graph[T]) CountPaths(start, end T) (int, error) {
	onPath := make(map[T]bool)

	var walk func(n T) (int, error)
	walk = func(n T) (int, error) {
		if n == end {
			return 1, nil
		}
		children, ok := g.children[n]
		if !ok {
			return 0, fmt.Errorf("%w: %v", ErrUnknownNode, n)
		}

		onPath[n] = true
		defer delete(onPath, n)

		total := 0
		for _, c := range children {
			if onPath[c] {
				return 0, fmt.Errorf("%w: through %v", ErrGraphHasCycle, c)
			}
			k, err := walk(c)
			if err != nil {
				return 0, err
			}
			total += k
		}
		return total, nil
	}

	return walk(start)
}

// CountPathsMemo returns the same result as [Graph.CountPaths], computing
// the path count of each node once.
func (g *Graph[T]) CountPathsMemo(start, end T) (int, error) {
	const (
		white = iota
		gray
		black
	)

	color := make(map[T]int)
	memo := make(map[T]int)

	var count func(n T) (int, error)
	count = func(n T) (int, error) {
		if n == end {
			return 1, nil
		}
		switch color[n] {
		case black:
			return memo[n], nil
		case gray:
			return 0, fmt.Errorf("%w: through %v", ErrGraphHasCycle, n)
		}

		children, ok := g.children[n]
		if !ok {
			return 0, fmt.Errorf("%w: %v", ErrUnknownNode, n)
		}

		color[n] = gray
		total := 0
		for _, c := range children {
			k, err := count(c)
			if err != nil {
				return 0, err
			}
			total += k
		}
		color[n] = black
		memo[n] = total
		return total, nil
	}

	return count(start)
}

// Validate returns [ErrGraphHasCycle] if any cycle is reachable from an
// inserted node. Children that were never inserted are treated as sinks.
func (g *Graph[T]) Validate() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[T]int, len(g.order))
	var hasCycle bool

	var dfs func(n T)
	dfs = func(n T) {
		color[n] = gray
		for _, child := range g.children[n] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
			}
			if hasCycle {
				return
			}
		}
		color[n] = black
	}

	for _, n := range g.order {
		if color[n] == white {
			dfs(n)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}
