// Package dag provides a directed graph keyed by node value, with
// depth-first path counting and Graphviz export.
//
// # Overview
//
// A [Graph] maps each inserted node to an ordered list of children. Nodes
// only appear as keys once [Graph.Insert] is called for them; a node that is
// only ever named as a child is a sink as far as path counting is concerned,
// provided it is the target of the count.
//
//	g := dag.New[string]()
//	g.Insert("you", []string{"bbb", "ccc"})
//	g.Insert("bbb", []string{"out"})
//	g.Insert("ccc", []string{"out"})
//	n, err := g.CountPaths("you", "out") // 2, nil
//
// # Path Counting
//
// [Graph.CountPaths] enumerates every path explicitly, so its cost grows with
// the number of paths. [Graph.CountPathsMemo] returns the same answer in time
// linear in nodes and edges and should be preferred for large inputs.
//
// Both counters stop with [ErrUnknownNode] when they need the children of a
// node that was never inserted, and with [ErrGraphHasCycle] when a path
// revisits one of its own nodes. [Graph.Validate] checks the whole graph for
// cycles up front.
//
// # Visualization
//
// [ToDOT] renders the graph as Graphviz DOT text. The render package turns
// DOT into SVG or PNG.
package dag
