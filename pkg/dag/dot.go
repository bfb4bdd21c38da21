package dag

import (
	"bytes"
	"fmt"
)

// ToDOT converts g to Graphviz DOT text for a top-to-bottom node-link
// diagram. name renders a node as its label and identifier; when nil,
// nodes are formatted with %v.
//
// Nodes are emitted in insertion order, followed by their edges in child
// order, so the output is deterministic.
func ToDOT[T comparable](g *Graph[T], name func(T) string) string {
	if name == nil {
		name = func(n T) string { return fmt.Sprint(n) }
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.order {
		fmt.Fprintf(&buf, "  %q;\n", name(n))
	}

	buf.WriteString("\n")
	for _, n := range g.order {
		from := name(n)
		for _, c := range g.children[n] {
			fmt.Fprintf(&buf, "  %q -> %q;\n", from, name(c))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
