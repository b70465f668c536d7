package regexlib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ExportDOT writes g in Graphviz format. The start node is filled green
// and accept nodes are drawn as double circles.
func ExportDOT(w io.Writer, g Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")

	for _, n := range g.Nodes {
		shape := "circle"
		if n.Accept {
			shape = "doublecircle"
		}
		attrs := "shape=" + shape
		if n.Start {
			attrs += ", style=filled, fillcolor=palegreen"
		}
		fmt.Fprintf(bw, "    %s%d [%s];\n", g.Prefix, n.ID, attrs)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(bw, "    %s%d -> %s%d [label=%s];\n", g.Prefix, e.From, g.Prefix, e.To, strconv.Quote(e.Label))
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> %s%d;\n", g.Prefix, g.Start)

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
