package interpreter

import (
	"fmt"
	"io"

	"regexdfa/internal/regexlib"
)

// DisplayNFA lists every reachable NFA edge, one per line.
func DisplayNFA(w io.Writer, n *regexlib.NFA) {
	g := n.Graph()
	fmt.Fprintf(w, "Start state: %d\n", g.Start)
	fmt.Fprintf(w, "Accept state: %d\n", n.Accept())
	fmt.Fprintln(w, "Transitions:")
	for _, e := range g.Edges {
		fmt.Fprintf(w, "  %d -- %s --> %d\n", e.From, e.Label, e.To)
	}
}

// DisplayVerdict prints the result of simulating one string.
func DisplayVerdict(w io.Writer, accepted bool) {
	if accepted {
		fmt.Fprintln(w, "String accepted!")
	} else {
		fmt.Fprintln(w, "String rejected!")
	}
}
