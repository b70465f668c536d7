package regexlib

import "golang.org/x/exp/slices"

// EpsilonLabel is the label of epsilon edges in a Graph.
const EpsilonLabel = "ε"

type Node struct {
	ID     int
	Start  bool
	Accept bool
}

type GraphEdge struct {
	From, To int
	Label    string
}

// Graph is a read-only view of an automaton for rendering. Building it
// copies everything it needs, so renderers can not reach the automaton.
type Graph struct {
	Prefix string // node name prefix, "n" for NFA and "q" for DFA
	Nodes  []Node
	Edges  []GraphEdge
	Start  int
	Accept []int
}

// Graph returns the states reachable from the start state in BFS order.
func (n *NFA) Graph() Graph {
	g := Graph{Prefix: "n", Start: int(n.start), Accept: []int{int(n.accept)}}
	visited := make([]bool, n.NumStates())
	queue := []StateID{n.start}
	visited[n.start] = true
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		g.Nodes = append(g.Nodes, Node{ID: int(s), Start: s == n.start, Accept: s == n.accept})
		for _, e := range n.Edges(s) {
			label := EpsilonLabel
			if e.Kind == OnSymbol {
				label = string(e.Symbol)
			}
			g.Edges = append(g.Edges, GraphEdge{From: int(s), To: int(e.To), Label: label})
			if !visited[e.To] {
				visited[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	return g
}

// Graph returns the DFA states reachable from the start state in BFS order.
func (d *DFA) Graph() Graph {
	g := Graph{Prefix: "q", Start: d.Start(), Accept: d.AcceptStates()}
	visited := make([]bool, d.NumStates())
	queue := []int{d.Start()}
	visited[d.Start()] = true
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		g.Nodes = append(g.Nodes, Node{ID: s, Start: s == d.Start(), Accept: d.IsAccept(s)})
		for _, t := range d.Transitions(s) {
			g.Edges = append(g.Edges, GraphEdge{From: s, To: t.To, Label: string(t.Symbol)})
			if !visited[t.To] {
				visited[t.To] = true
				queue = append(queue, t.To)
			}
		}
	}
	return g
}

func (g Graph) IsAccept(id int) bool { return slices.Contains(g.Accept, id) }
