package regexlib

import (
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DFA is a deterministic automaton with a partial transition function.
// State 0 is the start state. A DFA is never modified after construction.
type DFA struct {
	trans    []map[rune]int
	accept   []bool
	alphabet []rune
}

// Transition is one DFA edge.
type Transition struct {
	Symbol rune
	To     int
}

func (d *DFA) Start() int { return 0 }
func (d *DFA) NumStates() int { return len(d.trans) }
func (d *DFA) Alphabet() []rune { return slices.Clone(d.alphabet) }

// Step returns the successor of state on sym; ok is false when the
// transition is missing.
func (d *DFA) Step(state int, sym rune) (next int, ok bool) {
	if state < 0 || state >= len(d.trans) {
		return 0, false
	}
	next, ok = d.trans[state][sym]
	return next, ok
}

func (d *DFA) IsAccept(state int) bool {
	return state >= 0 && state < len(d.accept) && d.accept[state]
}

// AcceptStates returns the accepting state ids in ascending order.
func (d *DFA) AcceptStates() []int {
	var out []int
	for id, ok := range d.accept {
		if ok {
			out = append(out, id)
		}
	}
	return out
}

// Transitions returns the outgoing edges of state sorted by symbol.
func (d *DFA) Transitions(state int) []Transition {
	row := d.trans[state]
	syms := maps.Keys(row)
	slices.Sort(syms)
	out := make([]Transition, 0, len(syms))
	for _, sym := range syms {
		out = append(out, Transition{Symbol: sym, To: row[sym]})
	}
	return out
}

// WriteTable prints the start state, accept states and every transition.
func (d *DFA) WriteTable(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Start state:", d.Start()); err != nil {
		return err
	}
	accepts := []interface{}{"Accept states:"}
	for _, id := range d.AcceptStates() {
		accepts = append(accepts, id)
	}
	if _, err := fmt.Fprintln(w, accepts...); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Transitions:"); err != nil {
		return err
	}
	for state := range d.trans {
		for _, t := range d.Transitions(state) {
			if _, err := fmt.Fprintf(w, "  %d -- %c --> %d\n", state, t.Symbol, t.To); err != nil {
				return err
			}
		}
	}
	return nil
}

// epsilonClosure returns the sorted set of states reachable from set by
// epsilon edges only.
func epsilonClosure(n *NFA, set []StateID) []StateID {
	seen := make([]bool, n.NumStates())
	out := make([]StateID, 0, len(set))
	stack := make([]StateID, 0, len(set))
	for _, s := range set {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.Edges(s) {
			if e.Kind == Epsilon && !seen[e.To] {
				seen[e.To] = true
				out = append(out, e.To)
				stack = append(stack, e.To)
			}
		}
	}
	slices.Sort(out)
	return out
}

// move returns the targets of sym-edges leaving any state of set.
func move(n *NFA, set []StateID, sym rune) []StateID {
	seen := make(map[StateID]struct{})
	var out []StateID
	for _, s := range set {
		for _, e := range n.Edges(s) {
			if e.Kind != OnSymbol || e.Symbol != sym {
				continue
			}
			if _, ok := seen[e.To]; !ok {
				seen[e.To] = struct{}{}
				out = append(out, e.To)
			}
		}
	}
	return out
}

// nfaAlphabet collects every symbol on an edge reachable from the start
// state, visiting each state once.
func nfaAlphabet(n *NFA) []rune {
	syms := map[rune]struct{}{}
	visited := make([]bool, n.NumStates())
	stack := []StateID{n.Start()}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[s] {
			continue
		}
		visited[s] = true
		for _, e := range n.Edges(s) {
			if e.Kind == OnSymbol {
				syms[e.Symbol] = struct{}{}
			}
			if !visited[e.To] {
				stack = append(stack, e.To)
			}
		}
	}
	out := maps.Keys(syms)
	slices.Sort(out)
	return out
}

func setKey(set []StateID) string { return fmt.Sprint(set) }

func hasState(set []StateID, s StateID) bool {
	_, ok := slices.BinarySearch(set, s)
	return ok
}

// SubsetConstruct converts an epsilon-NFA into an equivalent DFA. Empty
// target sets produce no transition.
func SubsetConstruct(n *NFA) *DFA {
	alpha := nfaAlphabet(n)
	d := &DFA{alphabet: alpha}

	ids := map[string]int{}
	add := func(set []StateID) int {
		id := len(d.trans)
		ids[setKey(set)] = id
		d.trans = append(d.trans, map[rune]int{})
		d.accept = append(d.accept, hasState(set, n.Accept()))
		return id
	}

	startSet := epsilonClosure(n, []StateID{n.Start()})
	add(startSet)
	queue := [][]StateID{startSet}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := ids[setKey(cur)]
		for _, sym := range alpha {
			moved := move(n, cur, sym)
			if len(moved) == 0 {
				continue
			}
			target := epsilonClosure(n, moved)
			id, seen := ids[setKey(target)]
			if !seen {
				id = add(target)
				queue = append(queue, target)
			}
			d.trans[curID][sym] = id
		}
	}
	return d
}
