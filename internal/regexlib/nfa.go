package regexlib

import "fmt"

// StateID indexes a state in an NFA arena.
type StateID int

type EdgeKind int

const (
	Epsilon EdgeKind = iota
	OnSymbol
)

// Edge is one outgoing transition. Symbol is meaningful only for OnSymbol.
type Edge struct {
	Kind   EdgeKind
	Symbol rune
	To     StateID
}

// NFA is an epsilon-NFA stored as a dense arena of edge lists.
type NFA struct {
	states [][]Edge
	start  StateID
	accept StateID
}

func (n *NFA) Start() StateID { return n.start }
func (n *NFA) Accept() StateID { return n.accept }
func (n *NFA) NumStates() int { return len(n.states) }

// Edges returns the outgoing edges of s in insertion order. The slice must
// not be modified.
func (n *NFA) Edges(s StateID) []Edge { return n.states[s] }

type nfaFrag struct {
	start, accept StateID
}

// nfaBuilder owns the arena and id counter of a single compile.
type nfaBuilder struct {
	states [][]Edge
	stack  []nfaFrag
}

func (b *nfaBuilder) newState() StateID {
	b.states = append(b.states, nil)
	return StateID(len(b.states) - 1)
}

func (b *nfaBuilder) epsilon(from, to StateID) {
	b.states[from] = append(b.states[from], Edge{Kind: Epsilon, To: to})
}

func (b *nfaBuilder) push(f nfaFrag) { b.stack = append(b.stack, f) }

func (b *nfaBuilder) pop(t Token) (nfaFrag, error) {
	if len(b.stack) == 0 {
		return nfaFrag{}, fmt.Errorf("%w: operator %q has too few operands", ErrMalformedPostfix, t.String())
	}
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return f, nil
}

func (b *nfaBuilder) pop2(t Token) (f1, f2 nfaFrag, err error) {
	if f2, err = b.pop(t); err != nil {
		return
	}
	f1, err = b.pop(t)
	return
}

// BuildNFA applies Thompson's construction to a postfix expression.
func BuildNFA(postfix Postfix) (*NFA, error) {
	b := &nfaBuilder{}
	for _, t := range postfix {
		switch t.Kind {
		case TokSymbol:
			s, a := b.newState(), b.newState()
			b.states[s] = append(b.states[s], Edge{Kind: OnSymbol, Symbol: t.Sym, To: a})
			b.push(nfaFrag{s, a})
		case TokConcat:
			f1, f2, err := b.pop2(t)
			if err != nil {
				return nil, err
			}
			b.epsilon(f1.accept, f2.start)
			b.push(nfaFrag{f1.start, f2.accept})
		case TokUnion:
			f1, f2, err := b.pop2(t)
			if err != nil {
				return nil, err
			}
			s, a := b.newState(), b.newState()
			b.epsilon(s, f1.start)
			b.epsilon(s, f2.start)
			b.epsilon(f1.accept, a)
			b.epsilon(f2.accept, a)
			b.push(nfaFrag{s, a})
		case TokStar:
			f, err := b.pop(t)
			if err != nil {
				return nil, err
			}
			s, a := b.newState(), b.newState()
			b.epsilon(s, f.start)
			b.epsilon(s, a)
			b.epsilon(f.accept, f.start)
			b.epsilon(f.accept, a)
			b.push(nfaFrag{s, a})
		case TokPlus:
			f, err := b.pop(t)
			if err != nil {
				return nil, err
			}
			s, a := b.newState(), b.newState()
			b.epsilon(s, f.start)
			b.epsilon(f.accept, f.start)
			b.epsilon(f.accept, a)
			b.push(nfaFrag{s, a})
		case TokQMark:
			f, err := b.pop(t)
			if err != nil {
				return nil, err
			}
			s, a := b.newState(), b.newState()
			b.epsilon(s, f.start)
			b.epsilon(s, a)
			b.epsilon(f.accept, a)
			b.push(nfaFrag{s, a})
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, t.String())
		}
	}

	if len(b.stack) != 1 {
		return nil, fmt.Errorf("%w: %d fragments left, want 1", ErrMalformedPostfix, len(b.stack))
	}
	f := b.stack[0]
	return &NFA{states: b.states, start: f.start, accept: f.accept}, nil
}
