package regexlib

import (
	"fmt"
)

// Regex is the result of one compile: every pipeline stage is kept for
// inspection and rendering, none is shared with other compiles.
type Regex struct {
	pattern string
	postfix Postfix
	nfa     *NFA
	dfa     *DFA
}

// Compile runs the whole pipeline: infix to postfix, Thompson NFA, subset
// construction.
func Compile(pattern string) (*Regex, error) {
	return CompileLogged(pattern, nil)
}

// CompileLogged is Compile with stage tracing written to log.
func CompileLogged(pattern string, log *Logger) (*Regex, error) {
	log.Section(fmt.Sprintf("compile %q", pattern))

	postfix, err := ToPostfix(pattern)
	if err != nil {
		return nil, err
	}
	log.Log("postfix: %s", postfix)

	nfa, err := BuildNFA(postfix)
	if err != nil {
		return nil, err
	}
	log.Log("nfa: %d states, start=%d accept=%d", nfa.NumStates(), nfa.Start(), nfa.Accept())

	dfa := SubsetConstruct(nfa)
	log.Log("alphabet: %q", string(dfa.alphabet))
	log.Log("dfa: %d states, accept=%v", dfa.NumStates(), dfa.AcceptStates())

	return &Regex{pattern: pattern, postfix: postfix, nfa: nfa, dfa: dfa}, nil
}

func MustCompile(p string) *Regex {
	r, err := Compile(p)
	if err != nil {
		panic(err)
	}
	return r
}

// Match simulates input against the compiled DFA.
func (r *Regex) Match(input string) bool { return r.dfa.Match(input) }

func (r *Regex) Pattern() string { return r.pattern }
func (r *Regex) Postfix() Postfix { return r.postfix }
func (r *Regex) NFA() *NFA { return r.nfa }
func (r *Regex) DFA() *DFA { return r.dfa }

func (r *Regex) String() string { return r.pattern }
