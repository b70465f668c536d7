package regexlib

// Match reports whether the DFA accepts input. It stops at the first
// symbol with no transition and never modifies the DFA, so concurrent
// calls are safe.
func (d *DFA) Match(input string) bool {
	state := d.Start()
	for _, r := range input {
		next, ok := d.Step(state, r)
		if !ok {
			return false
		}
		state = next
	}
	return d.IsAccept(state)
}
