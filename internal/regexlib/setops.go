package regexlib

import "golang.org/x/exp/slices"

// dead stands for the implicit sink reached through a missing transition.
const dead = -1

type pair struct{ i, j int }

type visit struct {
	from pair
	sym  rune
}

// Equivalent reports whether a and b accept the same language. When they
// differ, witness is a shortest string accepted by exactly one of them.
func Equivalent(a, b *DFA) (equal bool, witness string) {
	step := func(d *DFA, s int, c rune) int {
		if s == dead {
			return dead
		}
		if t, ok := d.Step(s, c); ok {
			return t
		}
		return dead
	}
	differ := func(p pair) bool { return a.IsAccept(p.i) != b.IsAccept(p.j) }

	alpha := unionRunes(a.alphabet, b.alphabet)
	start := pair{a.Start(), b.Start()}
	parent := map[pair]visit{start: {}}
	queue := []pair{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if differ(p) {
			return false, trace(parent, start, p)
		}
		for _, c := range alpha {
			np := pair{step(a, p.i, c), step(b, p.j, c)}
			if np.i == dead && np.j == dead {
				continue
			}
			if _, seen := parent[np]; !seen {
				parent[np] = visit{from: p, sym: c}
				queue = append(queue, np)
			}
		}
	}
	return true, ""
}

func trace(parent map[pair]visit, start, end pair) string {
	var rs []rune
	for p := end; p != start; {
		v := parent[p]
		rs = append(rs, v.sym)
		p = v.from
	}
	slices.Reverse(rs)
	return string(rs)
}

func unionRunes(a, b []rune) []rune {
	m := map[rune]struct{}{}
	for _, r := range a {
		m[r] = struct{}{}
	}
	for _, r := range b {
		m[r] = struct{}{}
	}
	out := make([]rune, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}
