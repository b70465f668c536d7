package regexlib

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"

	"gotest.tools/v3/assert"
)

// ------------------------------------------------------------------- helpers

func acc(t *testing.T, re *Regex, in string, want bool) {
	t.Helper()
	if got := re.Match(in); got != want {
		t.Fatalf("pattern %q on %q want %v got %v", re.Pattern(), in, want, got)
	}
}

func newRE(t *testing.T, pat string) *Regex {
	t.Helper()
	re, err := Compile(pat)
	if err != nil {
		t.Fatalf("compile %q: %v", pat, err)
	}
	return re
}

// words returns every string over alpha of length <= n.
func words(alpha string, n int) []string {
	out := []string{""}
	frontier := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, w := range frontier {
			for _, r := range alpha {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

// ------------------------------------------------------------------- scenarios

func TestLiteralScenarios(t *testing.T) {
	tests := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"a.b", []string{"ab"}, []string{"a", "b", ""}},
		{"a|b", []string{"a", "b"}, []string{"ab", ""}},
		{"a*", []string{"", "a", "aaaa"}, []string{"b"}},
		{"a+", []string{"a", "aa"}, []string{""}},
		{"a?", []string{"", "a"}, []string{"aa"}},
		{"(a|b)c", []string{"ac", "bc"}, []string{"c", "ab"}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re := newRE(t, tt.pattern)
			for _, s := range tt.accept {
				acc(t, re, s, true)
			}
			for _, s := range tt.reject {
				acc(t, re, s, false)
			}
		})
	}
}

func TestParserPrecedence(t *testing.T) {
	re := newRE(t, "a|bc*")
	acc(t, re, "a", true)
	acc(t, re, "bc", true)
	acc(t, re, "bccc", true)
	acc(t, re, "b", true)
	acc(t, re, "ab", false)
	acc(t, re, "ac", false)
}

func TestUnicodeSymbols(t *testing.T) {
	re := newRE(t, "(é|ß)+ü")
	acc(t, re, "éü", true)
	acc(t, re, "ßéßü", true)
	acc(t, re, "ü", false)
	acc(t, re, "eü", false)
}

func TestRejectStopsOnUnknownSymbol(t *testing.T) {
	re := newRE(t, "ab")
	acc(t, re, "zab", false)
	acc(t, re, "abz", false)
}

// ------------------------------------------------------------------- errors

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
	}{
		{"", ErrMalformedPostfix},
		{"()", ErrMalformedPostfix},
		{"a|", ErrMalformedPostfix},
		{"|a", ErrMalformedPostfix},
		{"*a", ErrMalformedPostfix},
		{"a..b", ErrMalformedPostfix},
		{"(a", ErrSyntax},
		{"a)", ErrSyntax},
		{"(a|b", ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			assert.Assert(t, errors.Is(err, tt.want), "got %v", err)
			assert.Assert(t, re == nil)
		})
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		assert.Assert(t, recover() != nil)
	}()
	MustCompile("(a")
}

// ------------------------------------------------------------------- semantics

// goPattern rewrites a pattern into Go regexp syntax: concatenation is
// implicit there and the whole input must match.
func goPattern(p string) string {
	return "^(?:" + strings.ReplaceAll(p, ".", "") + ")$"
}

func TestLanguageMatchesStdlib(t *testing.T) {
	patterns := []string{
		"a", "ab", "a|b", "a*", "a+", "a?", "(a|b)*", "(a|b)*abb",
		"a(b|c)*c", "(ab|a)*c", "a*b*", "(a*b*)*", "(a?b)+", "((a|b)?c)*",
		"a.b.c", "((a|bc)+)?", "c?(ab)*", "(a+|b+)c?",
	}
	inputs := words("abc", 5)
	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			re := newRE(t, p)
			std := regexp.MustCompile(goPattern(p))
			for _, in := range inputs {
				if got, want := re.Match(in), std.MatchString(in); got != want {
					t.Fatalf("pattern %q on %q: got %v, stdlib %v", p, in, got, want)
				}
			}
		})
	}
}

func TestCompileTwiceSameLanguage(t *testing.T) {
	for _, p := range []string{"(a|b)*abb", "a+b?", "((a|b)?c)*"} {
		a := newRE(t, p)
		b := newRE(t, p)
		eq, w := Equivalent(a.DFA(), b.DFA())
		assert.Assert(t, eq, "pattern %q differs on %q", p, w)
		assert.Equal(t, a.DFA().NumStates(), b.DFA().NumStates())
	}
}

func TestConcurrentMatch(t *testing.T) {
	re := newRE(t, "(a|b)*abb")
	inputs := words("ab", 6)
	var wg sync.WaitGroup
	errs := make(chan string, 8*len(inputs))
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, in := range inputs {
				if re.Match(in) != strings.HasSuffix(in, "abb") {
					errs <- in
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for in := range errs {
		t.Errorf("wrong result for %q", in)
	}
}

func TestCompileLogged(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(true)
	log.SetOutput(&buf)
	_, err := CompileLogged("a|b", log)
	assert.NilError(t, err)
	out := buf.String()
	assert.Assert(t, strings.Contains(out, "postfix: ab|"), out)
	assert.Assert(t, strings.Contains(out, "dfa: 3 states"), out)

	buf.Reset()
	quiet := NewLogger(false)
	quiet.SetOutput(&buf)
	_, err = CompileLogged("a|b", quiet)
	assert.NilError(t, err)
	assert.Equal(t, buf.String(), "")
}

// ------------------------------------------------------------------- Bench (quick)

func BenchmarkMatchLong(b *testing.B) {
	re := MustCompile("(a|b)*abb")
	txt := strings.Repeat("ab", 500_000) + "b"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = re.Match(txt)
	}
}

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Compile("((a|b)?c)*(ab|ba)+d?")
	}
}
