package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestInteractiveRegexToDFA(t *testing.T) {
	dir := t.TempDir()
	code, out, _ := runCLI(t, "1\na|b\nb\n", "-dot", dir)
	assert.Equal(t, code, 0)
	assert.Assert(t, strings.HasPrefix(out, "Modes: \n1. Regex to DFA \n2. Run test cases\nEnter the mode: Enter the regex: "))
	assert.Assert(t, strings.Contains(out, "Accept states: 1 2\n"))
	assert.Assert(t, strings.Contains(out, "--------------------------------\nEnter the string to test: String accepted!\n"))

	for _, name := range []string{"nfa.dot", "dfa.dot"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NilError(t, err, name)
	}
}

func TestRegexToDFAFlags(t *testing.T) {
	tests := []struct {
		re, input string
		want      string
	}{
		{"a.b", "ab", "String accepted!"},
		{"a.b", "a", "String rejected!"},
		{"(a|b)c", "bc", "String accepted!"},
		{"a+", "b", "String rejected!"},
	}
	for _, tt := range tests {
		code, out, _ := runCLI(t, "", "-mode", "1", "-re", tt.re, "-input", tt.input, "-dot", "")
		assert.Equal(t, code, 0)
		assert.Assert(t, strings.HasSuffix(out, tt.want+"\n"), "%s on %q: %s", tt.re, tt.input, out)
	}
}

func TestEmptyTestStringFromPrompt(t *testing.T) {
	code, out, _ := runCLI(t, "\n", "-mode", "1", "-re", "a*", "-dot", "")
	assert.Equal(t, code, 0)
	assert.Assert(t, strings.HasSuffix(out, "String accepted!\n"))
}

func TestRenderFailureDoesNotAbort(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir")
	code, out, _ := runCLI(t, "", "-mode", "1", "-re", "a", "-input", "a", "-dot", missing)
	assert.Equal(t, code, 0)
	assert.Assert(t, strings.Contains(out, "nfa: cannot create"))
	assert.Assert(t, strings.Contains(out, "dfa: cannot create"))
	assert.Assert(t, strings.HasSuffix(out, "String accepted!\n"))
}

func TestCompileErrorExitsNonZero(t *testing.T) {
	code, out, _ := runCLI(t, "", "-mode", "1", "-re", "(a", "-dot", "")
	assert.Equal(t, code, 1)
	assert.Assert(t, strings.Contains(out, "Error: syntax error"))
}

func TestBatchMode(t *testing.T) {
	path := filepath.Join("..", "..", "internal", "batch", "testdata", "basic.json")
	code, out, _ := runCLI(t, "2\n"+path+"\n")
	assert.Equal(t, code, 0)
	assert.Assert(t, strings.Contains(out, "Enter the test cases JSON file path (e.g. tests.json): concat: regex='a.b'"))
	assert.Assert(t, strings.HasSuffix(out, "16/16 tests passed.\n"))
}

func TestBatchUnreadableFile(t *testing.T) {
	code, out, _ := runCLI(t, "", "-mode", "2", "-batch", "does-not-exist.json")
	assert.Equal(t, code, 1)
	assert.Assert(t, strings.Contains(out, "Error: could not open test file does-not-exist.json"))
}

func TestUnknownMode(t *testing.T) {
	code, out, _ := runCLI(t, "7\n")
	assert.Equal(t, code, 1)
	assert.Assert(t, strings.Contains(out, `Error: unknown mode "7"`))
}

func TestNoInput(t *testing.T) {
	code, _, _ := runCLI(t, "")
	assert.Equal(t, code, 1)
}

func TestScriptMode(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "s.rx")
	src := "compile \"a+\"\nexpect \"aa\" accept\nexpect \"\" accept\n"
	assert.NilError(t, os.WriteFile(script, []byte(src), 0o644))

	code, out, errOut := runCLI(t, "", "-script", script)
	assert.Equal(t, code, 1)
	assert.Assert(t, strings.Contains(out, "input='' expected=true result=false => FAIL"))
	assert.Equal(t, errOut, "1 expectation(s) failed\n")
}

func TestBadFlag(t *testing.T) {
	code, _, _ := runCLI(t, "", "-nope")
	assert.Equal(t, code, 2)
}
