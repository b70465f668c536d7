// Package batch runs JSON-defined regex test suites against the compiler.
package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"regexdfa/internal/regexlib"
)

var (
	// ErrIO is returned when the test file can not be read.
	ErrIO = errors.New("could not open test file")
	// ErrMalformed is returned for invalid JSON or a case without a regex.
	ErrMalformed = errors.New("malformed test file")
)

type TestString struct {
	Input    string `json:"input"`
	Expected bool   `json:"expected"`
}

type Case struct {
	Name        string       `json:"name"`
	Regex       string       `json:"regex"`
	TestStrings []TestString `json:"test_strings"`
}

type rawCase struct {
	Name        string       `json:"name"`
	Regex       *string      `json:"regex"`
	TestStrings []TestString `json:"test_strings"`
}

// Summary counts test strings, not cases.
type Summary struct {
	Passed int
	Total  int
}

func (s Summary) OK() bool { return s.Passed == s.Total }

func (s Summary) String() string {
	return fmt.Sprintf("%d/%d tests passed.", s.Passed, s.Total)
}

// Parse decodes a whole suite. Nothing is returned unless every case is
// well formed.
func Parse(r io.Reader) ([]Case, error) {
	var raw []rawCase
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after test array", ErrMalformed)
	}
	cases := make([]Case, 0, len(raw))
	for i, rc := range raw {
		if rc.Regex == nil {
			return nil, fmt.Errorf("%w: case %d (%q) has no regex", ErrMalformed, i, rc.Name)
		}
		cases = append(cases, Case{Name: rc.Name, Regex: *rc.Regex, TestStrings: rc.TestStrings})
	}
	return cases, nil
}

// Load reads and parses the suite at path.
func Load(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrIO, path, err)
	}
	defer f.Close()
	cases, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// Run compiles each case once, simulates every test string and prints one
// line per string followed by the summary. A regex that fails to compile
// fails all of its test strings.
func Run(w io.Writer, cases []Case, log *regexlib.Logger) Summary {
	var sum Summary
	for _, c := range cases {
		re, err := regexlib.CompileLogged(c.Regex, log)
		if err != nil {
			fmt.Fprintf(w, "%s: regex='%s' error: %v\n", c.Name, c.Regex, err)
			sum.Total += len(c.TestStrings)
			continue
		}
		for _, ts := range c.TestStrings {
			sum.Total++
			result := re.Match(ts.Input)
			status := "FAIL"
			if result == ts.Expected {
				status = "PASS"
				sum.Passed++
			}
			fmt.Fprintf(w, "%s: regex='%s' input='%s' expected=%t result=%t => %s\n",
				c.Name, c.Regex, ts.Input, ts.Expected, result, status)
		}
	}
	fmt.Fprintf(w, "\n%s\n", sum)
	return sum
}

// RunFile loads path and runs it.
func RunFile(w io.Writer, path string, log *regexlib.Logger) (Summary, error) {
	cases, err := Load(path)
	if err != nil {
		return Summary{}, err
	}
	return Run(w, cases, log), nil
}
