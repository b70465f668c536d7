package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"regexdfa/internal/batch"
	"regexdfa/internal/interpreter"
	"regexdfa/internal/regexlib"
	"regexdfa/internal/render"
)

type options struct {
	mode    string
	pattern string
	input   string
	batch   string
	script  string
	dotDir  string
	png     bool
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("regexdfa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	o := &options{}
	fs.StringVar(&o.mode, "mode", "", "1 = regex to DFA, 2 = run test cases (prompted when empty)")
	fs.StringVar(&o.pattern, "re", "", "regex for mode 1")
	fs.StringVar(&o.input, "input", "", "string to test in mode 1")
	fs.StringVar(&o.batch, "batch", "", "JSON test file for mode 2")
	fs.StringVar(&o.script, "script", "", "run an interpreter script instead of a mode")
	fs.StringVar(&o.dotDir, "dot", ".", "directory for nfa/dfa graphs, empty to skip rendering")
	fs.BoolVar(&o.png, "png", false, "render PNG via dot -Tpng instead of writing DOT")
	fs.BoolVar(&o.verbose, "v", false, "trace compile stages on stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

// app carries the streams of one run so main stays testable.
type app struct {
	opts *options
	in   *bufio.Reader
	out  io.Writer
	log  *regexlib.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	logger := regexlib.NewLogger(opts.verbose)
	logger.SetOutput(stderr)
	a := &app{opts: opts, in: bufio.NewReader(stdin), out: stdout, log: logger}

	if opts.script != "" {
		return a.runScript(opts.script, stderr)
	}

	mode := opts.mode
	if mode == "" {
		fmt.Fprintln(stdout, "Modes: \n1. Regex to DFA \n2. Run test cases")
		if mode, err = a.prompt("Enter the mode: "); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	switch strings.TrimSpace(mode) {
	case "1":
		err = a.regexToDFA()
	case "2":
		err = a.runTests()
	default:
		err = fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		fmt.Fprintln(stdout, "Error:", err)
		return 1
	}
	return 0
}

// prompt prints msg and reads one line without its line terminator. A
// final line without newline is accepted.
func (a *app) prompt(msg string) (string, error) {
	fmt.Fprint(a.out, msg)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (a *app) valueOrPrompt(v, msg string) (string, error) {
	if v != "" {
		return v, nil
	}
	return a.prompt(msg)
}

func (a *app) regexToDFA() error {
	pattern, err := a.valueOrPrompt(a.opts.pattern, "Enter the regex: ")
	if err != nil {
		return err
	}
	re, err := regexlib.CompileLogged(pattern, a.log)
	if err != nil {
		return err
	}

	a.renderGraph("nfa", re.NFA().Graph())
	if err := re.DFA().WriteTable(a.out); err != nil {
		return err
	}
	a.renderGraph("dfa", re.DFA().Graph())

	fmt.Fprintln(a.out, "--------------------------------")
	input := a.opts.input
	if input == "" {
		// an empty answer is a valid test string
		if input, err = a.prompt("Enter the string to test: "); err != nil {
			return err
		}
	}
	interpreter.DisplayVerdict(a.out, re.Match(input))
	return nil
}

// renderGraph writes g next to the other outputs; failures are printed
// and the run continues.
func (a *app) renderGraph(name string, g regexlib.Graph) {
	if a.opts.dotDir == "" {
		return
	}
	r := render.Renderer{Format: "dot"}
	if a.opts.png {
		r.Format = "png"
	}
	path := filepath.Join(a.opts.dotDir, name+"."+r.Format)
	if render.Safely(a.out, name, func() error { return r.Render(g, path) }) {
		a.log.Log("%s graph written to %s", name, path)
	}
}

func (a *app) runTests() error {
	path, err := a.valueOrPrompt(a.opts.batch, "Enter the test cases JSON file path (e.g. tests.json): ")
	if err != nil {
		return err
	}
	_, err = batch.RunFile(a.out, path, a.log)
	return err
}

func (a *app) runScript(path string, stderr io.Writer) int {
	data, err := os.ReadFile(path)
	if err != nil {
		log.New(stderr, "", 0).Printf("cannot read script: %v", err)
		return 1
	}
	script, err := interpreter.Parse(string(data))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	ctx := interpreter.NewContext(a.out, a.log)
	if a.opts.png {
		ctx.Renderer.Format = "png"
	}
	if err := script.Exec(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if ctx.Failures > 0 {
		fmt.Fprintf(stderr, "%d expectation(s) failed\n", ctx.Failures)
		return 1
	}
	return 0
}
