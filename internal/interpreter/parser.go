package interpreter

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"regexdfa/internal/batch"
	"regexdfa/internal/codegen"
	"regexdfa/internal/regexlib"
	"regexdfa/internal/render"
)

// ErrNoRegex is returned by commands that need a compiled regex.
var ErrNoRegex = errors.New("no regex compiled")

type Script struct {
	Commands []*Command `parser:"(@@ ';'?)*"`
}

type Command struct {
	Compile *Compile `parser:"  @@"`
	Use     *Use     `parser:"| @@"`
	Test    *Test    `parser:"| @@"`
	Expect  *Expect  `parser:"| @@"`
	Batch   *Batch   `parser:"| @@"`
	Show    *Show    `parser:"| @@"`
	Dot     *Dot     `parser:"| @@"`
	Gen     *Gen     `parser:"| @@"`
	Equiv   *Equiv   `parser:"| @@"`
}

type Compile struct {
	Pattern string `parser:"'compile' @String"`
	Name    string `parser:"('as' @Ident)?"`
}

type Use struct {
	Name string `parser:"'use' @Ident"`
}

type Test struct {
	Input string `parser:"'test' @String"`
}

type Expect struct {
	Input   string `parser:"'expect' @String"`
	Verdict string `parser:"@('accept' | 'reject')"`
}

type Batch struct {
	Path string `parser:"'batch' @String"`
}

type Show struct {
	What string `parser:"'show' @('postfix' | 'nfa' | 'dfa' | 'env')"`
}

type Dot struct {
	Graph  string `parser:"'dot' @('nfa' | 'dfa')"`
	Path   string `parser:"@String"`
	Format string `parser:"('as' @Ident)?"`
}

type Gen struct {
	Package string `parser:"'gen' @Ident"`
	Name    string `parser:"@Ident"`
	Path    string `parser:"@String"`
}

type Equiv struct {
	Left  *Operand `parser:"'equiv' @@"`
	Right *Operand `parser:"@@"`
}

type Operand struct {
	Pattern *string `parser:"  @String"`
	Name    *string `parser:"| @Ident"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `;`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
	participle.Unquote("String"),
	participle.Elide("Whitespace", "Comment"),
)

func Parse(data string) (*Script, error) {
	return parser.ParseString("input", data)
}

func (s *Script) Exec(ctx *Context) error {
	for _, cmd := range s.Commands {
		if err := cmd.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (c *Command) Exec(ctx *Context) error {
	switch {
	case c.Compile != nil:
		re, err := regexlib.CompileLogged(c.Compile.Pattern, ctx.Log)
		if err != nil {
			return fmt.Errorf("compile %q: %w", c.Compile.Pattern, err)
		}
		ctx.Regex = re
		if c.Compile.Name != "" {
			ctx.Env.Set(c.Compile.Name, re)
		}
	case c.Use != nil:
		re, ok := ctx.Env.Get(c.Use.Name)
		if !ok {
			return fmt.Errorf("undefined regex %s", c.Use.Name)
		}
		ctx.Regex = re
	case c.Test != nil:
		if ctx.Regex == nil {
			return ErrNoRegex
		}
		DisplayVerdict(ctx.Out, ctx.Regex.Match(c.Test.Input))
	case c.Expect != nil:
		if ctx.Regex == nil {
			return ErrNoRegex
		}
		want := c.Expect.Verdict == "accept"
		got := ctx.Regex.Match(c.Expect.Input)
		status := "PASS"
		if got != want {
			status = "FAIL"
			ctx.Failures++
		}
		fmt.Fprintf(ctx.Out, "regex='%s' input='%s' expected=%t result=%t => %s\n",
			ctx.Regex.Pattern(), c.Expect.Input, want, got, status)
	case c.Batch != nil:
		sum, err := batch.RunFile(ctx.Out, c.Batch.Path, ctx.Log)
		if err != nil {
			return err
		}
		ctx.Failures += sum.Total - sum.Passed
	case c.Show != nil:
		return c.Show.Exec(ctx)
	case c.Dot != nil:
		if ctx.Regex == nil {
			return ErrNoRegex
		}
		g := ctx.Regex.DFA().Graph()
		if c.Dot.Graph == "nfa" {
			g = ctx.Regex.NFA().Graph()
		}
		r := ctx.Renderer
		if c.Dot.Format != "" {
			r.Format = c.Dot.Format
		}
		// rendering problems are reported, never fatal
		if render.Safely(ctx.Out, c.Dot.Graph, func() error { return r.Render(g, c.Dot.Path) }) {
			fmt.Fprintf(ctx.Out, "%s written to %s\n", c.Dot.Graph, c.Dot.Path)
		}
	case c.Gen != nil:
		if ctx.Regex == nil {
			return ErrNoRegex
		}
		return c.Gen.Exec(ctx)
	case c.Equiv != nil:
		left, err := c.Equiv.Left.Eval(ctx)
		if err != nil {
			return err
		}
		right, err := c.Equiv.Right.Eval(ctx)
		if err != nil {
			return err
		}
		if eq, w := regexlib.Equivalent(left.DFA(), right.DFA()); eq {
			fmt.Fprintf(ctx.Out, "'%s' and '%s' are equivalent\n", left.Pattern(), right.Pattern())
		} else {
			fmt.Fprintf(ctx.Out, "'%s' and '%s' differ on '%s'\n", left.Pattern(), right.Pattern(), w)
		}
	}
	return nil
}

func (s *Show) Exec(ctx *Context) error {
	if s.What == "env" {
		fmt.Fprintln(ctx.Out, ctx.Env)
		return nil
	}
	if ctx.Regex == nil {
		return ErrNoRegex
	}
	switch s.What {
	case "postfix":
		fmt.Fprintln(ctx.Out, ctx.Regex.Postfix())
	case "nfa":
		DisplayNFA(ctx.Out, ctx.Regex.NFA())
	case "dfa":
		return ctx.Regex.DFA().WriteTable(ctx.Out)
	}
	return nil
}

func (g *Gen) Exec(ctx *Context) error {
	cfg := codegen.Config{Package: g.Package, Name: g.Name, Pattern: ctx.Regex.Pattern()}
	if g.Path == "-" {
		return codegen.Render(ctx.Out, cfg, ctx.Regex.DFA())
	}
	f, err := os.Create(g.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := codegen.Render(f, cfg, ctx.Regex.DFA()); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "matcher %s written to %s\n", g.Name, g.Path)
	return f.Close()
}

func (o *Operand) Eval(ctx *Context) (*regexlib.Regex, error) {
	switch {
	case o.Pattern != nil:
		return regexlib.CompileLogged(*o.Pattern, ctx.Log)
	case o.Name != nil:
		re, ok := ctx.Env.Get(*o.Name)
		if !ok {
			return nil, fmt.Errorf("undefined regex %s", *o.Name)
		}
		return re, nil
	}
	return nil, fmt.Errorf("invalid operand")
}
