// Package codegen emits a standalone Go matcher for a compiled DFA.
package codegen

import (
	"fmt"
	"go/token"
	"io"

	"github.com/dave/jennifer/jen"

	"regexdfa/internal/regexlib"
)

// Config names the generated file and function.
type Config struct {
	// Package is the Go package name of the generated file
	Package string

	// Name is the generated function name, it must be an exported identifier
	Name string

	// Pattern is copied into the header comment
	Pattern string
}

// Validate checks if the config is usable.
func (c Config) Validate() error {
	if c.Package == "" || !token.IsIdentifier(c.Package) {
		return fmt.Errorf("invalid package name %q", c.Package)
	}
	if !token.IsIdentifier(c.Name) || !token.IsExported(c.Name) {
		return fmt.Errorf("invalid function name %q: must be an exported identifier", c.Name)
	}
	return nil
}

// Generate builds a file holding func Name(s string) bool that walks d
// with a state switch. The result has no dependency on this module.
func Generate(cfg Config, d *regexlib.DFA) (*jen.File, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := jen.NewFile(cfg.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by regexdfa for pattern: %s. DO NOT EDIT.", cfg.Pattern))

	cases := make([]jen.Code, 0, d.NumStates())
	for state := 0; state < d.NumStates(); state++ {
		trans := d.Transitions(state)
		if len(trans) == 0 {
			cases = append(cases, jen.Case(jen.Lit(state)).Block(jen.Return(jen.False())))
			continue
		}
		symCases := make([]jen.Code, 0, len(trans)+1)
		for _, t := range trans {
			symCases = append(symCases, jen.Case(jen.LitRune(t.Symbol)).Block(
				jen.Id("state").Op("=").Lit(t.To),
			))
		}
		symCases = append(symCases, jen.Default().Block(jen.Return(jen.False())))
		cases = append(cases, jen.Case(jen.Lit(state)).Block(jen.Switch(jen.Id("r")).Block(symCases...)))
	}

	body := []jen.Code{
		jen.Id("state").Op(":=").Lit(d.Start()),
		jen.For(jen.List(jen.Id("_"), jen.Id("r")).Op(":=").Range().Id("s")).Block(
			jen.Switch(jen.Id("state")).Block(cases...),
		),
	}
	if accepts := d.AcceptStates(); len(accepts) > 0 {
		vals := make([]jen.Code, len(accepts))
		for i, id := range accepts {
			vals[i] = jen.Lit(id)
		}
		body = append(body, jen.Switch(jen.Id("state")).Block(
			jen.Case(vals...).Block(jen.Return(jen.True())),
		))
	}
	body = append(body, jen.Return(jen.False()))

	f.Commentf("%s reports whether s is in the language of %s.", cfg.Name, cfg.Pattern)
	f.Func().Id(cfg.Name).Params(jen.Id("s").String()).Bool().Block(body...)
	return f, nil
}

// Render writes the generated, gofmt'ed source to w.
func Render(w io.Writer, cfg Config, d *regexlib.DFA) error {
	f, err := Generate(cfg, d)
	if err != nil {
		return err
	}
	return f.Render(w)
}
