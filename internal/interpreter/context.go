package interpreter

import (
	"io"

	"regexdfa/internal/regexlib"
	"regexdfa/internal/render"
)

// Context stores the session state shared by all commands.

type Context struct {
	Env      *Environment
	Out      io.Writer
	Log      *regexlib.Logger
	Renderer render.Renderer

	// Regex is the current regex, set by compile and use
	Regex *regexlib.Regex
	// Failures counts failed expectations and batch test strings
	Failures int
}

func NewContext(out io.Writer, log *regexlib.Logger) *Context {
	return &Context{Env: NewEnvironment(), Out: out, Log: log, Renderer: render.Renderer{Format: "dot"}}
}
