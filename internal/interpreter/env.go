package interpreter

import (
	"sort"
	"strings"

	"regexdfa/internal/regexlib"
)

// Environment holds regexes compiled under a name.

type Environment struct {
	vars map[string]*regexlib.Regex
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]*regexlib.Regex)}
}

func (e *Environment) Get(name string) (*regexlib.Regex, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Environment) Set(name string, re *regexlib.Regex) {
	e.vars[name] = re
}

func (e *Environment) String() string {
	names := make([]string, 0, len(e.vars))
	for n := range e.vars {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n + "=" + e.vars[n].Pattern()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
