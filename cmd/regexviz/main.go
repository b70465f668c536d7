package main

import (
	"flag"
	"fmt"
	"os"

	"regexdfa/internal/regexlib"
	"regexdfa/internal/render"
)

func main() {
	pattern := flag.String("re", "", "pattern (required)")
	nfaFlag := flag.Bool("nfa", false, "export Thompson NFA instead of the DFA")
	outFile := flag.String("o", "graph.dot", "output file, - for stdout")
	format := flag.String("T", "dot", "output format: dot, or any dot -T format such as png or svg")
	pngFlag := flag.Bool("png", false, "shorthand for -T png")
	dotBin := flag.String("dotbin", "dot", "graphviz dot executable")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: regexviz -re <pattern> [-nfa] [-o file] [-T format|-png]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *pngFlag {
		*format = "png"
	}

	re, err := regexlib.Compile(*pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile %q: %v\n", *pattern, err)
		os.Exit(1)
	}

	g := re.DFA().Graph()
	what := "DFA"
	if *nfaFlag {
		g = re.NFA().Graph()
		what = "NFA"
	}

	r := render.Renderer{DotBin: *dotBin, Format: *format}
	if err := r.Render(g, *outFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *outFile != "-" {
		fmt.Printf("%s written to %s\n", what, *outFile)
	}
}
