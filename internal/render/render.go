// Package render turns automaton graphs into files: Graphviz DOT directly,
// or images through the external dot binary.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"regexdfa/internal/regexlib"
)

// ErrNoBackend is returned when the layout binary can not be found.
var ErrNoBackend = errors.New("graphviz dot binary not available")

type Renderer struct {
	// DotBin is the Graphviz executable, "dot" when empty
	DotBin string
	// Format is "dot" to write the source itself, otherwise a dot -T
	// output format such as "png" or "svg"
	Format string
}

func (r Renderer) bin() string {
	if r.DotBin == "" {
		return "dot"
	}
	return r.DotBin
}

// Render writes g to path. "-" writes DOT source to stdout regardless of
// Format.
func (r Renderer) Render(g regexlib.Graph, path string) error {
	var buf bytes.Buffer
	if err := regexlib.ExportDOT(&buf, g); err != nil {
		return fmt.Errorf("export dot: %w", err)
	}

	if path == "-" {
		_, err := io.Copy(os.Stdout, &buf)
		return err
	}

	if r.Format == "" || r.Format == "dot" {
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("cannot create %s: %w", path, err)
		}
		return nil
	}

	bin, err := exec.LookPath(r.bin())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoBackend, err)
	}
	var stderr bytes.Buffer
	cmd := exec.Command(bin, "-T"+r.Format, "-o", path)
	cmd.Stdin = &buf
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("dot failed: %v: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}
	return nil
}

// Safely runs fn and reports any error or panic to w instead of passing it
// on. It returns whether fn succeeded.
func Safely(w io.Writer, what string, fn func() error) (ok bool) {
	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintf(w, "%s: rendering panicked: %v\n", what, p)
			ok = false
		}
	}()
	if err := fn(); err != nil {
		fmt.Fprintf(w, "%s: %v\n", what, err)
		return false
	}
	return true
}
