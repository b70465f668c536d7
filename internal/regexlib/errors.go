package regexlib

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax reports an infix pattern that can not be tokenized or has
	// unbalanced parentheses.
	ErrSyntax = errors.New("syntax error")
	// ErrMalformedPostfix reports an operator/operand count mismatch.
	ErrMalformedPostfix = errors.New("malformed postfix expression")
	// ErrUnknownOperator reports a postfix token the NFA builder has no rule for.
	ErrUnknownOperator = errors.New("unknown operator")
)

// SyntaxError carries the byte offset of the offending token.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }
