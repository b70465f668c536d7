package regexlib

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type TokenKind int

const (
	TokSymbol TokenKind = iota // alphabet symbol
	TokStar                    // *
	TokPlus                    // +
	TokQMark                   // ?
	TokConcat                  // .
	TokUnion                   // |
	TokLParen                  // (
	TokRParen                  // )
)

// Token is one lexical unit of a pattern. Pos is the byte offset in the
// pattern, or -1 for concatenation operators inserted by the parser.
type Token struct {
	Kind TokenKind
	Sym  rune
	Pos  int
}

var opChars = map[TokenKind]rune{
	TokStar:   '*',
	TokPlus:   '+',
	TokQMark:  '?',
	TokConcat: '.',
	TokUnion:  '|',
	TokLParen: '(',
	TokRParen: ')',
}

func (t Token) String() string {
	if t.Kind == TokSymbol {
		return string(t.Sym)
	}
	if r, ok := opChars[t.Kind]; ok {
		return string(r)
	}
	return fmt.Sprintf("?%d", int(t.Kind))
}

// IsOperator reports whether r is one of the reserved operator characters.
func IsOperator(r rune) bool {
	switch r {
	case '*', '+', '?', '.', '|', '(', ')':
		return true
	}
	return false
}

var (
	lexOnce sync.Once
	lexDef  *lexmachine.Lexer
	lexErr  error
)

func patternLexer() (*lexmachine.Lexer, error) {
	lexOnce.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`[*]`), opAction(TokStar))
		l.Add([]byte(`[+]`), opAction(TokPlus))
		l.Add([]byte(`[?]`), opAction(TokQMark))
		l.Add([]byte(`[.]`), opAction(TokConcat))
		l.Add([]byte(`[|]`), opAction(TokUnion))
		l.Add([]byte(`[(]`), opAction(TokLParen))
		l.Add([]byte(`[)]`), opAction(TokRParen))
		l.Add([]byte(`[^*+?.|()]`), symbolAction)
		if err := l.Compile(); err != nil {
			lexErr = err
			return
		}
		lexDef = l
	})
	return lexDef, lexErr
}

func opAction(kind TokenKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{Kind: kind, Sym: opChars[kind], Pos: m.TC}, nil
	}
}

// symbolAction widens a single-byte match to the whole UTF-8 sequence so a
// multi-byte character becomes one symbol.
func symbolAction(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	r, size := utf8.DecodeRune(s.Text[m.TC:])
	if r == utf8.RuneError && size <= 1 {
		return nil, &SyntaxError{Pos: m.TC, Msg: "invalid UTF-8 in pattern"}
	}
	s.TC = m.TC + size
	return Token{Kind: TokSymbol, Sym: r, Pos: m.TC}, nil
}

// Tokenize splits an infix pattern into symbols and operators.
func Tokenize(pattern string) ([]Token, error) {
	l, err := patternLexer()
	if err != nil {
		return nil, fmt.Errorf("building pattern lexer: %w", err)
	}
	scanner, err := l.Scanner([]byte(pattern))
	if err != nil {
		return nil, fmt.Errorf("scanning pattern: %w", err)
	}
	var toks []Token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			if se, ok := err.(*SyntaxError); ok {
				return nil, se
			}
			return nil, &SyntaxError{Pos: scanner.TC, Msg: err.Error()}
		}
		toks = append(toks, tok.(Token))
	}
	return toks, nil
}
