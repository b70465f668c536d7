package regexlib

import (
	"fmt"
	"strings"
)

// Postfix is a token sequence in reverse-Polish order.
type Postfix []Token

func (p Postfix) String() string {
	var sb strings.Builder
	for _, t := range p {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// precedence of the binary and postfix operators, all left-associative
var precedence = map[TokenKind]int{
	TokStar:   3,
	TokPlus:   3,
	TokQMark:  3,
	TokConcat: 2,
	TokUnion:  1,
}

// opens an operand on its right: nothing may be concatenated after it
func opensOperand(k TokenKind) bool {
	return k == TokLParen || k == TokUnion || k == TokConcat
}

// closes or extends the operand on its left
func closesOperand(k TokenKind) bool {
	switch k {
	case TokRParen, TokUnion, TokConcat, TokStar, TokPlus, TokQMark:
		return true
	}
	return false
}

// insertConcat makes implicit concatenation explicit.
func insertConcat(toks []Token) []Token {
	out := make([]Token, 0, 2*len(toks))
	for i, t := range toks {
		out = append(out, t)
		if i+1 < len(toks) && !opensOperand(t.Kind) && !closesOperand(toks[i+1].Kind) {
			out = append(out, Token{Kind: TokConcat, Sym: '.', Pos: -1})
		}
	}
	return out
}

// toPostfix runs shunting-yard over an explicit-concatenation token stream.
func toPostfix(toks []Token) (Postfix, error) {
	out := make(Postfix, 0, len(toks))
	var stack []Token

	for _, t := range toks {
		switch t.Kind {
		case TokLParen:
			stack = append(stack, t)
		case TokRParen:
			for len(stack) > 0 && stack[len(stack)-1].Kind != TokLParen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &SyntaxError{Pos: t.Pos, Msg: "unmatched ')'"}
			}
			stack = stack[:len(stack)-1]
		case TokSymbol:
			out = append(out, t)
		default:
			cur := precedence[t.Kind]
			for len(stack) > 0 {
				top, ok := precedence[stack[len(stack)-1].Kind]
				if !ok || top < cur {
					break
				}
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokLParen {
			return nil, &SyntaxError{Pos: top.Pos, Msg: "unmatched '('"}
		}
		out = append(out, top)
	}
	return out, nil
}

// ToPostfix converts an infix pattern to postfix form.
func ToPostfix(pattern string) (Postfix, error) {
	toks, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	return toPostfix(insertConcat(toks))
}

// ParsePostfix reads a postfix string where every reserved character is an
// operator and every other character a symbol. Parentheses are kept as
// tokens; the NFA builder rejects them.
func ParsePostfix(s string) (Postfix, error) {
	toks, err := Tokenize(s)
	if err != nil {
		return nil, fmt.Errorf("postfix %q: %w", s, err)
	}
	return Postfix(toks), nil
}
