package regexlib

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func TestTokenizeKinds(t *testing.T) {
	toks, err := Tokenize("a*(b|c)+.d?")
	assert.NilError(t, err)

	want := []TokenKind{
		TokSymbol, TokStar, TokLParen, TokSymbol, TokUnion, TokSymbol,
		TokRParen, TokPlus, TokConcat, TokSymbol, TokQMark,
	}
	got := make([]TokenKind, len(toks))
	for i, tok := range toks {
		got[i] = tok.Kind
	}
	assert.DeepEqual(t, want, got)
}

func TestTokenizePositions(t *testing.T) {
	toks, err := Tokenize("ab|c")
	assert.NilError(t, err)
	want := []Token{
		{Kind: TokSymbol, Sym: 'a', Pos: 0},
		{Kind: TokSymbol, Sym: 'b', Pos: 1},
		{Kind: TokUnion, Sym: '|', Pos: 2},
		{Kind: TokSymbol, Sym: 'c', Pos: 3},
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeMultiByteSymbol(t *testing.T) {
	toks, err := Tokenize("é|ß")
	assert.NilError(t, err)
	assert.Equal(t, len(toks), 3)
	assert.Equal(t, toks[0].Sym, 'é')
	assert.Equal(t, toks[1].Kind, TokUnion)
	assert.Equal(t, toks[1].Pos, 2)
	assert.Equal(t, toks[2].Sym, 'ß')
}

func TestTokenizeSpaceIsSymbol(t *testing.T) {
	toks, err := Tokenize("a b")
	assert.NilError(t, err)
	assert.Equal(t, len(toks), 3)
	assert.Equal(t, toks[1].Kind, TokSymbol)
	assert.Equal(t, toks[1].Sym, ' ')
}

func TestTokenizeInvalidUTF8(t *testing.T) {
	_, err := Tokenize("a\xffb")
	assert.Assert(t, errors.Is(err, ErrSyntax), "got %v", err)
}

func TestTokenizeEmpty(t *testing.T) {
	toks, err := Tokenize("")
	assert.NilError(t, err)
	assert.Equal(t, len(toks), 0)
}
