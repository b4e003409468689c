package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	input := "(Vx0 (Ex1 (^ (= (a x y) (b x y)) (v (~ (p y)) q))))"
	want := []Token{
		{Type: TokenLParen},
		{Type: TokenForall},
		Sym("x0"),
		{Type: TokenLParen},
		{Type: TokenExists},
		Sym("x1"),
		{Type: TokenLParen},
		{Type: TokenAnd},
		{Type: TokenLParen},
		{Type: TokenEqual},
		{Type: TokenLParen},
		Sym("a"),
		Sym("x"),
		Sym("y"),
		{Type: TokenRParen},
		{Type: TokenLParen},
		Sym("b"),
		Sym("x"),
		Sym("y"),
		{Type: TokenRParen},
		{Type: TokenRParen},
		{Type: TokenLParen},
		{Type: TokenOr},
		{Type: TokenLParen},
		{Type: TokenNot},
		{Type: TokenLParen},
		Sym("p"),
		Sym("y"),
		{Type: TokenRParen},
		{Type: TokenRParen},
		Sym("q"),
		{Type: TokenRParen},
		{Type: TokenRParen},
		{Type: TokenRParen},
		{Type: TokenRParen},
	}

	got := NewLexer(input).Tokenize()
	assert.Len(t, got, 35)
	assert.Equal(t, want, got)
}

func TestTokenizeSymbols(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty input",
			input: "",
			want:  []Token{},
		},
		{
			name:  "spaces only",
			input: "   ",
			want:  []Token{},
		},
		{
			name:  "multi-character symbol",
			input: "foo_1",
			want:  []Token{Sym("foo_1")},
		},
		{
			name:  "symbol ends at reserved character",
			input: "abcVdef",
			want:  []Token{Sym("abc"), {Type: TokenForall}, Sym("def")},
		},
		{
			name:  "equality splits symbols",
			input: "x=y",
			want:  []Token{Sym("x"), {Type: TokenEqual}, Sym("y")},
		},
		{
			name:  "lowercase v is always the or token",
			input: "v",
			want:  []Token{{Type: TokenOr}},
		},
		{
			name:  "adjacent specials",
			input: "()~^",
			want: []Token{
				{Type: TokenLParen},
				{Type: TokenRParen},
				{Type: TokenNot},
				{Type: TokenAnd},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewLexer(tt.input).Tokenize())
		})
	}
}
