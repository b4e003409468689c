package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermsEqual(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b Term
		want bool
	}{
		{
			name: "same variable",
			a:    Var{Name: "x"},
			b:    Var{Name: "x"},
			want: true,
		},
		{
			name: "different variables",
			a:    Var{Name: "x"},
			b:    Var{Name: "y"},
			want: false,
		},
		{
			name: "variable vs function",
			a:    Var{Name: "f"},
			b:    Fn{Name: "f"},
			want: false,
		},
		{
			name: "same application",
			a:    Fn{Name: "f", Args: []Term{Var{Name: "x"}, Var{Name: "y"}}},
			b:    Fn{Name: "f", Args: []Term{Var{Name: "x"}, Var{Name: "y"}}},
			want: true,
		},
		{
			name: "same name different arity",
			a:    Fn{Name: "f", Args: []Term{Var{Name: "x"}}},
			b:    Fn{Name: "f", Args: []Term{Var{Name: "x"}, Var{Name: "y"}}},
			want: false,
		},
		{
			name: "argument order matters",
			a:    Fn{Name: "f", Args: []Term{Var{Name: "x"}, Var{Name: "y"}}},
			b:    Fn{Name: "f", Args: []Term{Var{Name: "y"}, Var{Name: "x"}}},
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TermsEqual(tt.a, tt.b))
			assert.Equal(t, tt.want, TermsEqual(tt.b, tt.a))
		})
	}
}

func TestTermVars(t *testing.T) {
	t.Parallel()

	term := Fn{Name: "f", Args: []Term{
		Var{Name: "x"},
		Fn{Name: "g", Args: []Term{Var{Name: "y"}, Var{Name: "x"}}},
	}}
	assert.Equal(t, []string{"x", "y"}, TermVars(term).Names())

	assert.Equal(t, []string{"c"}, TermVars(Var{Name: "c"}).Names())
	assert.Empty(t, TermVars(Fn{Name: "c"}).Names())
}

func TestSubterms(t *testing.T) {
	t.Parallel()

	// f(x, g(x)): the repeated x appears once.
	term := Fn{Name: "f", Args: []Term{
		Var{Name: "x"},
		Fn{Name: "g", Args: []Term{Var{Name: "x"}}},
	}}
	subterms := Subterms(term)

	assert.Len(t, subterms, 3)
	assert.True(t, containsTerm(subterms, term))
	assert.True(t, containsTerm(subterms, Var{Name: "x"}))
	assert.True(t, containsTerm(subterms, Fn{Name: "g", Args: []Term{Var{Name: "x"}}}))

	assert.Equal(t, []Term{Var{Name: "x"}}, Subterms(Var{Name: "x"}))
}

func TestTermString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", Var{Name: "x"}.String())
	assert.Equal(t, "(c)", Fn{Name: "c"}.String())
	assert.Equal(t,
		"(f x (g y))",
		Fn{Name: "f", Args: []Term{
			Var{Name: "x"},
			Fn{Name: "g", Args: []Term{Var{Name: "y"}}},
		}}.String())
}
