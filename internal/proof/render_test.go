package proof

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAxiom(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "p ⇒  p", Render(axiom(t, []string{"p"}, []string{"p"})))
	assert.Equal(t, " ⇒  (= x x)", Render(axiom(t, nil, []string{"(= x x)"})))
}

func TestRenderWiderConclusion(t *testing.T) {
	t.Parallel()

	// the conclusion is wider than the premise, so the premise block is
	// shifted right instead of the conclusion being clipped
	node := WeakeningRight{
		Premise: axiom(t, []string{"p"}, []string{"p"}),
		Seq:     seq(t, []string{"p"}, []string{"p", "q"}),
	}
	want := strings.Join([]string{
		" p ⇒  p       ",
		"----------(wR)",
		"p ⇒  p, q     ",
	}, "\n")
	assert.Equal(t, want, Render(node))
}

func TestRenderNarrowerConclusion(t *testing.T) {
	t.Parallel()

	node := ContractionLeft{
		Premise: axiom(t, []string{"p", "p"}, []string{"q"}),
		Seq:     seq(t, []string{"p"}, []string{"q"}),
	}
	want := strings.Join([]string{
		"p, p ⇒  q     ",
		"----------(cL)",
		" p ⇒  q       ",
	}, "\n")
	assert.Equal(t, want, Render(node))
}

func TestRenderBinary(t *testing.T) {
	t.Parallel()

	node := Cut{
		Left:  axiom(t, nil, []string{"p"}),
		Right: axiom(t, []string{"p"}, []string{"q"}),
		Seq:   seq(t, nil, []string{"q"}),
	}
	want := strings.Join([]string{
		" ⇒  p    p ⇒  q      ",
		" ---------------(Cut)",
		"      ⇒  q           ",
	}, "\n")
	assert.Equal(t, want, Render(node))
}

func TestRenderUnevenPremiseHeights(t *testing.T) {
	t.Parallel()

	// the left branch is taller than the right; the right block must be
	// top-padded so both conclusions stay on the bottom row
	tall := ContractionLeft{
		Premise: axiom(t, []string{"p", "p"}, []string{"q"}),
		Seq:     seq(t, []string{"p"}, []string{"q"}),
	}
	node := AndRight{
		Left:  tall,
		Right: axiom(t, []string{"p"}, []string{"r"}),
		Seq:   seq(t, []string{"p"}, []string{"(^ q r)"}),
	}

	out := Render(node)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)

	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(line), "line %d", i)
	}

	// the right premise appears on the same row as the tall branch's
	// conclusion, above the final inference line
	assert.Contains(t, lines[2], "p ⇒  r")
	assert.Contains(t, lines[3], "(∧R)")
	assert.Contains(t, lines[3], "---")
	assert.Contains(t, lines[4], node.Conclusion().String())

	// rows above the short premise are blank
	assert.Equal(t, "", strings.TrimSpace(lines[0][len(lines[0])-7:]))
}

func TestRenderKeepsColumnsAligned(t *testing.T) {
	t.Parallel()

	// every rendered block is a perfect rectangle
	node := ImpliesRight{
		Premise: NotLeft{
			Premise: axiom(t, []string{"q"}, []string{"q", "p"}),
			Seq:     seq(t, []string{"(~ p)", "q"}, []string{"q"}),
		},
		Seq: seq(t, []string{"q"}, []string{"q", "(> (~ p) q)"}),
	}

	lines := strings.Split(Render(node), "\n")
	require.Len(t, lines, 5)
	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(line), "line %d", i)
	}
}
