package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formalverse/sequin/internal/proof"
)

const validProof = `
rule: weakening-left
conclusion:
  antecedent: ["q", "p"]
  succedent: ["p"]
premises:
  - rule: axiom
    conclusion:
      antecedent: ["p"]
      succedent: ["p"]
`

const invalidLeafProof = `
rule: weakening-left
conclusion:
  antecedent: ["q", "p"]
  succedent: ["q"]
premises:
  - rule: axiom
    conclusion:
      antecedent: ["p"]
      succedent: ["q"]
`

func TestRunSourceValidProof(t *testing.T) {
	t.Parallel()

	issues, err := NewEngine().RunSource([]byte(validProof))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestRunSourceInvalidProof(t *testing.T) {
	t.Parallel()

	issues, err := NewEngine().RunSource([]byte(invalidLeafProof))
	require.NoError(t, err)
	require.Len(t, issues, 1)

	assert.Equal(t, "axiom", issues[0].Rule)
	assert.Equal(t, "root.0", issues[0].Path)
	assert.Equal(t, "p ⇒  q", issues[0].Sequent)
	assert.Contains(t, issues[0].Message, "(ax)")
}

func TestRunSourceErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		source  string
		wantErr string
	}{
		{
			name:    "not yaml",
			source:  "rule: [unclosed",
			wantErr: "invalid proof document",
		},
		{
			name: "unknown rule",
			source: `
rule: modus-ponens
conclusion:
  antecedent: ["p"]
  succedent: ["p"]
`,
			wantErr: "unknown rule",
		},
		{
			name: "wrong premise count",
			source: `
rule: cut
conclusion:
  antecedent: ["p"]
  succedent: ["p"]
premises:
  - rule: axiom
    conclusion:
      antecedent: ["p"]
      succedent: ["p"]
`,
			wantErr: "takes 2 premise(s)",
		},
		{
			name: "bad formula syntax",
			source: `
rule: axiom
conclusion:
  antecedent: ["(^ p"]
  succedent: ["p"]
`,
			wantErr: "antecedent",
		},
		{
			name: "malformed step",
			source: `
rule: contraction-left
conclusion:
  antecedent: ["p"]
  succedent: ["q"]
premises:
  - rule: axiom
    conclusion:
      antecedent: ["p"]
      succedent: ["q"]
`,
			wantErr: "malformed step at root",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewEngine().RunSource([]byte(tt.source))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRunStampsFilename(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(invalidLeafProof), 0o644))

	issues, err := NewEngine().Run(path)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, path, issues[0].Filename)
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewEngine().Run(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestBuildProofShape(t *testing.T) {
	t.Parallel()

	doc := ProofDoc{
		Rule: "cut",
		Conclusion: SequentDoc{
			Succedent: []string{"q"},
		},
		Premises: []ProofDoc{
			{Rule: "axiom", Conclusion: SequentDoc{Succedent: []string{"p"}}},
			{Rule: "axiom", Conclusion: SequentDoc{Antecedent: []string{"p"}, Succedent: []string{"q"}}},
		},
	}

	root, err := BuildProof(doc)
	require.NoError(t, err)

	cut, ok := root.(proof.Cut)
	require.True(t, ok)
	assert.IsType(t, proof.Axiom{}, cut.Left)
	assert.IsType(t, proof.Axiom{}, cut.Right)
	assert.Equal(t, " ⇒  q", cut.Conclusion().String())
}

func TestLoadSourceDoesNotCheck(t *testing.T) {
	t.Parallel()

	// loading builds the tree without judging it; checking is separate
	root, err := NewEngine().LoadSource([]byte(invalidLeafProof))
	require.NoError(t, err)

	issues, err := CheckTree(root)
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}
