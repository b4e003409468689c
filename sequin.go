// Package sequin checks and renders derivations in Gentzen's sequent
// calculus LK for classical first-order logic with equality.
package sequin

import (
	"github.com/formalverse/sequin/internal"
	"github.com/formalverse/sequin/internal/logic"
	"github.com/formalverse/sequin/internal/proof"
	"github.com/formalverse/sequin/internal/syntax"
	tt "github.com/formalverse/sequin/internal/types"
)

// CheckEngine is the interface the CLI and batch processor run against.
type CheckEngine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(source []byte) ([]tt.Issue, error)
}

// New creates a proof-checking engine.
func New() *internal.Engine {
	return internal.NewEngine()
}

// ParseFormula parses a prefix-notation formula string.
func ParseFormula(input string) (logic.Formula, error) {
	return syntax.ParseFormula(input)
}

// CheckProof applies the one-step validity check to every node of an
// already-built derivation.
func CheckProof(root proof.LK) ([]tt.Issue, error) {
	return internal.CheckTree(root)
}

// RenderProof lays out an already-built derivation as an ASCII diagram.
func RenderProof(root proof.LK) string {
	return proof.Render(root)
}

// RenderFile loads the proof file at path and lays it out as an ASCII
// diagram.
func RenderFile(path string) (string, error) {
	root, err := internal.NewEngine().Load(path)
	if err != nil {
		return "", err
	}
	return proof.Render(root), nil
}
