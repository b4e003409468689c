package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/formalverse/sequin/internal/logic"
	"github.com/formalverse/sequin/internal/proof"
	"github.com/formalverse/sequin/internal/syntax"
	"github.com/formalverse/sequin/internal/types"
)

// maxProofDepth bounds tree building on pathologically deep documents.
const maxProofDepth = 4096

// ProofDoc is the on-disk YAML form of one derivation node. Formulas
// are written in the prefix notation accepted by internal/syntax.
type ProofDoc struct {
	Rule       string     `yaml:"rule"`
	Conclusion SequentDoc `yaml:"conclusion"`
	Premises   []ProofDoc `yaml:"premises,omitempty"`
}

// SequentDoc is the on-disk form of a sequent.
type SequentDoc struct {
	Antecedent []string `yaml:"antecedent"`
	Succedent  []string `yaml:"succedent"`
}

// Engine loads proof documents and checks every inference in them.
type Engine struct{}

// NewEngine creates a proof-checking engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Run loads the proof file at filename and checks it. Invalid
// inferences come back as issues; loading problems (YAML, formula
// syntax, unknown rules, wrong premise counts, malformed steps) come
// back as errors.
func (e *Engine) Run(filename string) ([]types.Issue, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	issues, err := e.RunSource(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	for i := range issues {
		issues[i].Filename = filename
	}
	return issues, nil
}

// RunSource checks a proof document given as raw YAML.
func (e *Engine) RunSource(source []byte) ([]types.Issue, error) {
	root, err := e.LoadSource(source)
	if err != nil {
		return nil, err
	}
	return CheckTree(root)
}

// Load reads and builds the derivation in filename without checking it.
func (e *Engine) Load(filename string) (proof.LK, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	root, err := e.LoadSource(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return root, nil
}

// LoadSource builds the derivation described by raw YAML.
func (e *Engine) LoadSource(source []byte) (proof.LK, error) {
	var doc ProofDoc
	if err := yaml.Unmarshal(source, &doc); err != nil {
		return nil, fmt.Errorf("invalid proof document: %w", err)
	}
	return BuildProof(doc)
}

// CheckTree applies the one-step validity check to every node of the
// derivation. An empty issue slice means the proof is accepted.
func CheckTree(root proof.LK) ([]types.Issue, error) {
	var issues []types.Issue
	for _, step := range proof.Walk(root) {
		if err := proof.StepPrecondition(step.Node); err != nil {
			return nil, fmt.Errorf("malformed step at %s: %w", step.Path, err)
		}
		if !proof.IsValidStep(step.Node) {
			issues = append(issues, types.Issue{
				Rule:    proof.RuleName(step.Node),
				Path:    step.Path,
				Sequent: step.Node.Conclusion().String(),
				Message: fmt.Sprintf("premises do not justify the conclusion under %s", proof.Label(step.Node)),
			})
		}
	}
	return issues, nil
}

// BuildProof turns a proof document into an LK tree, validating rule
// names and premise arity on the way.
func BuildProof(doc ProofDoc) (proof.LK, error) {
	return buildNode(doc, 0)
}

func buildNode(doc ProofDoc, depth int) (proof.LK, error) {
	if depth > maxProofDepth {
		return nil, fmt.Errorf("proof nesting exceeds %d levels", maxProofDepth)
	}

	seq, err := buildSequent(doc.Conclusion)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", doc.Rule, err)
	}

	arity, ok := ruleArity[doc.Rule]
	if !ok {
		return nil, fmt.Errorf("unknown rule %q", doc.Rule)
	}
	if len(doc.Premises) != arity {
		return nil, fmt.Errorf("rule %q takes %d premise(s), found %d", doc.Rule, arity, len(doc.Premises))
	}

	premises := make([]proof.LK, len(doc.Premises))
	for i, p := range doc.Premises {
		premises[i], err = buildNode(p, depth+1)
		if err != nil {
			return nil, err
		}
	}

	switch doc.Rule {
	case "axiom":
		return proof.Axiom{Seq: seq}, nil
	case "weakening-left":
		return proof.WeakeningLeft{Premise: premises[0], Seq: seq}, nil
	case "weakening-right":
		return proof.WeakeningRight{Premise: premises[0], Seq: seq}, nil
	case "contraction-left":
		return proof.ContractionLeft{Premise: premises[0], Seq: seq}, nil
	case "contraction-right":
		return proof.ContractionRight{Premise: premises[0], Seq: seq}, nil
	case "exchange-left":
		return proof.ExchangeLeft{Premise: premises[0], Seq: seq}, nil
	case "exchange-right":
		return proof.ExchangeRight{Premise: premises[0], Seq: seq}, nil
	case "and-left-1":
		return proof.AndLeft1{Premise: premises[0], Seq: seq}, nil
	case "and-left-2":
		return proof.AndLeft2{Premise: premises[0], Seq: seq}, nil
	case "and-right":
		return proof.AndRight{Left: premises[0], Right: premises[1], Seq: seq}, nil
	case "or-left":
		return proof.OrLeft{Left: premises[0], Right: premises[1], Seq: seq}, nil
	case "or-right-1":
		return proof.OrRight1{Premise: premises[0], Seq: seq}, nil
	case "or-right-2":
		return proof.OrRight2{Premise: premises[0], Seq: seq}, nil
	case "implies-left":
		return proof.ImpliesLeft{Left: premises[0], Right: premises[1], Seq: seq}, nil
	case "implies-right":
		return proof.ImpliesRight{Premise: premises[0], Seq: seq}, nil
	case "not-left":
		return proof.NotLeft{Premise: premises[0], Seq: seq}, nil
	case "not-right":
		return proof.NotRight{Premise: premises[0], Seq: seq}, nil
	case "forall-left":
		return proof.ForallLeft{Premise: premises[0], Seq: seq}, nil
	case "forall-right":
		return proof.ForallRight{Premise: premises[0], Seq: seq}, nil
	case "exists-left":
		return proof.ExistsLeft{Premise: premises[0], Seq: seq}, nil
	case "exists-right":
		return proof.ExistsRight{Premise: premises[0], Seq: seq}, nil
	case "cut":
		return proof.Cut{Left: premises[0], Right: premises[1], Seq: seq}, nil
	default:
		return nil, fmt.Errorf("unknown rule %q", doc.Rule)
	}
}

// ruleArity maps every rule name to its premise count.
var ruleArity = map[string]int{
	"axiom":             0,
	"weakening-left":    1,
	"weakening-right":   1,
	"contraction-left":  1,
	"contraction-right": 1,
	"exchange-left":     1,
	"exchange-right":    1,
	"and-left-1":        1,
	"and-left-2":        1,
	"and-right":         2,
	"or-left":           2,
	"or-right-1":        1,
	"or-right-2":        1,
	"implies-left":      2,
	"implies-right":     1,
	"not-left":          1,
	"not-right":         1,
	"forall-left":       1,
	"forall-right":      1,
	"exists-left":       1,
	"exists-right":      1,
	"cut":               2,
}

func buildSequent(doc SequentDoc) (logic.Sequent, error) {
	ant, err := parseFormulas(doc.Antecedent)
	if err != nil {
		return logic.Sequent{}, fmt.Errorf("antecedent: %w", err)
	}
	suc, err := parseFormulas(doc.Succedent)
	if err != nil {
		return logic.Sequent{}, fmt.Errorf("succedent: %w", err)
	}
	return logic.Sequent{Antecedent: ant, Succedent: suc}, nil
}

func parseFormulas(inputs []string) ([]logic.Formula, error) {
	formulas := make([]logic.Formula, len(inputs))
	for i, input := range inputs {
		f, err := syntax.ParseFormula(input)
		if err != nil {
			return nil, fmt.Errorf("formula %q: %w", input, err)
		}
		formulas[i] = f
	}
	return formulas, nil
}
