// Package proof implements Gentzen's sequent calculus LK: the proof
// tree data model, the per-rule validity checker, and the ASCII
// proof-tree renderer.
package proof

import "github.com/formalverse/sequin/internal/logic"

// LK is one node of an LK derivation. The closed set of variants below
// covers the axiom, the fourteen one-premise rules, and the four
// two-premise rules. Each node carries its own conclusion sequent;
// premises carry theirs.
//
// Trees are built bottom-up and never mutated. Reusing an equal subtree
// in both branches of a binary rule is fine: the checker compares by
// value, never by identity.
type LK interface {
	isLK()
	Conclusion() logic.Sequent
}

// Axiom is the leaf rule: Γ⇒Γ or the equality reflexivity ⇒ t=t.
type Axiom struct{ Seq logic.Sequent }

// WeakeningLeft adds an arbitrary formula at the front of the antecedent.
type WeakeningLeft struct {
	Premise LK
	Seq     logic.Sequent
}

// WeakeningRight adds an arbitrary formula at the back of the succedent.
type WeakeningRight struct {
	Premise LK
	Seq     logic.Sequent
}

// ContractionLeft merges a duplicated first antecedent formula.
type ContractionLeft struct {
	Premise LK
	Seq     logic.Sequent
}

// ContractionRight merges a duplicated last succedent formula.
type ContractionRight struct {
	Premise LK
	Seq     logic.Sequent
}

// ExchangeLeft swaps two adjacent antecedent formulas.
type ExchangeLeft struct {
	Premise LK
	Seq     logic.Sequent
}

// ExchangeRight swaps two adjacent succedent formulas.
type ExchangeRight struct {
	Premise LK
	Seq     logic.Sequent
}

// AndLeft1 introduces φ∧ψ on the left from its left conjunct.
type AndLeft1 struct {
	Premise LK
	Seq     logic.Sequent
}

// AndLeft2 introduces φ∧ψ on the left from its right conjunct.
type AndLeft2 struct {
	Premise LK
	Seq     logic.Sequent
}

// AndRight introduces φ∧ψ on the right from both conjuncts. The premise
// contexts must be identical, not merely contractible.
type AndRight struct {
	Left, Right LK
	Seq         logic.Sequent
}

// OrLeft introduces φ∨ψ on the left from both disjuncts.
type OrLeft struct {
	Left, Right LK
	Seq         logic.Sequent
}

// OrRight1 introduces φ∨ψ on the right from its left disjunct.
type OrRight1 struct {
	Premise LK
	Seq     logic.Sequent
}

// OrRight2 introduces φ∨ψ on the right from its right disjunct.
type OrRight2 struct {
	Premise LK
	Seq     logic.Sequent
}

// ImpliesLeft introduces φ→ψ on the left, splitting the context
// multiplicatively across the two premises.
type ImpliesLeft struct {
	Left, Right LK
	Seq         logic.Sequent
}

// ImpliesRight introduces φ→ψ on the right.
type ImpliesRight struct {
	Premise LK
	Seq     logic.Sequent
}

// NotLeft moves the negated formula from the succedent to the antecedent.
type NotLeft struct {
	Premise LK
	Seq     logic.Sequent
}

// NotRight moves the negated formula from the antecedent to the succedent.
type NotRight struct {
	Premise LK
	Seq     logic.Sequent
}

// ForallLeft instantiates a universal on the left with some subterm.
type ForallLeft struct {
	Premise LK
	Seq     logic.Sequent
}

// ForallRight generalizes on the right over a fresh eigenvariable.
type ForallRight struct {
	Premise LK
	Seq     logic.Sequent
}

// ExistsLeft generalizes on the left over a fresh eigenvariable.
type ExistsLeft struct {
	Premise LK
	Seq     logic.Sequent
}

// ExistsRight instantiates an existential on the right with some subterm.
type ExistsRight struct {
	Premise LK
	Seq     logic.Sequent
}

// Cut removes a formula proved on the left premise and consumed on the
// right premise, concatenating the remaining contexts.
type Cut struct {
	Left, Right LK
	Seq         logic.Sequent
}

func (Axiom) isLK()            {}
func (WeakeningLeft) isLK()    {}
func (WeakeningRight) isLK()   {}
func (ContractionLeft) isLK()  {}
func (ContractionRight) isLK() {}
func (ExchangeLeft) isLK()     {}
func (ExchangeRight) isLK()    {}
func (AndLeft1) isLK()         {}
func (AndLeft2) isLK()         {}
func (AndRight) isLK()         {}
func (OrLeft) isLK()           {}
func (OrRight1) isLK()         {}
func (OrRight2) isLK()         {}
func (ImpliesLeft) isLK()      {}
func (ImpliesRight) isLK()     {}
func (NotLeft) isLK()          {}
func (NotRight) isLK()         {}
func (ForallLeft) isLK()       {}
func (ForallRight) isLK()      {}
func (ExistsLeft) isLK()       {}
func (ExistsRight) isLK()      {}
func (Cut) isLK()              {}

func (n Axiom) Conclusion() logic.Sequent            { return n.Seq }
func (n WeakeningLeft) Conclusion() logic.Sequent    { return n.Seq }
func (n WeakeningRight) Conclusion() logic.Sequent   { return n.Seq }
func (n ContractionLeft) Conclusion() logic.Sequent  { return n.Seq }
func (n ContractionRight) Conclusion() logic.Sequent { return n.Seq }
func (n ExchangeLeft) Conclusion() logic.Sequent     { return n.Seq }
func (n ExchangeRight) Conclusion() logic.Sequent    { return n.Seq }
func (n AndLeft1) Conclusion() logic.Sequent         { return n.Seq }
func (n AndLeft2) Conclusion() logic.Sequent         { return n.Seq }
func (n AndRight) Conclusion() logic.Sequent         { return n.Seq }
func (n OrLeft) Conclusion() logic.Sequent           { return n.Seq }
func (n OrRight1) Conclusion() logic.Sequent         { return n.Seq }
func (n OrRight2) Conclusion() logic.Sequent         { return n.Seq }
func (n ImpliesLeft) Conclusion() logic.Sequent      { return n.Seq }
func (n ImpliesRight) Conclusion() logic.Sequent     { return n.Seq }
func (n NotLeft) Conclusion() logic.Sequent          { return n.Seq }
func (n NotRight) Conclusion() logic.Sequent         { return n.Seq }
func (n ForallLeft) Conclusion() logic.Sequent       { return n.Seq }
func (n ForallRight) Conclusion() logic.Sequent      { return n.Seq }
func (n ExistsLeft) Conclusion() logic.Sequent       { return n.Seq }
func (n ExistsRight) Conclusion() logic.Sequent      { return n.Seq }
func (n Cut) Conclusion() logic.Sequent              { return n.Seq }

// Premises returns the premise subtrees of node, in left-to-right order.
func Premises(node LK) []LK {
	switch n := node.(type) {
	case Axiom:
		return nil
	case WeakeningLeft:
		return []LK{n.Premise}
	case WeakeningRight:
		return []LK{n.Premise}
	case ContractionLeft:
		return []LK{n.Premise}
	case ContractionRight:
		return []LK{n.Premise}
	case ExchangeLeft:
		return []LK{n.Premise}
	case ExchangeRight:
		return []LK{n.Premise}
	case AndLeft1:
		return []LK{n.Premise}
	case AndLeft2:
		return []LK{n.Premise}
	case AndRight:
		return []LK{n.Left, n.Right}
	case OrLeft:
		return []LK{n.Left, n.Right}
	case OrRight1:
		return []LK{n.Premise}
	case OrRight2:
		return []LK{n.Premise}
	case ImpliesLeft:
		return []LK{n.Left, n.Right}
	case ImpliesRight:
		return []LK{n.Premise}
	case NotLeft:
		return []LK{n.Premise}
	case NotRight:
		return []LK{n.Premise}
	case ForallLeft:
		return []LK{n.Premise}
	case ForallRight:
		return []LK{n.Premise}
	case ExistsLeft:
		return []LK{n.Premise}
	case ExistsRight:
		return []LK{n.Premise}
	case Cut:
		return []LK{n.Left, n.Right}
	default:
		return nil
	}
}

// Label returns the symbolic rule label used by the renderer.
func Label(node LK) string {
	switch node.(type) {
	case Axiom:
		return "(ax)"
	case WeakeningLeft:
		return "(wL)"
	case WeakeningRight:
		return "(wR)"
	case ContractionLeft:
		return "(cL)"
	case ContractionRight:
		return "(cR)"
	case ExchangeLeft:
		return "(xL)"
	case ExchangeRight:
		return "(xR)"
	case AndLeft1:
		return "(∧L1)"
	case AndLeft2:
		return "(∧L2)"
	case AndRight:
		return "(∧R)"
	case OrLeft:
		return "(∨L)"
	case OrRight1:
		return "(∨R1)"
	case OrRight2:
		return "(∨R2)"
	case ImpliesLeft:
		return "(→L)"
	case ImpliesRight:
		return "(→R)"
	case NotLeft:
		return "(¬L)"
	case NotRight:
		return "(¬R)"
	case ForallLeft:
		return "(∀L)"
	case ForallRight:
		return "(∀R)"
	case ExistsLeft:
		return "(∃L)"
	case ExistsRight:
		return "(∃R)"
	case Cut:
		return "(Cut)"
	default:
		return "(?)"
	}
}

// RuleName returns the kebab-case rule name used in proof files and
// diagnostics.
func RuleName(node LK) string {
	switch node.(type) {
	case Axiom:
		return "axiom"
	case WeakeningLeft:
		return "weakening-left"
	case WeakeningRight:
		return "weakening-right"
	case ContractionLeft:
		return "contraction-left"
	case ContractionRight:
		return "contraction-right"
	case ExchangeLeft:
		return "exchange-left"
	case ExchangeRight:
		return "exchange-right"
	case AndLeft1:
		return "and-left-1"
	case AndLeft2:
		return "and-left-2"
	case AndRight:
		return "and-right"
	case OrLeft:
		return "or-left"
	case OrRight1:
		return "or-right-1"
	case OrRight2:
		return "or-right-2"
	case ImpliesLeft:
		return "implies-left"
	case ImpliesRight:
		return "implies-right"
	case NotLeft:
		return "not-left"
	case NotRight:
		return "not-right"
	case ForallLeft:
		return "forall-left"
	case ForallRight:
		return "forall-right"
	case ExistsLeft:
		return "exists-left"
	case ExistsRight:
		return "exists-right"
	case Cut:
		return "cut"
	default:
		return "unknown"
	}
}
