package proof

import (
	"fmt"

	"github.com/formalverse/sequin/internal/logic"
)

// IsValidStep checks the single inference at the root of node against
// its immediate premises' stored conclusions. It does not recurse:
// verifying a whole derivation means applying IsValidStep to every node
// (see Walk).
//
// IsValidStep assumes StepPrecondition(node) holds; calling it on a node
// whose sequents are too short for its rule panics in the Sequent
// accessors, which is a usage error and never means "invalid proof".
func IsValidStep(node LK) bool {
	switch n := node.(type) {
	case Axiom:
		return validAxiom(n.Seq)

	case WeakeningLeft:
		p, c := n.Premise.Conclusion(), n.Seq
		return logic.FormulaSlicesEqual(p.Antecedent, c.AntRest()) &&
			logic.FormulaSlicesEqual(p.Succedent, c.Succedent)

	case WeakeningRight:
		p, c := n.Premise.Conclusion(), n.Seq
		return logic.FormulaSlicesEqual(p.Antecedent, c.Antecedent) &&
			logic.FormulaSlicesEqual(p.Succedent, c.SucButLast())

	case ContractionLeft:
		p, c := n.Premise.Conclusion(), n.Seq
		return logic.FormulasEqual(p.Antecedent[0], p.Antecedent[1]) &&
			logic.FormulaSlicesEqual(p.AntRest(), c.Antecedent) &&
			logic.FormulaSlicesEqual(p.Succedent, c.Succedent)

	case ContractionRight:
		p, c := n.Premise.Conclusion(), n.Seq
		last := len(p.Succedent) - 1
		return logic.FormulasEqual(p.Succedent[last-1], p.Succedent[last]) &&
			logic.FormulaSlicesEqual(p.SucButLast(), c.Succedent) &&
			logic.FormulaSlicesEqual(p.Antecedent, c.Antecedent)

	case ExchangeLeft:
		p, c := n.Premise.Conclusion(), n.Seq
		return logic.FormulaSlicesEqual(p.Succedent, c.Succedent) &&
			adjacentSwap(p.Antecedent, c.Antecedent)

	case ExchangeRight:
		p, c := n.Premise.Conclusion(), n.Seq
		return logic.FormulaSlicesEqual(p.Antecedent, c.Antecedent) &&
			adjacentSwap(p.Succedent, c.Succedent)

	case AndLeft1:
		p, c := n.Premise.Conclusion(), n.Seq
		and, ok := c.AntFirst().(logic.And)
		return ok &&
			logic.FormulaSlicesEqual(p.AntRest(), c.AntRest()) &&
			logic.FormulaSlicesEqual(p.Succedent, c.Succedent) &&
			logic.FormulasEqual(p.AntFirst(), and.Left)

	case AndLeft2:
		p, c := n.Premise.Conclusion(), n.Seq
		and, ok := c.AntFirst().(logic.And)
		return ok &&
			logic.FormulaSlicesEqual(p.AntRest(), c.AntRest()) &&
			logic.FormulaSlicesEqual(p.Succedent, c.Succedent) &&
			logic.FormulasEqual(p.AntFirst(), and.Right)

	case AndRight:
		l, r, c := n.Left.Conclusion(), n.Right.Conclusion(), n.Seq
		and, ok := c.SucLast().(logic.And)
		return ok &&
			logic.FormulaSlicesEqual(l.Antecedent, c.Antecedent) &&
			logic.FormulaSlicesEqual(r.Antecedent, c.Antecedent) &&
			logic.FormulaSlicesEqual(l.SucButLast(), c.SucButLast()) &&
			logic.FormulaSlicesEqual(r.SucButLast(), c.SucButLast()) &&
			logic.FormulasEqual(l.SucLast(), and.Left) &&
			logic.FormulasEqual(r.SucLast(), and.Right)

	case OrLeft:
		l, r, c := n.Left.Conclusion(), n.Right.Conclusion(), n.Seq
		or, ok := c.AntFirst().(logic.Or)
		return ok &&
			logic.FormulaSlicesEqual(l.Succedent, c.Succedent) &&
			logic.FormulaSlicesEqual(r.Succedent, c.Succedent) &&
			logic.FormulaSlicesEqual(l.AntRest(), c.AntRest()) &&
			logic.FormulaSlicesEqual(r.AntRest(), c.AntRest()) &&
			logic.FormulasEqual(l.AntFirst(), or.Left) &&
			logic.FormulasEqual(r.AntFirst(), or.Right)

	case OrRight1:
		p, c := n.Premise.Conclusion(), n.Seq
		or, ok := c.SucLast().(logic.Or)
		return ok &&
			logic.FormulaSlicesEqual(p.Antecedent, c.Antecedent) &&
			logic.FormulaSlicesEqual(p.SucButLast(), c.SucButLast()) &&
			logic.FormulasEqual(p.SucLast(), or.Left)

	case OrRight2:
		p, c := n.Premise.Conclusion(), n.Seq
		or, ok := c.SucLast().(logic.Or)
		return ok &&
			logic.FormulaSlicesEqual(p.Antecedent, c.Antecedent) &&
			logic.FormulaSlicesEqual(p.SucButLast(), c.SucButLast()) &&
			logic.FormulasEqual(p.SucLast(), or.Right)

	case ImpliesLeft:
		l, r, c := n.Left.Conclusion(), n.Right.Conclusion(), n.Seq
		imp, ok := c.AntFirst().(logic.Implies)
		return ok &&
			logic.FormulaSlicesEqual(c.AntRest(), concat(l.Antecedent, r.AntRest())) &&
			logic.FormulaSlicesEqual(c.Succedent, concat(l.SucButLast(), r.Succedent)) &&
			logic.FormulasEqual(l.SucLast(), imp.Left) &&
			logic.FormulasEqual(r.AntFirst(), imp.Right)

	case ImpliesRight:
		p, c := n.Premise.Conclusion(), n.Seq
		imp, ok := c.SucLast().(logic.Implies)
		return ok &&
			logic.FormulaSlicesEqual(p.AntRest(), c.Antecedent) &&
			logic.FormulaSlicesEqual(p.SucButLast(), c.SucButLast()) &&
			logic.FormulasEqual(p.AntFirst(), imp.Left) &&
			logic.FormulasEqual(p.SucLast(), imp.Right)

	case NotLeft:
		p, c := n.Premise.Conclusion(), n.Seq
		not, ok := c.AntFirst().(logic.Not)
		return ok &&
			logic.FormulaSlicesEqual(p.Antecedent, c.AntRest()) &&
			logic.FormulaSlicesEqual(p.SucButLast(), c.Succedent) &&
			logic.FormulasEqual(p.SucLast(), not.Body)

	case NotRight:
		p, c := n.Premise.Conclusion(), n.Seq
		not, ok := c.SucLast().(logic.Not)
		return ok &&
			logic.FormulaSlicesEqual(p.AntRest(), c.Antecedent) &&
			logic.FormulaSlicesEqual(p.Succedent, c.SucButLast()) &&
			logic.FormulasEqual(p.AntFirst(), not.Body)

	case ForallLeft:
		p, c := n.Premise.Conclusion(), n.Seq
		if !logic.FormulaSlicesEqual(p.Succedent, c.Succedent) ||
			!logic.FormulaSlicesEqual(p.AntRest(), c.AntRest()) {
			return false
		}
		fa, ok := c.AntFirst().(logic.Forall)
		if !ok {
			return false
		}
		return validInstantiation(fa.V, fa.Body, p.AntFirst())

	case ExistsRight:
		p, c := n.Premise.Conclusion(), n.Seq
		if !logic.FormulaSlicesEqual(p.Antecedent, c.Antecedent) ||
			!logic.FormulaSlicesEqual(p.SucButLast(), c.SucButLast()) {
			return false
		}
		ex, ok := c.SucLast().(logic.Exists)
		if !ok {
			return false
		}
		return validInstantiation(ex.V, ex.Body, p.SucLast())

	case ForallRight:
		p, c := n.Premise.Conclusion(), n.Seq
		if !logic.FormulaSlicesEqual(p.Antecedent, c.Antecedent) ||
			!logic.FormulaSlicesEqual(p.SucButLast(), c.SucButLast()) {
			return false
		}
		fa, ok := c.SucLast().(logic.Forall)
		if !ok {
			return false
		}
		return validGeneralization(fa.V, fa.Body, p.SucLast(), p.Antecedent, p.SucButLast())

	case ExistsLeft:
		p, c := n.Premise.Conclusion(), n.Seq
		if !logic.FormulaSlicesEqual(p.Succedent, c.Succedent) ||
			!logic.FormulaSlicesEqual(p.AntRest(), c.AntRest()) {
			return false
		}
		ex, ok := c.AntFirst().(logic.Exists)
		if !ok {
			return false
		}
		return validGeneralization(ex.V, ex.Body, p.AntFirst(), p.Succedent, p.AntRest())

	case Cut:
		l, r, c := n.Left.Conclusion(), n.Right.Conclusion(), n.Seq
		if !logic.FormulasEqual(l.SucLast(), r.AntFirst()) {
			return false
		}
		return logic.FormulaSlicesEqual(c.Antecedent, concat(l.Antecedent, r.AntRest())) &&
			logic.FormulaSlicesEqual(c.Succedent, concat(l.SucButLast(), r.Succedent))

	default:
		return false
	}
}

// validAxiom accepts the identity sequent Γ⇒Γ (non-empty) and the
// equality reflexivity sequent ⇒ t=t.
func validAxiom(s logic.Sequent) bool {
	if len(s.Antecedent) > 0 && logic.FormulaSlicesEqual(s.Antecedent, s.Succedent) {
		return true
	}
	if len(s.Antecedent) == 0 && len(s.Succedent) == 1 {
		if eq, ok := s.Succedent[0].(logic.Eq); ok {
			return logic.TermsEqual(eq.Left, eq.Right)
		}
	}
	return false
}

// adjacentSwap reports whether a and b agree everywhere except at one
// pair of adjacent positions, which are transposed.
func adjacentSwap(a, b []logic.Formula) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i+1 < len(a); i++ {
		if swappedAt(a, b, i) {
			return true
		}
	}
	return false
}

func swappedAt(a, b []logic.Formula, i int) bool {
	if !logic.FormulasEqual(a[i], b[i+1]) || !logic.FormulasEqual(a[i+1], b[i]) {
		return false
	}
	for j := range a {
		if j == i || j == i+1 {
			continue
		}
		if !logic.FormulasEqual(a[j], b[j]) {
			return false
		}
	}
	return true
}

// validInstantiation searches the subterms of the premise formula for a
// witness t with body[v:=t] equal to the premise formula. The bound
// variable guard rejects quantifiers whose variable is rebound inside
// the body.
func validInstantiation(v logic.Var, body logic.Formula, premise logic.Formula) bool {
	if logic.BoundVars(body).Contains(v) {
		return false
	}
	for _, t := range logic.FormulaSubterms(premise) {
		if !logic.IsSubstitutable(body, v, t) {
			continue
		}
		if logic.FormulasEqual(logic.Substitute(body, v, t), premise) {
			return true
		}
	}
	return false
}

// validGeneralization searches the free variables of the premise formula
// for an eigenvariable y with body[v:=y] equal to the premise formula
// and y free nowhere in the surrounding context.
func validGeneralization(v logic.Var, body logic.Formula, premise logic.Formula, context ...[]logic.Formula) bool {
	for y := range logic.FreeVars(premise) {
		if !logic.IsSubstitutable(body, v, y) {
			continue
		}
		if !logic.FormulasEqual(logic.Substitute(body, v, y), premise) {
			continue
		}
		if freeInAny(y, context...) {
			continue
		}
		return true
	}
	return false
}

func freeInAny(v logic.Var, lists ...[]logic.Formula) bool {
	for _, fs := range lists {
		for _, f := range fs {
			if logic.FreeVars(f).Contains(v) {
				return true
			}
		}
	}
	return false
}

func concat(a, b []logic.Formula) []logic.Formula {
	out := make([]logic.Formula, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// StepPrecondition reports the non-emptiness requirements of the rule at
// the root of node. Callers building trees from untrusted input should
// check it before IsValidStep, which otherwise panics on sequents too
// short for their rule.
func StepPrecondition(node LK) error {
	switch n := node.(type) {
	case Axiom:
		return nil
	case WeakeningLeft:
		return needs(len(n.Seq.Antecedent) >= 1, "weakening-left needs a non-empty conclusion antecedent")
	case WeakeningRight:
		return needs(len(n.Seq.Succedent) >= 1, "weakening-right needs a non-empty conclusion succedent")
	case ContractionLeft:
		return needs(len(n.Premise.Conclusion().Antecedent) >= 2, "contraction-left needs at least two premise antecedent formulas")
	case ContractionRight:
		return needs(len(n.Premise.Conclusion().Succedent) >= 2, "contraction-right needs at least two premise succedent formulas")
	case ExchangeLeft, ExchangeRight:
		return nil
	case AndLeft1:
		return introNeeds(n.Premise, n.Seq, true)
	case AndLeft2:
		return introNeeds(n.Premise, n.Seq, true)
	case AndRight:
		if err := needs(len(n.Seq.Succedent) >= 1, "and-right needs a non-empty conclusion succedent"); err != nil {
			return err
		}
		return needs(len(n.Left.Conclusion().Succedent) >= 1 && len(n.Right.Conclusion().Succedent) >= 1,
			"and-right needs non-empty premise succedents")
	case OrLeft:
		if err := needs(len(n.Seq.Antecedent) >= 1, "or-left needs a non-empty conclusion antecedent"); err != nil {
			return err
		}
		return needs(len(n.Left.Conclusion().Antecedent) >= 1 && len(n.Right.Conclusion().Antecedent) >= 1,
			"or-left needs non-empty premise antecedents")
	case OrRight1:
		return introNeeds(n.Premise, n.Seq, false)
	case OrRight2:
		return introNeeds(n.Premise, n.Seq, false)
	case ImpliesLeft:
		if err := needs(len(n.Seq.Antecedent) >= 1, "implies-left needs a non-empty conclusion antecedent"); err != nil {
			return err
		}
		return needs(len(n.Left.Conclusion().Succedent) >= 1 && len(n.Right.Conclusion().Antecedent) >= 1,
			"implies-left needs a non-empty left succedent and right antecedent")
	case ImpliesRight:
		p := n.Premise.Conclusion()
		if err := needs(len(n.Seq.Succedent) >= 1, "implies-right needs a non-empty conclusion succedent"); err != nil {
			return err
		}
		return needs(len(p.Antecedent) >= 1 && len(p.Succedent) >= 1,
			"implies-right needs a non-empty premise antecedent and succedent")
	case NotLeft:
		if err := needs(len(n.Seq.Antecedent) >= 1, "not-left needs a non-empty conclusion antecedent"); err != nil {
			return err
		}
		return needs(len(n.Premise.Conclusion().Succedent) >= 1, "not-left needs a non-empty premise succedent")
	case NotRight:
		if err := needs(len(n.Seq.Succedent) >= 1, "not-right needs a non-empty conclusion succedent"); err != nil {
			return err
		}
		return needs(len(n.Premise.Conclusion().Antecedent) >= 1, "not-right needs a non-empty premise antecedent")
	case ForallLeft:
		return introNeeds(n.Premise, n.Seq, true)
	case ExistsLeft:
		return introNeeds(n.Premise, n.Seq, true)
	case ForallRight:
		return introNeeds(n.Premise, n.Seq, false)
	case ExistsRight:
		return introNeeds(n.Premise, n.Seq, false)
	case Cut:
		return needs(len(n.Left.Conclusion().Succedent) >= 1 && len(n.Right.Conclusion().Antecedent) >= 1,
			"cut needs a non-empty left succedent and right antecedent")
	default:
		return fmt.Errorf("unknown rule %T", node)
	}
}

// introNeeds covers the common single-premise introduction shape: the
// principal formula's list must be non-empty in both the premise and the
// conclusion. left selects antecedent over succedent.
func introNeeds(premise LK, conclusion logic.Sequent, left bool) error {
	p := premise.Conclusion()
	if left {
		return needs(len(p.Antecedent) >= 1 && len(conclusion.Antecedent) >= 1,
			"rule needs non-empty antecedents in premise and conclusion")
	}
	return needs(len(p.Succedent) >= 1 && len(conclusion.Succedent) >= 1,
		"rule needs non-empty succedents in premise and conclusion")
}

func needs(ok bool, msg string) error {
	if ok {
		return nil
	}
	return fmt.Errorf("%s", msg)
}
