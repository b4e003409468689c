package logic

import (
	"fmt"
	"strings"
)

// Formula is a first-order formula over terms.
//
// Equality of formulas is structural and order-sensitive: And/Or/Implies
// are not commutative as data even though they are logically symmetric.
type Formula interface {
	isFormula()
	String() string
}

// Pred is an atomic predicate application. Arity is the length of Args.
type Pred struct {
	Name string
	Args []Term
}

// Eq is the equality atom between two terms.
type Eq struct {
	Left, Right Term
}

// Not is negation.
type Not struct {
	Body Formula
}

// And is conjunction.
type And struct {
	Left, Right Formula
}

// Or is disjunction.
type Or struct {
	Left, Right Formula
}

// Implies is implication.
type Implies struct {
	Left, Right Formula
}

// Forall is universal quantification over V.
type Forall struct {
	V    Var
	Body Formula
}

// Exists is existential quantification over V.
type Exists struct {
	V    Var
	Body Formula
}

func (Pred) isFormula()    {}
func (Eq) isFormula()      {}
func (Not) isFormula()     {}
func (And) isFormula()     {}
func (Or) isFormula()      {}
func (Implies) isFormula() {}
func (Forall) isFormula()  {}
func (Exists) isFormula()  {}

// String renders the formula in the canonical prefix syntax accepted by
// internal/syntax, so printing and reparsing round-trips structurally.
func (p Pred) String() string {
	if len(p.Args) == 0 {
		return p.Name
	}
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(p.Name)
	for _, arg := range p.Args {
		sb.WriteString(" ")
		sb.WriteString(arg.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func (e Eq) String() string {
	return fmt.Sprintf("(= %s %s)", e.Left, e.Right)
}

func (n Not) String() string {
	return fmt.Sprintf("(~ %s)", n.Body)
}

func (a And) String() string {
	return fmt.Sprintf("(^ %s %s)", a.Left, a.Right)
}

func (o Or) String() string {
	return fmt.Sprintf("(v %s %s)", o.Left, o.Right)
}

func (i Implies) String() string {
	return fmt.Sprintf("(> %s %s)", i.Left, i.Right)
}

func (f Forall) String() string {
	return fmt.Sprintf("(V%s %s)", f.V.Name, f.Body)
}

func (e Exists) String() string {
	return fmt.Sprintf("(E%s %s)", e.V.Name, e.Body)
}

// FormulasEqual reports whether two formulas are structurally equal.
func FormulasEqual(a, b Formula) bool {
	switch x := a.(type) {
	case Pred:
		y, ok := b.(Pred)
		return ok && x.Name == y.Name && termSlicesEqual(x.Args, y.Args)
	case Eq:
		y, ok := b.(Eq)
		return ok && TermsEqual(x.Left, y.Left) && TermsEqual(x.Right, y.Right)
	case Not:
		y, ok := b.(Not)
		return ok && FormulasEqual(x.Body, y.Body)
	case And:
		y, ok := b.(And)
		return ok && FormulasEqual(x.Left, y.Left) && FormulasEqual(x.Right, y.Right)
	case Or:
		y, ok := b.(Or)
		return ok && FormulasEqual(x.Left, y.Left) && FormulasEqual(x.Right, y.Right)
	case Implies:
		y, ok := b.(Implies)
		return ok && FormulasEqual(x.Left, y.Left) && FormulasEqual(x.Right, y.Right)
	case Forall:
		y, ok := b.(Forall)
		return ok && x.V == y.V && FormulasEqual(x.Body, y.Body)
	case Exists:
		y, ok := b.(Exists)
		return ok && x.V == y.V && FormulasEqual(x.Body, y.Body)
	default:
		return false
	}
}

// FormulaSlicesEqual reports positional equality of two formula lists.
func FormulaSlicesEqual(a, b []Formula) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !FormulasEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// FreeVars returns the variables occurring free in f: outside the scope
// of every binder that names them.
func FreeVars(f Formula) VarSet {
	switch x := f.(type) {
	case Pred:
		vars := make(VarSet)
		for _, arg := range x.Args {
			collectTermVars(arg, vars)
		}
		return vars
	case Eq:
		vars := TermVars(x.Left)
		vars.AddAll(TermVars(x.Right))
		return vars
	case Not:
		return FreeVars(x.Body)
	case And:
		vars := FreeVars(x.Left)
		vars.AddAll(FreeVars(x.Right))
		return vars
	case Or:
		vars := FreeVars(x.Left)
		vars.AddAll(FreeVars(x.Right))
		return vars
	case Implies:
		vars := FreeVars(x.Left)
		vars.AddAll(FreeVars(x.Right))
		return vars
	case Forall:
		vars := FreeVars(x.Body)
		delete(vars, x.V)
		return vars
	case Exists:
		vars := FreeVars(x.Body)
		delete(vars, x.V)
		return vars
	default:
		return make(VarSet)
	}
}

// BoundVars returns the variables named by some binder within f.
// A variable may be in both FreeVars and BoundVars when one occurrence
// is free and another sits under a binder of the same name.
func BoundVars(f Formula) VarSet {
	vars := make(VarSet)
	collectBoundVars(f, vars)
	return vars
}

func collectBoundVars(f Formula, vars VarSet) {
	switch x := f.(type) {
	case Not:
		collectBoundVars(x.Body, vars)
	case And:
		collectBoundVars(x.Left, vars)
		collectBoundVars(x.Right, vars)
	case Or:
		collectBoundVars(x.Left, vars)
		collectBoundVars(x.Right, vars)
	case Implies:
		collectBoundVars(x.Left, vars)
		collectBoundVars(x.Right, vars)
	case Forall:
		vars.Add(x.V)
		collectBoundVars(x.Body, vars)
	case Exists:
		vars.Add(x.V)
		collectBoundVars(x.Body, vars)
	}
}

// Subformulas returns every formula reachable from f, f itself included.
func Subformulas(f Formula) []Formula {
	return collectSubformulas(f, nil)
}

func collectSubformulas(f Formula, acc []Formula) []Formula {
	acc = addFormula(acc, f)
	switch x := f.(type) {
	case Not:
		acc = collectSubformulas(x.Body, acc)
	case And:
		acc = collectSubformulas(x.Left, acc)
		acc = collectSubformulas(x.Right, acc)
	case Or:
		acc = collectSubformulas(x.Left, acc)
		acc = collectSubformulas(x.Right, acc)
	case Implies:
		acc = collectSubformulas(x.Left, acc)
		acc = collectSubformulas(x.Right, acc)
	case Forall:
		acc = collectSubformulas(x.Body, acc)
	case Exists:
		acc = collectSubformulas(x.Body, acc)
	}
	return acc
}

func addFormula(fs []Formula, f Formula) []Formula {
	if ContainsFormula(fs, f) {
		return fs
	}
	return append(fs, f)
}

// ContainsFormula reports whether fs holds a formula equal to f.
func ContainsFormula(fs []Formula, f Formula) bool {
	for _, g := range fs {
		if FormulasEqual(g, f) {
			return true
		}
	}
	return false
}

// FormulaSubterms returns every term occurring in f, subterms included.
func FormulaSubterms(f Formula) []Term {
	return collectFormulaSubterms(f, nil)
}

func collectFormulaSubterms(f Formula, acc []Term) []Term {
	switch x := f.(type) {
	case Pred:
		for _, arg := range x.Args {
			acc = collectSubterms(arg, acc)
		}
	case Eq:
		acc = collectSubterms(x.Left, acc)
		acc = collectSubterms(x.Right, acc)
	case Not:
		acc = collectFormulaSubterms(x.Body, acc)
	case And:
		acc = collectFormulaSubterms(x.Left, acc)
		acc = collectFormulaSubterms(x.Right, acc)
	case Or:
		acc = collectFormulaSubterms(x.Left, acc)
		acc = collectFormulaSubterms(x.Right, acc)
	case Implies:
		acc = collectFormulaSubterms(x.Left, acc)
		acc = collectFormulaSubterms(x.Right, acc)
	case Forall:
		acc = collectFormulaSubterms(x.Body, acc)
	case Exists:
		acc = collectFormulaSubterms(x.Body, acc)
	}
	return acc
}
