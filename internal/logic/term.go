package logic

import "strings"

// Term is a first-order term: a variable or a function application.
type Term interface {
	isTerm()
	String() string
}

// Var is a variable occurrence. Two variables are equal iff their names match.
type Var struct {
	Name string
}

func (Var) isTerm() {}
func (v Var) String() string {
	return v.Name
}

// Fn is a function application. Arity is the length of Args.
type Fn struct {
	Name string
	Args []Term
}

func (Fn) isTerm() {}
func (f Fn) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(f.Name)
	for _, arg := range f.Args {
		sb.WriteString(" ")
		sb.WriteString(arg.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// TermsEqual reports whether two terms are structurally equal.
func TermsEqual(a, b Term) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Name == y.Name
	case Fn:
		y, ok := b.(Fn)
		return ok && x.Name == y.Name && termSlicesEqual(x.Args, y.Args)
	default:
		return false
	}
}

func termSlicesEqual(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !TermsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// TermVars collects every variable occurring in t.
func TermVars(t Term) VarSet {
	vars := make(VarSet)
	collectTermVars(t, vars)
	return vars
}

func collectTermVars(t Term, vars VarSet) {
	switch x := t.(type) {
	case Var:
		vars.Add(x)
	case Fn:
		for _, arg := range x.Args {
			collectTermVars(arg, vars)
		}
	}
}

// Subterms returns every subterm of t, t itself included.
func Subterms(t Term) []Term {
	return collectSubterms(t, nil)
}

func collectSubterms(t Term, acc []Term) []Term {
	acc = addTerm(acc, t)
	if f, ok := t.(Fn); ok {
		for _, arg := range f.Args {
			acc = collectSubterms(arg, acc)
		}
	}
	return acc
}

// addTerm appends t to ts unless an equal term is already present.
func addTerm(ts []Term, t Term) []Term {
	if containsTerm(ts, t) {
		return ts
	}
	return append(ts, t)
}

func containsTerm(ts []Term, t Term) bool {
	for _, u := range ts {
		if TermsEqual(u, t) {
			return true
		}
	}
	return false
}
