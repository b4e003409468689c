package logic

import "strings"

// Sequent is an ordered pair of formula lists, read
// "antecedent entails succedent". Order matters: it encodes the literal
// left-to-right positions that contraction, exchange, and
// context-splitting rules manipulate.
type Sequent struct {
	Antecedent []Formula
	Succedent  []Formula
}

// AntFirst returns the first formula of the antecedent.
// It panics when the antecedent is empty: that is a contract violation
// by the caller, never a proof-validity result.
func (s Sequent) AntFirst() Formula {
	if len(s.Antecedent) == 0 {
		panic("logic: AntFirst called on a sequent with an empty antecedent")
	}
	return s.Antecedent[0]
}

// AntRest returns the antecedent without its first formula.
// It panics when the antecedent is empty.
func (s Sequent) AntRest() []Formula {
	if len(s.Antecedent) == 0 {
		panic("logic: AntRest called on a sequent with an empty antecedent")
	}
	return s.Antecedent[1:]
}

// SucLast returns the last formula of the succedent.
// It panics when the succedent is empty.
func (s Sequent) SucLast() Formula {
	if len(s.Succedent) == 0 {
		panic("logic: SucLast called on a sequent with an empty succedent")
	}
	return s.Succedent[len(s.Succedent)-1]
}

// SucButLast returns the succedent without its last formula.
// It panics when the succedent is empty.
func (s Sequent) SucButLast() []Formula {
	if len(s.Succedent) == 0 {
		panic("logic: SucButLast called on a sequent with an empty succedent")
	}
	return s.Succedent[:len(s.Succedent)-1]
}

// Equal reports whether both lists match positionally.
func (s Sequent) Equal(other Sequent) bool {
	return FormulaSlicesEqual(s.Antecedent, other.Antecedent) &&
		FormulaSlicesEqual(s.Succedent, other.Succedent)
}

// Subformulas is the union of Subformulas over every formula in both lists.
func (s Sequent) Subformulas() []Formula {
	var acc []Formula
	for _, f := range s.Antecedent {
		for _, sub := range Subformulas(f) {
			acc = addFormula(acc, sub)
		}
	}
	for _, f := range s.Succedent {
		for _, sub := range Subformulas(f) {
			acc = addFormula(acc, sub)
		}
	}
	return acc
}

func (s Sequent) String() string {
	return joinFormulas(s.Antecedent) + " ⇒  " + joinFormulas(s.Succedent)
}

func joinFormulas(fs []Formula) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}
