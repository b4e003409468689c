package logic

import (
	"fmt"
	"sort"
)

// NonLogicalSymbol identifies one signature entry: a function or
// predicate name together with its arity. A name used at two different
// arities yields two distinct entries.
type NonLogicalSymbol struct {
	Name  string
	Arity int
}

func (s NonLogicalSymbol) String() string {
	return fmt.Sprintf("%s/%d", s.Name, s.Arity)
}

// SymbolSet is a set of non-logical symbols, deduplicated by (name, arity).
type SymbolSet map[NonLogicalSymbol]struct{}

// Add inserts s into the set.
func (set SymbolSet) Add(s NonLogicalSymbol) {
	set[s] = struct{}{}
}

// Contains reports whether s is in the set.
func (set SymbolSet) Contains(s NonLogicalSymbol) bool {
	_, ok := set[s]
	return ok
}

// Sorted returns the symbols ordered by name, then arity.
func (set SymbolSet) Sorted() []NonLogicalSymbol {
	symbols := make([]NonLogicalSymbol, 0, len(set))
	for s := range set {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool {
		if symbols[i].Name != symbols[j].Name {
			return symbols[i].Name < symbols[j].Name
		}
		return symbols[i].Arity < symbols[j].Arity
	})
	return symbols
}

// FuncSymbols returns every function name+arity occurring in f.
func FuncSymbols(f Formula) SymbolSet {
	set := make(SymbolSet)
	collectFuncSymbols(f, set)
	return set
}

func collectFuncSymbols(f Formula, set SymbolSet) {
	switch x := f.(type) {
	case Pred:
		for _, arg := range x.Args {
			collectTermFuncs(arg, set)
		}
	case Eq:
		collectTermFuncs(x.Left, set)
		collectTermFuncs(x.Right, set)
	case Not:
		collectFuncSymbols(x.Body, set)
	case And:
		collectFuncSymbols(x.Left, set)
		collectFuncSymbols(x.Right, set)
	case Or:
		collectFuncSymbols(x.Left, set)
		collectFuncSymbols(x.Right, set)
	case Implies:
		collectFuncSymbols(x.Left, set)
		collectFuncSymbols(x.Right, set)
	case Forall:
		collectFuncSymbols(x.Body, set)
	case Exists:
		collectFuncSymbols(x.Body, set)
	}
}

func collectTermFuncs(t Term, set SymbolSet) {
	if fn, ok := t.(Fn); ok {
		set.Add(NonLogicalSymbol{Name: fn.Name, Arity: len(fn.Args)})
		for _, arg := range fn.Args {
			collectTermFuncs(arg, set)
		}
	}
}

// PredSymbols returns every predicate name+arity occurring in f.
func PredSymbols(f Formula) SymbolSet {
	set := make(SymbolSet)
	collectPredSymbols(f, set)
	return set
}

func collectPredSymbols(f Formula, set SymbolSet) {
	switch x := f.(type) {
	case Pred:
		set.Add(NonLogicalSymbol{Name: x.Name, Arity: len(x.Args)})
	case Not:
		collectPredSymbols(x.Body, set)
	case And:
		collectPredSymbols(x.Left, set)
		collectPredSymbols(x.Right, set)
	case Or:
		collectPredSymbols(x.Left, set)
		collectPredSymbols(x.Right, set)
	case Implies:
		collectPredSymbols(x.Left, set)
		collectPredSymbols(x.Right, set)
	case Forall:
		collectPredSymbols(x.Body, set)
	case Exists:
		collectPredSymbols(x.Body, set)
	}
}
