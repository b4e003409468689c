package logic

import "sort"

// VarSet is a set of variables.
type VarSet map[Var]struct{}

// Add inserts v into the set.
func (s VarSet) Add(v Var) {
	s[v] = struct{}{}
}

// Contains reports whether v is in the set.
func (s VarSet) Contains(v Var) bool {
	_, ok := s[v]
	return ok
}

// AddAll inserts every variable of other into the set.
func (s VarSet) AddAll(other VarSet) {
	for v := range other {
		s[v] = struct{}{}
	}
}

// Names returns the variable names in the set, sorted.
func (s VarSet) Names() []string {
	names := make([]string, 0, len(s))
	for v := range s {
		names = append(names, v.Name)
	}
	sort.Strings(names)
	return names
}
