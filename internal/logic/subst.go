package logic

// IsSubstitutable reports whether substituting t for free occurrences of
// v in f is capture-avoiding: for every binder Qw.body in f with v free
// in body, w must not occur in t.
func IsSubstitutable(f Formula, v Var, t Term) bool {
	switch x := f.(type) {
	case Pred, Eq:
		return true
	case Not:
		return IsSubstitutable(x.Body, v, t)
	case And:
		return IsSubstitutable(x.Left, v, t) && IsSubstitutable(x.Right, v, t)
	case Or:
		return IsSubstitutable(x.Left, v, t) && IsSubstitutable(x.Right, v, t)
	case Implies:
		return IsSubstitutable(x.Left, v, t) && IsSubstitutable(x.Right, v, t)
	case Forall:
		return binderSubstitutable(x.V, x.Body, v, t)
	case Exists:
		return binderSubstitutable(x.V, x.Body, v, t)
	default:
		return true
	}
}

func binderSubstitutable(w Var, body Formula, v Var, t Term) bool {
	if w == v {
		// v is rebound here; no free occurrence below can be reached.
		return true
	}
	if !FreeVars(body).Contains(v) {
		return true
	}
	if TermVars(t).Contains(w) {
		return false
	}
	return IsSubstitutable(body, v, t)
}

// Substitute replaces every free occurrence of v in f with t, leaving
// occurrences under a rebinding quantifier untouched. Callers must check
// IsSubstitutable first; behavior under capture is not a contract of
// this function.
func Substitute(f Formula, v Var, t Term) Formula {
	switch x := f.(type) {
	case Pred:
		args := make([]Term, len(x.Args))
		for i, arg := range x.Args {
			args[i] = substituteTerm(arg, v, t)
		}
		return Pred{Name: x.Name, Args: args}
	case Eq:
		return Eq{Left: substituteTerm(x.Left, v, t), Right: substituteTerm(x.Right, v, t)}
	case Not:
		return Not{Body: Substitute(x.Body, v, t)}
	case And:
		return And{Left: Substitute(x.Left, v, t), Right: Substitute(x.Right, v, t)}
	case Or:
		return Or{Left: Substitute(x.Left, v, t), Right: Substitute(x.Right, v, t)}
	case Implies:
		return Implies{Left: Substitute(x.Left, v, t), Right: Substitute(x.Right, v, t)}
	case Forall:
		if x.V == v {
			return x
		}
		return Forall{V: x.V, Body: Substitute(x.Body, v, t)}
	case Exists:
		if x.V == v {
			return x
		}
		return Exists{V: x.V, Body: Substitute(x.Body, v, t)}
	default:
		return f
	}
}

func substituteTerm(u Term, v Var, t Term) Term {
	switch x := u.(type) {
	case Var:
		if x == v {
			return t
		}
		return x
	case Fn:
		args := make([]Term, len(x.Args))
		for i, arg := range x.Args {
			args[i] = substituteTerm(arg, v, t)
		}
		return Fn{Name: x.Name, Args: args}
	default:
		return u
	}
}
