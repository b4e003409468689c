// Package logic implements the term and formula algebra of classical
// first-order logic with equality, together with sequents.
//
// Terms, formulas, and sequents are immutable values with structural
// equality. The package provides free/bound variable collection,
// subterm and subformula enumeration, non-logical signature extraction,
// and capture-checked substitution. These operations are the foundation
// the LK rule checker in internal/proof is built on.
//
// Out of scope:
//   - proof search
//   - semantic (model-theoretic) evaluation of formulas
package logic
