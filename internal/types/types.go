package types

// Issue represents an invalid inference found while checking a proof.
type Issue struct {
	Rule     string // rule name of the offending node
	Filename string // proof file the node came from, if any
	Path     string // premise-index path from the root, e.g. "root.1.0"
	Sequent  string // the node's conclusion sequent
	Message  string
}
