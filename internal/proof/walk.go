package proof

import "strconv"

// Step pairs a derivation node with its premise-index path from the
// root, e.g. "root.1.0" for the first premise of the second premise.
type Step struct {
	Node LK
	Path string
}

// Walk returns every node of the derivation, root first. The traversal
// is iterative, so pathological depths cannot exhaust the call stack.
// Checking the returned steps independently is safe to parallelize:
// nothing in a step check mutates shared state.
func Walk(root LK) []Step {
	var steps []Step
	stack := []Step{{Node: root, Path: "root"}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		steps = append(steps, cur)

		premises := Premises(cur.Node)
		for i := len(premises) - 1; i >= 0; i-- {
			stack = append(stack, Step{
				Node: premises[i],
				Path: cur.Path + "." + strconv.Itoa(i),
			})
		}
	}
	return steps
}
