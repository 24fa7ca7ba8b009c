package ltlsynth

import "fmt"

// dagNode is the decoded skeleton for one syntax-DAG node: its label and,
// for operator nodes, its child indices.
type dagNode struct {
	sym   Symbol
	left  int
	right int
	isOp  bool
	isBin bool
}

// decode reads a satisfying assignment over {x, l, r} and reconstructs
// the LTL formula by rooting at node n-1 and walking child pointers,
// re-rendering shared subexpressions at each occurrence.
func decode(ns *Namespace, backend BackendAdapter, n int) (*Formula, error) {
	nodes, err := decodeNodes(ns, backend, n)
	if err != nil {
		return nil, err
	}
	return renderNode(nodes, n-1)
}

// decodeNodes finds, for every node i, the unique true label and (for
// operator nodes) the unique true left/right child. Namespace.Lookup
// lets this walk the assignment without re-parsing any strings.
func decodeNodes(ns *Namespace, backend BackendAdapter, n int) ([]dagNode, error) {
	nodes := make([]dagNode, n)
	for i := range nodes {
		nodes[i] = dagNode{left: -1, right: -1}
	}

	for v := Var(1); v <= Var(ns.Len()); v++ {
		val, defined := backend.Value(v)
		if !defined || !val {
			continue
		}
		key, ok := ns.Lookup(v)
		if !ok {
			continue
		}
		switch k := key.(type) {
		case LabelKey:
			if k.Node < 0 || k.Node >= n {
				continue
			}
			nodes[k.Node].sym = k.Sym
			nodes[k.Node].isOp = k.IsOp
			if nodes[k.Node].isOp {
				nodes[k.Node].isBin = Op(k.Sym).IsBinary()
			}
		case LeftKey:
			if k.Node < 0 || k.Node >= n {
				continue
			}
			nodes[k.Node].left = k.Child
		case RightKey:
			if k.Node < 0 || k.Node >= n {
				continue
			}
			nodes[k.Node].right = k.Child
		}
	}

	for i, node := range nodes {
		if node.sym == "" {
			return nil, fmt.Errorf("node %d has no label in the satisfying assignment", i)
		}
	}
	return nodes, nil
}

// renderNode recursively builds the Formula tree rooted at index i,
// re-rendering shared children independently at every occurrence so the
// DAG unfolds to a formula tree in the textual output.
func renderNode(nodes []dagNode, i int) (*Formula, error) {
	if i < 0 || i >= len(nodes) {
		return nil, fmt.Errorf("child index %d out of range", i)
	}
	node := nodes[i]
	if !node.isOp {
		return NewAtom(string(node.sym)), nil
	}
	if node.left < 0 {
		return nil, fmt.Errorf("operator node %d has no left child", i)
	}
	left, err := renderNode(nodes, node.left)
	if err != nil {
		return nil, err
	}
	if !node.isBin {
		return NewUnary(Op(node.sym), left), nil
	}
	if node.right < 0 {
		return nil, fmt.Errorf("binary operator node %d has no right child", i)
	}
	right, err := renderNode(nodes, node.right)
	if err != nil {
		return nil, err
	}
	return NewBinary(Op(node.sym), left, right), nil
}
