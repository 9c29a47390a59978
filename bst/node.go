package bst

import "golang.org/x/exp/constraints"

// Node is one vertex of a binary tree over an ordered value type. A nil
// *Node is a valid empty tree, and every operation in this package
// accepts one.
//
// The struct is deliberately open: callers build and rewire trees by
// assigning Left and Right directly, and Validate checks the search
// ordering after the fact.
type Node[T constraints.Ordered] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node[T]) Size() int {
	if n == nil {
		return 0
	}

	return 1 + n.Left.Size() + n.Right.Size()
}

// Height returns the number of nodes on the longest path from n down to
// a leaf: 0 for an empty tree, 1 for a lone root.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}

	lh, rh := n.Left.Height(), n.Right.Height()
	if lh >= rh {
		return 1 + lh
	}

	return 1 + rh
}

// Equal reports whether a and b are structurally identical: the same
// shape with the same value at every position.
func Equal[T constraints.Ordered](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Value == b.Value && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}
