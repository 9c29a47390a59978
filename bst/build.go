package bst

import "golang.org/x/exp/constraints"

// preorderBuilder carries the cursor shared by every frame of a
// reconstruction, advancing once per consumed value.
type preorderBuilder[T constraints.Ordered] struct {
	values []T
	pos    int
}

// FromPreorder reconstructs the binary search tree whose preorder walk
// produced values: the first value roots a subtree, the following run
// of smaller values becomes its left child, the next run of larger
// values its right child. Each frame admits only values strictly inside
// its bounds, and a nil bound means unbounded on that side, so extreme
// values of T need no special casing.
//
// Reconstruction is best-effort on malformed input: it stops at the
// first value no open subtree admits (a duplicate, or a value breaking
// an enclosing bound) and leaves the remainder unread. The result is
// always a valid strict BST, and when values is a genuine preorder walk
// of one, PreOrder(FromPreorder(values)) reproduces values exactly.
//
// Empty input yields a nil tree.
//
// Complexity: O(n) time, O(h) recursion for result height h.
func FromPreorder[T constraints.Ordered](values []T) *Node[T] {
	b := &preorderBuilder[T]{values: values}

	return b.build(nil, nil)
}

// build consumes the longest prefix fitting strictly between the
// exclusive bounds.
func (b *preorderBuilder[T]) build(lower, upper *T) *Node[T] {
	// 1. Out of input: the subtree is closed.
	if b.pos >= len(b.values) {
		return nil
	}

	// 2. A value outside the bounds belongs to an enclosing subtree.
	v := b.values[b.pos]
	if lower != nil && v <= *lower {
		return nil
	}
	if upper != nil && v >= *upper {
		return nil
	}

	// 3. Consume the value, then fill both children, left first.
	b.pos++
	n := &Node[T]{Value: v}
	n.Left = b.build(lower, &v)
	n.Right = b.build(&v, upper)

	return n
}
