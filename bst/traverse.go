package bst

import "golang.org/x/exp/constraints"

// InOrderFunc walks the tree left-root-right, calling visit on each
// value, and reports whether the walk ran to completion. Returning
// false from visit stops the walk early.
//
// The walk keeps an explicit stack instead of recursing, so a
// degenerate chain of n nodes costs O(n) heap and never touches the
// call stack.
//
// Complexity: O(n) time, O(h) space for tree height h.
func InOrderFunc[T constraints.Ordered](root *Node[T], visit func(value T) bool) bool {
	var stack []*Node[T]
	curr := root

	for curr != nil || len(stack) > 0 {
		// 1. Slide down to the leftmost pending node.
		for curr != nil {
			stack = append(stack, curr)
			curr = curr.Left
		}

		// 2. Pop and visit it.
		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(curr.Value) {
			return false
		}

		// 3. Its right subtree comes next.
		curr = curr.Right
	}

	return true
}

// InOrder returns every value in the tree in left-root-right order. For
// a valid binary search tree that order is strictly ascending.
func InOrder[T constraints.Ordered](root *Node[T]) []T {
	out := make([]T, 0, root.Size())
	InOrderFunc(root, func(v T) bool {
		out = append(out, v)

		return true
	})

	return out
}

// PreOrder returns every value in the tree in root-left-right order,
// the listing FromPreorder inverts.
func PreOrder[T constraints.Ordered](root *Node[T]) []T {
	out := make([]T, 0, root.Size())

	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		out = append(out, n.Value)
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)

	return out
}
