package bst

import "golang.org/x/exp/constraints"

// Validate reports whether the tree rooted at root satisfies the strict
// search ordering: an in-order walk yields strictly increasing values,
// so equal values anywhere in the tree disqualify it. Empty and
// single-node trees are valid.
//
// The check rides on InOrderFunc and stops at the first violation.
//
// Complexity: O(n) time, O(h) space for tree height h.
func Validate[T constraints.Ordered](root *Node[T]) bool {
	var prev *T

	return InOrderFunc(root, func(v T) bool {
		if prev != nil && v <= *prev {
			return false
		}
		prev = &v

		return true
	})
}
