// Package bst validates, rebuilds and walks binary search trees with
// strictly increasing values.
//
// What
//
//   - Node[T] is an open tree vertex: callers wire Left and Right
//     directly, and a nil *Node is a valid empty tree.
//   - Validate(root) reports whether an in-order walk of the tree is
//     strictly increasing, the defining BST property here.
//   - FromPreorder(values) rebuilds the unique strict BST whose
//     preorder walk produced values.
//   - InOrderFunc, InOrder, PreOrder walk a tree; Equal, Size, Height
//     measure and compare.
//   - Generic over any ordered value type: ints, floats, strings.
//
// Why
//
//	A BST is only as good as its ordering invariant, and trees built by
//	hand or decoded from elsewhere arrive untrusted. Validate checks
//	the invariant in one iterative in-order pass. FromPreorder is the
//	inverse problem: a preorder listing pins down a strict BST
//	uniquely, and threading exclusive bounds through the recursion
//	rebuilds it in linear time, no sorting and no repeated scanning.
//
// Contract
//
//	Strictness is absolute: equal values never belong to the same tree,
//	so Validate fails on any duplicate and FromPreorder stops rather
//	than place one. FromPreorder is best-effort on malformed input: it
//	consumes the longest valid prefix and drops the rest, always
//	returning a valid (possibly nil) tree. Validate and InOrderFunc
//	iterate over an explicit stack: a degenerate chain of n nodes costs
//	O(n) heap, not n call frames.
//
// Complexity (n nodes, height h)
//
//   - Validate:     O(n) time, O(h) space
//   - FromPreorder: O(n) time, O(h) space
//   - InOrder, PreOrder, Equal, Size, Height: O(n) time
//
// Usage
//
//	root := bst.FromPreorder([]int{10, 5, 1, 7, 15, 12, 20})
//	bst.Validate(root)      // true
//	bst.InOrder(root)       // [1 5 7 10 12 15 20]
//	bst.PreOrder(root)      // [10 5 1 7 15 12 20], the input again
//	root.Size()             // 7
//	root.Height()           // 3
//
//	manual := &bst.Node[string]{Value: "grape"}
//	manual.Left = &bst.Node[string]{Value: "kiwi"} // out of place
//	bst.Validate(manual)    // false
package bst
