// Package lvlsearch is a compact toolkit for searching ordered data that
// is not plainly sorted — rotated arrays, mountain (unimodal) arrays,
// and binary search trees reconstructed from their pre-order walks.
//
// 🚀 What is lvlsearch?
//
//	A small, pure-Go library of logarithmic search primitives and BST
//	utilities, generic over any ordered element type:
//		• rotated:  O(log n) target search in an ascending array rotated
//		  at an unknown pivot, plus an invariant validator
//		• mountain: peak location and O(log n) target search in strictly
//		  unimodal arrays, plus an invariant validator
//		• bst:      reconstruct a binary search tree from its pre-order
//		  sequence, validate BST ordering iteratively, and walk trees
//		  without recursion
//
// ✨ Why choose lvlsearch?
//
//   - Minimal API – one or two entry points per package, clear naming
//   - Sentinel results – absence is an index (NotFound), never an error
//   - Generic – every algorithm is parameterized over ordered types;
//     ints, floats, and strings all work out of the box
//   - No recursion on hostile shapes – tree validation and traversal use
//     an explicit stack, so degenerate (list-shaped) trees cannot blow
//     the call stack
//   - Pure Go – no cgo, no runtime dependencies
//
// Each package is self-contained and depends on nothing but the element
// type's ordering:
//
//	rotated/  — Search, Validate over rotated-sorted sequences
//	mountain/ — Peak, Search, Validate over unimodal sequences
//	bst/      — Node, FromPreorder, Validate, traversals & helpers
//
// Quick ASCII example:
//
//	[4 5 6 7 0 1 2]   rotated at pivot 4:  Search(seq, 0) = 4
//	[1 3 5 8 7 4 2]   mountain, peak at 3: Search(seq, 4) = 5
//
// See each package's doc.go for contracts, complexity, and examples,
// and examples/ for runnable demonstration programs.
//
//	go get github.com/katalvlaran/lvlsearch
package lvlsearch
