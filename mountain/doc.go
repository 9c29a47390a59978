// Package mountain locates the peak of a strictly unimodal sequence and
// searches both of its slopes, in logarithmic time.
//
// What
//
//   - Peak(seq) returns the index of the unique maximum of a mountain,
//     a sequence that strictly ascends then strictly descends.
//   - Search(seq, target) returns the index of target in a mountain, or
//     NotFound (-1); when target sits on both slopes the ascending-side
//     index wins.
//   - Validate(seq) checks the strict-unimodality invariant Peak and
//     Search assume.
//   - Generic over any ordered element type: ints, floats, strings.
//
// Why
//
//	A unimodal sequence is two sorted runs glued at the maximum, so it
//	admits the same O(log n) treatment as a sorted array: first find the
//	glue point by comparing each midpoint with its right neighbor, then
//	run an ordinary lower-bound pass on each slope under its own
//	ordering. Three binary searches instead of one linear scan.
//
// Contract
//
//	Either slope may be empty: strictly ascending and strictly
//	descending sequences are degenerate mountains with the peak at an
//	end, and Peak and Search handle them without special cases.
//	Not-found is a sentinel index, never an error; empty input is a
//	valid sequence with nothing in it. Peak and Search do not verify
//	their precondition (that check is O(n)), so run Validate when the
//	input's provenance is untrusted. Plateaus void the contract:
//	behavior on equal adjacent values is unspecified.
//
// Complexity (n = len(seq))
//
//   - Peak:     O(log n) time, O(1) space
//   - Search:   O(log n) time, O(1) space
//   - Validate: O(n) time, O(1) space
//
// Usage
//
//	seq := []int{1, 3, 5, 8, 7, 4, 2}
//	if err := mountain.Validate(seq); err != nil {
//	    // ErrNotMountain, with position detail
//	}
//	top := mountain.Peak(seq)      // 3
//	idx := mountain.Search(seq, 4) // 5, on the descending slope
//	if idx == mountain.NotFound {
//	    // absent
//	}
//
// Errors
//
//	ErrNotMountain - a plateau or a second ascent breaks strict
//	                 unimodality.
package mountain
