// Package rotated searches ascending sequences that were rotated at an
// unknown pivot, in logarithmic time.
//
// What
//
//   - Search(seq, target) returns the index of target in a rotated
//     ascending sequence, or NotFound (-1) when absent.
//   - Validate(seq) checks the rotated-ascending invariant Search
//     assumes: two strictly ascending runs, the second wrapping strictly
//     below the first (a fully sorted sequence counts, pivot 0).
//   - Generic over any ordered element type: ints, floats, strings.
//
// Why
//
//	A sorted array rotated at a pivot (think a circular log whose oldest
//	entry is mid-buffer) still admits O(log n) lookup: at every midpoint
//	exactly one half is a plain ascending run, and one comparison against
//	the window's left edge reveals which. Search exploits this tie-break
//	instead of falling back to a linear scan.
//
// Contract
//
//	Not-found is a sentinel index, never an error; empty input is a
//	valid sequence with nothing in it. Search does not verify its
//	precondition (that check is O(n); Search is O(log n)), so run
//	Validate when the input's provenance is untrusted. Duplicate values
//	void the contract: Search's behavior on them is unspecified.
//
// Complexity (n = len(seq))
//
//   - Search:   O(log n) time, O(1) space
//   - Validate: O(n) time, O(1) space
//
// Usage
//
//	seq := []int{4, 5, 6, 7, 0, 1, 2} // sorted, rotated at pivot 4
//	if err := rotated.Validate(seq); err != nil {
//	    // ErrNotRotated or ErrDuplicateValue, with position detail
//	}
//	idx := rotated.Search(seq, 0) // 4
//	if idx == rotated.NotFound {
//	    // absent
//	}
//
// Errors
//
//	ErrNotRotated     - more than one descent, or the tail fails to
//	                    wrap strictly below the head.
//	ErrDuplicateValue - equal adjacent values.
package rotated
