package rotated

import "golang.org/x/exp/constraints"

// NotFound is the sentinel index reported when the target is absent.
// It is distinct from every valid index, so callers can test the result
// with a single comparison.
const NotFound = -1

// Search returns the index of target in seq, or NotFound.
//
// seq must be a strictly ascending sequence rotated at an unknown pivot
// (see Validate). The precondition is not checked here; Search stays
// O(log n) and leaves the O(n) check as an opt-in. Behavior on
// sequences with duplicate values is unspecified.
//
// At every step exactly one half of the window is a contiguous
// ascending run; comparing the midpoint against the left boundary tells
// which one, and a range test on that run decides the half to discard.
//
// Complexity: O(log n) time, O(1) space.
func Search[T constraints.Ordered](seq []T, target T) int {
	// 1. Window over the whole sequence; empty input never enters the loop.
	left, right := 0, len(seq)-1

	var mid int
	for left <= right {
		// 2. Overflow-safe midpoint.
		mid = left + (right-left)/2
		if seq[mid] == target {
			return mid
		}

		if seq[left] <= seq[mid] {
			// 3. [left, mid] is the ascending run.
			if target >= seq[left] && target < seq[mid] {
				right = mid - 1 // target can only live in the sorted half
			} else {
				left = mid + 1
			}
		} else {
			// 4. [mid, right] is the ascending run.
			if target > seq[mid] && target <= seq[right] {
				left = mid + 1
			} else {
				right = mid - 1
			}
		}
	}

	// 5. Window collapsed without a match.
	return NotFound
}
