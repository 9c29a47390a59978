package mountain

import "golang.org/x/exp/constraints"

// NotFound is the sentinel index reported when the target is absent
// (or, for Peak, when the sequence is empty).
const NotFound = -1

// Peak returns the index of the unique maximum of a strictly unimodal
// sequence. The sequence must strictly ascend to a single peak and then
// strictly descend (see Validate); either slope may be empty, so fully
// ascending and fully descending sequences are degenerate mountains
// with their peak at the last or first index.
//
// Empty input returns NotFound. Single element returns 0.
//
// Complexity: O(log n) time, O(1) space.
func Peak[T constraints.Ordered](seq []T) int {
	if len(seq) == 0 {
		return NotFound
	}

	left, right := 0, len(seq)-1
	var mid int
	for left < right {
		// mid < right, so seq[mid+1] is always in range.
		mid = left + (right-left)/2
		if seq[mid] < seq[mid+1] {
			// Ascending slope: the peak lies strictly to the right.
			left = mid + 1
		} else {
			// Descending slope or the peak itself.
			right = mid
		}
	}

	return left
}

// Search returns the index of target in a strictly unimodal sequence,
// or NotFound. The sequence splits at the peak into an ascending prefix
// [0, peak] and a descending suffix [peak+1, end]; each run is searched
// with a lower-bound pass under its own ordering, and a hit requires
// exact equality, not merely a bound. When the target appears on both
// slopes the ascending-side index is returned.
//
// Empty input returns NotFound. The unimodality precondition is not
// checked here; run Validate on untrusted input.
//
// Complexity: O(log n) time, O(1) space.
func Search[T constraints.Ordered](seq []T, target T) int {
	if len(seq) == 0 {
		return NotFound
	}

	peak := Peak(seq)

	// Ascending prefix, window [0, peak].
	if idx := lowerBoundAsc(seq, 0, peak+1, target); idx <= peak && seq[idx] == target {
		return idx
	}

	// Descending suffix; the window is empty when the peak is the last
	// index.
	if idx := lowerBoundDesc(seq, peak+1, len(seq), target); idx < len(seq) && seq[idx] == target {
		return idx
	}

	return NotFound
}

// lowerBoundAsc returns the first index in the half-open window
// [lo, hi) whose value is not less than target, or hi when none is.
// The window must be ascending.
func lowerBoundAsc[T constraints.Ordered](seq []T, lo, hi int, target T) int {
	var mid int
	for lo < hi {
		mid = lo + (hi-lo)/2
		if seq[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// lowerBoundDesc is the reversed-order twin of lowerBoundAsc: the first
// index in [lo, hi) whose value is not greater than target, or hi when
// none is. The window must be descending.
func lowerBoundDesc[T constraints.Ordered](seq []T, lo, hi int, target T) int {
	var mid int
	for lo < hi {
		mid = lo + (hi-lo)/2
		if seq[mid] > target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}
