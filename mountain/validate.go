package mountain

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrNotMountain reports that a sequence is not strictly unimodal.
var ErrNotMountain = errors.New("mountain: sequence is not strictly unimodal")

// Validate checks that seq strictly ascends to a single peak and then
// strictly descends. Either slope may be empty, so strictly ascending
// and strictly descending sequences are accepted, as are empty and
// single-element ones. Plateaus and second ascents fail.
//
// Returns nil on success, or ErrNotMountain wrapped with the position
// of the first offending adjacent pair.
//
// Complexity: O(n) time, O(1) space.
func Validate[T constraints.Ordered](seq []T) error {
	// 1. Consume the ascending slope.
	i := 0
	for i+1 < len(seq) && seq[i] < seq[i+1] {
		i++
	}

	// 2. Consume the descending slope.
	for i+1 < len(seq) && seq[i] > seq[i+1] {
		i++
	}

	// 3. Anything left over is a plateau or a second ascent.
	if i+1 < len(seq) {
		return fmt.Errorf("%w: not strictly monotone at position %d", ErrNotMountain, i)
	}

	return nil
}
