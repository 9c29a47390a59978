package rotated

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors reported by Validate.
var (
	// ErrNotRotated indicates the sequence is not an ascending sequence
	// rotated at a single pivot.
	ErrNotRotated = errors.New("rotated: sequence is not an ascending rotation")

	// ErrDuplicateValue indicates two equal adjacent values; Search
	// assumes strictly ascending runs.
	ErrDuplicateValue = errors.New("rotated: duplicate value")
)

// Validate reports whether seq satisfies the invariant Search relies on:
// a strictly ascending sequence rotated at some pivot, observed as at
// most two strictly ascending runs with the second run wrapping
// strictly below the first element (pivot 0, a fully sorted sequence,
// included).
//
// Empty and single-element sequences are vacuously valid. The first
// violation found is reported, wrapped around ErrNotRotated or
// ErrDuplicateValue with its position.
//
// Complexity: O(n) time, O(1) space.
func Validate[T constraints.Ordered](seq []T) error {
	// Count descents; a rotation admits at most one.
	descents := 0
	for i := 0; i+1 < len(seq); i++ {
		switch {
		case seq[i] == seq[i+1]:
			return fmt.Errorf("%w: positions %d and %d", ErrDuplicateValue, i, i+1)
		case seq[i] > seq[i+1]:
			descents++
			if descents > 1 {
				return fmt.Errorf("%w: second descent at position %d", ErrNotRotated, i)
			}
		}
	}

	// With one descent the sequence must wrap strictly below its head;
	// equality here would mean a duplicate across the pivot.
	if descents == 1 && seq[len(seq)-1] >= seq[0] {
		return fmt.Errorf("%w: tail %v does not wrap below head %v", ErrNotRotated, seq[len(seq)-1], seq[0])
	}

	return nil
}
