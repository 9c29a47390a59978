package mountain_test

import (
	"testing"

	"github.com/katalvlaran/lvlsearch/mountain"
	"github.com/stretchr/testify/assert"
)

// TestPeak_Classic verifies the peak index on ordinary mountains with
// both slopes populated.
func TestPeak_Classic(t *testing.T) {
	assert.Equal(t, 3, mountain.Peak([]int{1, 3, 5, 8, 7, 4, 2}), "peak of 8 sits at index 3")
	assert.Equal(t, 3, mountain.Peak([]int{0, 1, 2, 4, 2, 1}), "peak of 4 sits at index 3")
	assert.Equal(t, 4, mountain.Peak([]int{1, 2, 3, 4, 5, 3, 1}), "peak of 5 sits at index 4")
}

// TestPeak_Degenerate verifies that one-sided mountains place the peak
// at the matching end.
func TestPeak_Degenerate(t *testing.T) {
	assert.Equal(t, 4, mountain.Peak([]int{1, 2, 3, 4, 5}), "fully ascending peaks at the last index")
	assert.Equal(t, 0, mountain.Peak([]int{5, 4, 3, 2, 1}), "fully descending peaks at the first index")
	assert.Equal(t, 1, mountain.Peak([]int{1, 3}), "ascending pair peaks at the last index")
	assert.Equal(t, 0, mountain.Peak([]int{3, 1}), "descending pair peaks at the first index")
	assert.Equal(t, 0, mountain.Peak([]int{7}), "single element is its own peak")
}

// TestPeak_Empty verifies the NotFound sentinel on empty input.
func TestPeak_Empty(t *testing.T) {
	assert.Equal(t, mountain.NotFound, mountain.Peak([]int{}), "empty sequence has no peak")
	assert.Equal(t, mountain.NotFound, mountain.Peak[int](nil), "nil sequence has no peak")
}

// TestSearch_DescendingSlope verifies a hit strictly after the peak.
func TestSearch_DescendingSlope(t *testing.T) {
	seq := []int{1, 3, 5, 8, 7, 4, 2}

	assert.Equal(t, 5, mountain.Search(seq, 4), "4 sits on the descending slope")
	assert.Equal(t, 4, mountain.Search(seq, 7), "7 sits just after the peak")
	assert.Equal(t, 6, mountain.Search(seq, 2), "2 is the last element")
}

// TestSearch_AscendingSlope verifies hits before and at the peak.
func TestSearch_AscendingSlope(t *testing.T) {
	seq := []int{1, 3, 5, 8, 7, 4, 2}

	assert.Equal(t, 0, mountain.Search(seq, 1), "1 is the first element")
	assert.Equal(t, 1, mountain.Search(seq, 3), "3 sits on the ascending slope")
	assert.Equal(t, 3, mountain.Search(seq, 8), "the peak itself is found")
}

// TestSearch_PeakTarget verifies that targeting the maximum resolves via
// the ascending window, which includes the peak.
func TestSearch_PeakTarget(t *testing.T) {
	assert.Equal(t, 4, mountain.Search([]int{1, 2, 3, 4, 5, 3, 1}, 5), "peak value found at peak index")
}

// TestSearch_Absent verifies NotFound on values missing from both
// slopes, including ones inside the value range.
func TestSearch_Absent(t *testing.T) {
	assert.Equal(t, mountain.NotFound, mountain.Search([]int{0, 1, 2, 4, 2, 1}, 3), "3 falls in a gap on both slopes")
	assert.Equal(t, mountain.NotFound, mountain.Search([]int{1, 3, 5, 8, 7, 4, 2}, 6), "6 falls between slope values")
	assert.Equal(t, mountain.NotFound, mountain.Search([]int{1, 3, 5, 8, 7, 4, 2}, 0), "0 is below every element")
	assert.Equal(t, mountain.NotFound, mountain.Search([]int{1, 3, 5, 8, 7, 4, 2}, 9), "9 is above the peak")
}

// TestSearch_DegenerateAscending verifies search over a mountain whose
// descending slope is empty.
func TestSearch_DegenerateAscending(t *testing.T) {
	seq := []int{1, 2, 3, 4, 5}

	assert.Equal(t, 0, mountain.Search(seq, 1), "first element of an ascending run")
	assert.Equal(t, 4, mountain.Search(seq, 5), "peak at the last index")
	assert.Equal(t, mountain.NotFound, mountain.Search(seq, 6), "absent above the run")
}

// TestSearch_DegenerateDescending verifies search over a mountain whose
// ascending slope is empty.
func TestSearch_DegenerateDescending(t *testing.T) {
	seq := []int{5, 4, 3, 2, 1}

	assert.Equal(t, 2, mountain.Search(seq, 3), "middle of a descending run")
	assert.Equal(t, 0, mountain.Search(seq, 5), "peak at the first index")
	assert.Equal(t, 4, mountain.Search(seq, 1), "last element of a descending run")
	assert.Equal(t, mountain.NotFound, mountain.Search(seq, 0), "absent below the run")
}

// TestSearch_PrefersAscendingSlope verifies that a value present on both
// slopes reports its ascending-side index.
func TestSearch_PrefersAscendingSlope(t *testing.T) {
	// 4 occurs at indices 1 and 4, 2 at indices 0 and 5.
	seq := []int{2, 4, 6, 5, 4, 2}

	assert.Equal(t, 1, mountain.Search(seq, 4), "duplicate across slopes resolves to the ascending index")
	assert.Equal(t, 0, mountain.Search(seq, 2), "duplicate across slopes resolves to the ascending index")
	assert.Equal(t, 3, mountain.Search(seq, 5), "value unique to the descending slope keeps its index")
}

// TestSearch_TinyInputs verifies the empty and single-element cases.
func TestSearch_TinyInputs(t *testing.T) {
	assert.Equal(t, mountain.NotFound, mountain.Search([]int{}, 1), "empty sequence holds nothing")
	assert.Equal(t, 0, mountain.Search([]int{42}, 42), "single element found at index 0")
	assert.Equal(t, mountain.NotFound, mountain.Search([]int{42}, 41), "single element mismatch")
}

// TestSearch_Strings verifies the generic instantiation on lexicographic
// order.
func TestSearch_Strings(t *testing.T) {
	seq := []string{"ant", "bee", "cat", "bat", "ash"}

	assert.Equal(t, 2, mountain.Peak(seq), "cat is the lexicographic peak")
	assert.Equal(t, 1, mountain.Search(seq, "bee"), "ascending-slope string")
	assert.Equal(t, 3, mountain.Search(seq, "bat"), "descending-slope string")
	assert.Equal(t, mountain.NotFound, mountain.Search(seq, "car"), "absent string")
}

// TestSearch_EveryShape sweeps every slope-length split up to a fixed
// size and checks each element resolves to its own index. Ascending
// values are even and descending ones odd, so no value repeats.
func TestSearch_EveryShape(t *testing.T) {
	const maxSlope = 6

	for up := 0; up <= maxSlope; up++ {
		for down := 0; down <= maxSlope; down++ {
			seq := make([]int, 0, up+down+1)
			for i := 0; i <= up; i++ {
				seq = append(seq, 2*i)
			}
			for j := 1; j <= down; j++ {
				seq = append(seq, 2*up-2*j+1)
			}

			assert.NoError(t, mountain.Validate(seq), "constructed sequence must be a mountain: %v", seq)
			assert.Equal(t, up, mountain.Peak(seq), "constructed peak index: %v", seq)
			for i, v := range seq {
				assert.Equal(t, i, mountain.Search(seq, v), "element %d of %v", v, seq)
			}
			assert.Equal(t, mountain.NotFound, mountain.Search(seq, 2*up+2), "above the peak: %v", seq)
			assert.Equal(t, mountain.NotFound, mountain.Search(seq, -2), "below every element: %v", seq)
		}
	}
}

// TestValidate_Accepts verifies that classic and degenerate mountains
// pass validation.
func TestValidate_Accepts(t *testing.T) {
	assert.NoError(t, mountain.Validate([]int{1, 3, 5, 8, 7, 4, 2}), "classic mountain")
	assert.NoError(t, mountain.Validate([]int{1, 2, 3, 4, 5}), "fully ascending")
	assert.NoError(t, mountain.Validate([]int{5, 4, 3, 2, 1}), "fully descending")
	assert.NoError(t, mountain.Validate([]int{1, 2}), "ascending pair")
	assert.NoError(t, mountain.Validate([]int{7}), "single element")
	assert.NoError(t, mountain.Validate([]int{}), "empty sequence")
	assert.NoError(t, mountain.Validate([]string{"ant", "cat", "bat"}), "string mountain")
}

// TestValidate_Rejects verifies plateaus and second ascents fail with
// ErrNotMountain and the offending position.
func TestValidate_Rejects(t *testing.T) {
	assert.ErrorIs(t, mountain.Validate([]int{1, 2, 2, 1}), mountain.ErrNotMountain, "plateau at the top")
	assert.ErrorIs(t, mountain.Validate([]int{2, 2}), mountain.ErrNotMountain, "flat pair")
	assert.ErrorIs(t, mountain.Validate([]int{1, 3, 2, 4}), mountain.ErrNotMountain, "second ascent")
	assert.ErrorIs(t, mountain.Validate([]int{3, 1, 2}), mountain.ErrNotMountain, "valley")
	assert.ErrorIs(t, mountain.Validate([]int{5, 4, 4, 3}), mountain.ErrNotMountain, "plateau on the way down")

	assert.ErrorContains(t, mountain.Validate([]int{1, 3, 2, 4}), "position 2", "error names the offending pair")
}
