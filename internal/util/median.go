package util

import (
	"errors"
	"slices"
)

// ErrEmptyInput is returned by statistics that are undefined for zero values.
var ErrEmptyInput = errors.New("empty input")

// Median returns the middle value of nums, or the mean of the two middle
// values when len(nums) is even. nums is not modified; the sort runs on a copy.
func Median(nums []float64) (float64, error) {
	if len(nums) == 0 {
		return 0, ErrEmptyInput
	}

	sorted := slices.Clone(nums)
	slices.Sort(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2], nil
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2, nil
}
