// Package y2024 holds the solvers for the 2024 event.
// Package y2024 包含 2024 年的谜题求解器。
package y2024

import (
	"slices"

	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/pkg/errors"
	"github.com/livp123/advent/pkg/strs"
)

func init() {
	puzzles.Register(2024, 1, "Historian Hysteria", puzzles.Funcs{One: day1Part1, Two: day1Part2})
}

// parseLists reads two whitespace separated columns of integers.
func parseLists(input string) (left, right []int64, err error) {
	nums, err := strs.ParseAll[int64](strs.SplitWhitespace(input))
	if err != nil {
		return nil, nil, err
	}
	if len(nums)%2 != 0 {
		return nil, nil, errors.NewInputError("odd number of location ids", input)
	}
	for i := 0; i < len(nums); i += 2 {
		left = append(left, nums[i])
		right = append(right, nums[i+1])
	}
	return left, right, nil
}

func day1Part1(input string) (int64, error) {
	left, right, err := parseLists(input)
	if err != nil {
		return 0, err
	}
	slices.Sort(left)
	slices.Sort(right)

	var total int64
	for i := range left {
		total += abs(left[i] - right[i])
	}
	return total, nil
}

func day1Part2(input string) (int64, error) {
	left, right, err := parseLists(input)
	if err != nil {
		return 0, err
	}
	counts := make(map[int64]int64, len(right))
	for _, v := range right {
		counts[v]++
	}

	var total int64
	for _, v := range left {
		total += v * counts[v]
	}
	return total, nil
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
