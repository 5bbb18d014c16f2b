// Package y2025 holds the solvers for the 2025 event.
package y2025

import (
	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/pkg/errors"
	"github.com/livp123/advent/pkg/strs"
)

func init() {
	puzzles.Register(2025, 1, "Secret Entrance", puzzles.Funcs{One: day1Part1, Two: day1Part2})
}

const (
	dialSize  = 100
	dialStart = 50
)

// parseRotations reads lines like "L68" or "R48" as signed click counts.
func parseRotations(input string) ([]int, error) {
	var out []int
	for line := range strs.Lines(input).All() {
		if len(line) < 2 {
			return nil, errors.NewInputError("rotation", line)
		}
		n, ok := strs.ParseNum[int](line[1:])
		if !ok || n < 0 {
			return nil, errors.NewInputError("rotation distance", line)
		}
		switch line[0] {
		case 'L':
			out = append(out, -n)
		case 'R':
			out = append(out, n)
		default:
			return nil, errors.NewInputError("rotation direction", line)
		}
	}
	return out, nil
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// day1Part1 counts rotations that leave the dial pointing at 0.
func day1Part1(input string) (int64, error) {
	rots, err := parseRotations(input)
	if err != nil {
		return 0, err
	}
	dial := dialStart
	var zeros int64
	for _, r := range rots {
		dial = mod(dial+r, dialSize)
		if dial == 0 {
			zeros++
		}
	}
	return zeros, nil
}

// zeroClicks returns how many single clicks of a rotation land on 0.
func zeroClicks(dial, r int) int {
	if r >= 0 {
		return (dial + r) / dialSize
	}
	n := -r
	if dial == 0 {
		return n / dialSize
	}
	if n < dial {
		return 0
	}
	return (n-dial)/dialSize + 1
}

// day1Part2 counts every click that passes or lands on 0.
func day1Part2(input string) (int64, error) {
	rots, err := parseRotations(input)
	if err != nil {
		return 0, err
	}
	dial := dialStart
	var zeros int64
	for _, r := range rots {
		zeros += int64(zeroClicks(dial, r))
		dial = mod(dial+r, dialSize)
	}
	return zeros, nil
}
