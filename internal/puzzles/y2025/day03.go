package y2025

import (
	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/pkg/errors"
	"github.com/livp123/advent/pkg/strs"
)

func init() {
	puzzles.Register(2025, 3, "Lobby", puzzles.Funcs{
		One: func(input string) (int64, error) { return totalJoltage(input, 2) },
		Two: func(input string) (int64, error) { return totalJoltage(input, 12) },
	})
}

// maxJoltage picks n batteries from bank, keeping their order, to form the
// largest n-digit number. Each digit is the largest that still leaves room
// for the remaining ones; ties take the leftmost.
func maxJoltage(bank string, n int) (int64, error) {
	if len(bank) < n {
		return 0, errors.NewInputError("battery bank too short", bank)
	}
	for i := 0; i < len(bank); i++ {
		if bank[i] < '0' || bank[i] > '9' {
			return 0, errors.NewInputError("battery rating", bank)
		}
	}
	var v int64
	start := 0
	for left := n; left > 0; left-- {
		best := start
		for i := start; i <= len(bank)-left; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		v = v*10 + int64(bank[best]-'0')
		start = best + 1
	}
	return v, nil
}

func totalJoltage(input string, n int) (int64, error) {
	var total int64
	for bank := range strs.Lines(input).All() {
		v, err := maxJoltage(bank, n)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}
