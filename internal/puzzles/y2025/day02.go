package y2025

import (
	"strconv"

	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/pkg/errors"
	"github.com/livp123/advent/pkg/strs"
)

func init() {
	puzzles.Register(2025, 2, "Gift Shop", puzzles.Funcs{
		One: func(input string) (int64, error) { return sumInvalidIDs(input, repeatedTwice) },
		Two: func(input string) (int64, error) { return sumInvalidIDs(input, repeatedAny) },
	})
}

type idRange struct {
	from, to int64
}

// parseRanges reads "11-22,95-115,..." on a single line.
func parseRanges(input string) ([]idRange, error) {
	var out []idRange
	for field := range strs.Split(strs.Trim(input), strs.Byte(',')).All() {
		lo, hi, ok := strs.Pair(strs.Trim(field), strs.Byte('-'))
		if !ok {
			return nil, errors.NewInputError("id range", field)
		}
		from, ok1 := strs.ParseNum[int64](lo)
		to, ok2 := strs.ParseNum[int64](hi)
		if !ok1 || !ok2 || from < 0 || to < from {
			return nil, errors.NewInputError("id range bounds", field)
		}
		out = append(out, idRange{from, to})
	}
	return out, nil
}

// repeatsEvery reports whether id consists of its first k bytes repeated.
// Non-overlapping matches of the prefix tile id exactly when there are len/k of them.
func repeatsEvery(id string, k int) bool {
	return len(id)%k == 0 && strs.CountMatches(id, strs.Literal(id[:k])) == len(id)/k
}

// repeatedTwice: a digit sequence written exactly twice, like 6464.
func repeatedTwice(id string) bool {
	return len(id)%2 == 0 && repeatsEvery(id, len(id)/2)
}

// repeatedAny: a digit sequence written at least twice, like 121212.
func repeatedAny(id string) bool {
	for k := 1; k <= len(id)/2; k++ {
		if repeatsEvery(id, k) {
			return true
		}
	}
	return false
}

func sumInvalidIDs(input string, invalid func(id string) bool) (int64, error) {
	ranges, err := parseRanges(input)
	if err != nil {
		return 0, err
	}
	var total int64
	buf := make([]byte, 0, 20)
	for _, r := range ranges {
		for id := r.from; id <= r.to; id++ {
			buf = strconv.AppendInt(buf[:0], id, 10)
			if invalid(string(buf)) {
				total += id
			}
		}
	}
	return total, nil
}
