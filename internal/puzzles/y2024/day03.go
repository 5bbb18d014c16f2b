package y2024

import (
	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/pkg/strs"
)

func init() {
	puzzles.Register(2024, 3, "Mull It Over", puzzles.Funcs{
		One: func(input string) (int64, error) { return scanMemory(input, false), nil },
		Two: func(input string) (int64, error) { return scanMemory(input, true), nil },
	})
}

var (
	matchMulOpen = strs.Literal("mul(").Bake()
	matchComma   = strs.Byte(',').Bake()
	matchClose   = strs.Byte(')').Bake()
	matchDo      = strs.Literal("do()").Bake()
	matchDont    = strs.Literal("don't()").Bake()
)

// parseMul recognizes "mul(a,b)" at the start of rest and returns the product
// and the number of bytes consumed.
func parseMul(rest string) (product int64, n int, ok bool) {
	k := matchMulOpen(rest)
	if k == 0 {
		return 0, 0, false
	}
	a, tail, ok := strs.ParseNumPrefix[uint32](rest[k:])
	if !ok || matchComma(tail) == 0 {
		return 0, 0, false
	}
	b, tail, ok := strs.ParseNumPrefix[uint32](tail[1:])
	if !ok || matchClose(tail) == 0 {
		return 0, 0, false
	}
	return int64(a) * int64(b), len(rest) - len(tail) + 1, true
}

// scanMemory sums every well-formed multiplication. With conditionals set,
// "don't()" disables and "do()" re-enables the following instructions.
func scanMemory(input string, conditionals bool) int64 {
	var total int64
	enabled := true
	for i := 0; i < len(input); {
		rest := input[i:]
		if conditionals {
			if n := matchDont(rest); n > 0 {
				enabled = false
				i += n
				continue
			}
			if n := matchDo(rest); n > 0 {
				enabled = true
				i += n
				continue
			}
		}
		if product, n, ok := parseMul(rest); ok {
			if enabled {
				total += product
			}
			i += n
			continue
		}
		i++
	}
	return total
}
