package y2024

import (
	"strconv"

	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/pkg/strs"
)

func init() {
	puzzles.Register(2024, 11, "Plutonian Pebbles", puzzles.Funcs{
		One: func(input string) (int64, error) { return blink(input, 25) },
		Two: func(input string) (int64, error) { return blink(input, 75) },
	})
}

type stoneKey struct {
	stone  uint64
	blinks int
}

type stoneCounter map[stoneKey]int64

// count returns how many stones one stone becomes after the given blinks.
func (memo stoneCounter) count(stone uint64, blinks int) int64 {
	if blinks == 0 {
		return 1
	}
	key := stoneKey{stone, blinks}
	if v, ok := memo[key]; ok {
		return v
	}

	var n int64
	digits := strconv.FormatUint(stone, 10)
	switch {
	case stone == 0:
		n = memo.count(1, blinks-1)
	case len(digits)%2 == 0:
		half := len(digits) / 2
		n = memo.count(strs.MustParseNum[uint64](digits[:half]), blinks-1) +
			memo.count(strs.MustParseNum[uint64](digits[half:]), blinks-1)
	default:
		n = memo.count(stone*2024, blinks-1)
	}
	memo[key] = n
	return n
}

func blink(input string, times int) (int64, error) {
	stones, err := strs.ParseAll[uint64](strs.SplitWhitespace(input))
	if err != nil {
		return 0, err
	}
	memo := stoneCounter{}
	var total int64
	for _, s := range stones {
		total += memo.count(s, times)
	}
	return total, nil
}
