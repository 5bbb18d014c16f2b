package y2024

import (
	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/pkg/errors"
	"github.com/livp123/advent/pkg/strs"
)

func init() {
	puzzles.Register(2024, 7, "Bridge Repair", puzzles.Funcs{
		One: func(input string) (int64, error) { return calibrate(input, false) },
		Two: func(input string) (int64, error) { return calibrate(input, true) },
	})
}

type equation struct {
	result   int64
	operands []int64
}

// equationSep separates "190: 10 19" into its numbers.
var equationSep = strs.MatchOr(strs.Literal(": "), strs.Byte(' '))

func parseEquations(input string) ([]equation, error) {
	var eqs []equation
	for line := range strs.Split(strs.Trim(input), strs.Byte('\n')).All() {
		nums, err := strs.ParseAll[int64](strs.Split(line, equationSep))
		if err != nil {
			return nil, err
		}
		if len(nums) < 2 {
			return nil, errors.NewInputError("equation without operands", line)
		}
		eqs = append(eqs, equation{result: nums[0], operands: nums[1:]})
	}
	return eqs, nil
}

// solvable works backwards from the target: the last operand must have been
// added, multiplied or (with concat) appended to the value of the prefix.
func solvable(target int64, operands []int64, concat bool) bool {
	n := len(operands)
	last := operands[n-1]
	if n == 1 {
		return target == last
	}
	prefix := operands[:n-1]

	if target >= last && solvable(target-last, prefix, concat) {
		return true
	}
	if last == 0 {
		if target == 0 {
			return true
		}
	} else if target%last == 0 && solvable(target/last, prefix, concat) {
		return true
	}
	if concat {
		p := pow10(last)
		if target%p == last && solvable(target/p, prefix, concat) {
			return true
		}
	}
	return false
}

// pow10 returns the smallest power of ten greater than v (10 for v == 0).
func pow10(v int64) int64 {
	p := int64(10)
	for v >= p {
		p *= 10
	}
	return p
}

func calibrate(input string, concat bool) (int64, error) {
	eqs, err := parseEquations(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, eq := range eqs {
		if solvable(eq.result, eq.operands, concat) {
			total += eq.result
		}
	}
	return total, nil
}
