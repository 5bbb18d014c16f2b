package y2024

import (
	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/pkg/strs"
)

func init() {
	puzzles.Register(2024, 2, "Red-Nosed Reports", puzzles.Funcs{One: day2Part1, Two: day2Part2})
}

func parseReports(input string) ([][]int64, error) {
	var reports [][]int64
	for line := range strs.Lines(input).All() {
		levels, err := strs.ParseAll[int64](strs.SplitWhitespace(line))
		if err != nil {
			return nil, err
		}
		reports = append(reports, levels)
	}
	return reports, nil
}

// isSafe reports whether levels move strictly in one direction by steps of 1 to 3.
func isSafe(levels []int64) bool {
	if len(levels) < 2 {
		return true
	}
	increasing := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if !increasing {
			d = -d
		}
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

// isSafeDampened reports whether removing at most one level makes the report safe.
func isSafeDampened(levels []int64) bool {
	if isSafe(levels) {
		return true
	}
	buf := make([]int64, 0, len(levels)-1)
	for skip := range levels {
		buf = buf[:0]
		buf = append(buf, levels[:skip]...)
		buf = append(buf, levels[skip+1:]...)
		if isSafe(buf) {
			return true
		}
	}
	return false
}

func countReports(input string, safe func([]int64) bool) (int64, error) {
	reports, err := parseReports(input)
	if err != nil {
		return 0, err
	}
	var n int64
	for _, r := range reports {
		if safe(r) {
			n++
		}
	}
	return n, nil
}

func day2Part1(input string) (int64, error) { return countReports(input, isSafe) }

func day2Part2(input string) (int64, error) { return countReports(input, isSafeDampened) }
