package y2024

import (
	"github.com/livp123/advent/internal/grid"
	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/pkg/strs"
)

func init() {
	puzzles.Register(2024, 4, "Ceres Search", puzzles.Funcs{One: day4Part1, Two: day4Part2})
}

const keyword = strs.Literal("XMAS")

// countBothWays counts the keyword reading text forwards and backwards.
func countBothWays(text string) int64 {
	return int64(strs.CountMatches(text, keyword) + strs.CountMatches(strs.Reverse(text), keyword))
}

func day4Part1(input string) (int64, error) {
	g, err := grid.New(input)
	if err != nil {
		return 0, err
	}
	var lines []string
	for y := 0; y < g.Height; y++ {
		lines = append(lines, g.Row(y))
	}
	for x := 0; x < g.Width; x++ {
		lines = append(lines, g.Col(x))
	}
	lines = append(lines, g.Diagonals(grid.Point{X: 1, Y: 1})...)
	lines = append(lines, g.Diagonals(grid.Point{X: -1, Y: 1})...)

	var total int64
	for _, l := range lines {
		total += countBothWays(l)
	}
	return total, nil
}

func isMS(a, b byte) bool {
	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}

func day4Part2(input string) (int64, error) {
	g, err := grid.New(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for p, c := range g.Cells() {
		if c != 'A' {
			continue
		}
		nw := g.At(p.Add(grid.Point{X: -1, Y: -1}))
		se := g.At(p.Add(grid.Point{X: 1, Y: 1}))
		ne := g.At(p.Add(grid.Point{X: 1, Y: -1}))
		sw := g.At(p.Add(grid.Point{X: -1, Y: 1}))
		if isMS(nw, se) && isMS(ne, sw) {
			total++
		}
	}
	return total, nil
}
