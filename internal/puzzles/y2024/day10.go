package y2024

import (
	"github.com/livp123/advent/internal/grid"
	"github.com/livp123/advent/internal/puzzles"
)

func init() {
	puzzles.Register(2024, 10, "Hoof It", puzzles.Funcs{
		One: func(input string) (int64, error) { return scoreTrails(input, false) },
		Two: func(input string) (int64, error) { return scoreTrails(input, true) },
	})
}

func height(g *grid.Grid, p grid.Point) int {
	c := g.At(p)
	if c < '0' || c > '9' {
		return -1
	}
	return int(c - '0')
}

// climb follows every uphill step of exactly one from p and reports each
// summit reached, once per distinct trail.
func climb(g *grid.Grid, p grid.Point, visit func(summit grid.Point)) {
	h := height(g, p)
	if h == 9 {
		visit(p)
		return
	}
	for _, d := range grid.Dirs4 {
		n := p.Add(d)
		if height(g, n) == h+1 {
			climb(g, n, visit)
		}
	}
}

// scoreTrails sums, over all trailheads, the number of reachable summits or,
// with rating set, the number of distinct trails.
func scoreTrails(input string, rating bool) (int64, error) {
	g, err := grid.New(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for p, c := range g.Cells() {
		if c != '0' {
			continue
		}
		summits := make(map[grid.Point]struct{})
		climb(g, p, func(s grid.Point) {
			if rating {
				total++
				return
			}
			summits[s] = struct{}{}
		})
		total += int64(len(summits))
	}
	return total, nil
}
