package y2024

import (
	"github.com/livp123/advent/internal/grid"
	"github.com/livp123/advent/internal/puzzles"
)

func init() {
	puzzles.Register(2024, 8, "Resonant Collinearity", puzzles.Funcs{
		One: func(input string) (int64, error) { return countAntinodes(input, false) },
		Two: func(input string) (int64, error) { return countAntinodes(input, true) },
	})
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// countAntinodes counts distinct cells that are antinodes of some antenna pair.
// Without harmonics an antinode sits beyond each antenna at the pair's distance;
// with harmonics every grid point on the line through the pair counts.
func countAntinodes(input string, harmonics bool) (int64, error) {
	g, err := grid.New(input)
	if err != nil {
		return 0, err
	}
	antennas := make(map[byte][]grid.Point)
	for p, c := range g.Cells() {
		if c != '.' {
			antennas[c] = append(antennas[c], p)
		}
	}

	nodes := make(map[grid.Point]struct{})
	for _, ps := range antennas {
		for i, a := range ps {
			for _, b := range ps[i+1:] {
				d := b.Sub(a)
				if !harmonics {
					for _, n := range []grid.Point{a.Sub(d), b.Add(d)} {
						if g.In(n) {
							nodes[n] = struct{}{}
						}
					}
					continue
				}
				k := gcd(d.X, d.Y)
				step := grid.Point{X: d.X / k, Y: d.Y / k}
				for n := a; g.In(n); n = n.Add(step) {
					nodes[n] = struct{}{}
				}
				for n := a.Sub(step); g.In(n); n = n.Sub(step) {
					nodes[n] = struct{}{}
				}
			}
		}
	}
	return int64(len(nodes)), nil
}
