package y2024

import (
	"github.com/livp123/advent/internal/grid"
	"github.com/livp123/advent/internal/puzzles"
)

func init() {
	puzzles.Register(2024, 12, "Garden Groups", puzzles.Funcs{
		One: func(input string) (int64, error) { return fencePrice(input, false) },
		Two: func(input string) (int64, error) { return fencePrice(input, true) },
	})
}

// region is one connected patch of equal plants.
type region struct {
	area      int
	perimeter int
	corners   int
}

// corners counts the convex and concave corners of the fence around p.
// A region has as many straight sides as corners.
func corners(g *grid.Grid, p grid.Point) int {
	plant := g.At(p)
	same := func(q grid.Point) bool { return g.At(q) == plant }

	n := 0
	for _, d := range grid.Dirs4 {
		e := d.Rot90()
		a, b := same(p.Add(d)), same(p.Add(e))
		switch {
		case !a && !b:
			n++
		case a && b && !same(p.Add(d).Add(e)):
			n++
		}
	}
	return n
}

// flood measures the region containing start, marking its cells in seen.
func flood(g *grid.Grid, start grid.Point, seen map[grid.Point]bool) region {
	plant := g.At(start)
	var r region
	stack := []grid.Point{start}
	seen[start] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		r.area++
		r.corners += corners(g, p)
		for _, d := range grid.Dirs4 {
			n := p.Add(d)
			if g.At(n) != plant {
				r.perimeter++
				continue
			}
			if !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return r
}

// fencePrice sums area times perimeter, or area times side count with bulk set.
func fencePrice(input string, bulk bool) (int64, error) {
	g, err := grid.New(input)
	if err != nil {
		return 0, err
	}
	seen := make(map[grid.Point]bool, g.Width*g.Height)
	var total int64
	for p := range g.Cells() {
		if seen[p] {
			continue
		}
		r := flood(g, p, seen)
		if bulk {
			total += int64(r.area * r.corners)
		} else {
			total += int64(r.area * r.perimeter)
		}
	}
	return total, nil
}
