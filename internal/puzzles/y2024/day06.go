package y2024

import (
	"github.com/livp123/advent/internal/grid"
	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/pkg/errors"
)

func init() {
	puzzles.Register(2024, 6, "Guard Gallivant", puzzles.Funcs{One: day6Part1, Two: day6Part2})
}

type patrol struct {
	g     *grid.Grid
	start grid.Point
}

func parsePatrol(input string) (*patrol, error) {
	g, err := grid.New(input)
	if err != nil {
		return nil, err
	}
	start, ok := g.Find('^')
	if !ok {
		return nil, errors.NewInputError("no guard on the map", input)
	}
	return &patrol{g: g, start: start}, nil
}

// walk moves the guard until it leaves the map or repeats a state. extra is an
// additional obstruction; pass a point outside the grid for none. It returns
// the visited cells in order of first visit and whether the guard got stuck in a loop.
func (p *patrol) walk(extra grid.Point) (path []grid.Point, loops bool) {
	w := p.g.Width
	// seen holds one bit per direction for each cell.
	seen := make([]uint8, w*p.g.Height)
	pos, dir := p.start, 0

	for {
		idx := pos.Y*w + pos.X
		if seen[idx]&(1<<dir) != 0 {
			return path, true
		}
		if seen[idx] == 0 {
			path = append(path, pos)
		}
		seen[idx] |= 1 << dir

		next := pos.Add(grid.Dirs4[dir])
		if !p.g.In(next) {
			return path, false
		}
		if p.g.At(next) == '#' || next == extra {
			dir = (dir + 1) % 4
			continue
		}
		pos = next
	}
}

var nowhere = grid.Point{X: -1, Y: -1}

func day6Part1(input string) (int64, error) {
	p, err := parsePatrol(input)
	if err != nil {
		return 0, err
	}
	path, _ := p.walk(nowhere)
	return int64(len(path)), nil
}

// day6Part2 counts the cells where one new obstruction traps the guard. Only
// cells on the original path can change the route.
func day6Part2(input string) (int64, error) {
	p, err := parsePatrol(input)
	if err != nil {
		return 0, err
	}
	path, _ := p.walk(nowhere)

	var total int64
	for _, cell := range path {
		if cell == p.start {
			continue
		}
		if _, loops := p.walk(cell); loops {
			total++
		}
	}
	return total, nil
}
