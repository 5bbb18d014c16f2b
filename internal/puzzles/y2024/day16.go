package y2024

import (
	"container/heap"
	"math"

	"github.com/livp123/advent/internal/grid"
	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/pkg/errors"
)

func init() {
	puzzles.Register(2024, 16, "Reindeer Maze", puzzles.Funcs{
		One: func(input string) (int64, error) {
			m, err := solveMaze(input)
			if err != nil {
				return 0, err
			}
			return int64(m.best), nil
		},
		Two: func(input string) (int64, error) {
			m, err := solveMaze(input)
			if err != nil {
				return 0, err
			}
			return int64(m.bestSeats()), nil
		},
	})
}

const (
	stepCost = 1
	turnCost = 1000
)

// reindeer is a search state: a cell and an index into grid.Dirs4.
type reindeer struct {
	at  grid.Point
	dir int
}

type queued struct {
	state reindeer
	cost  int
}

// costQueue is a min-heap of states ordered by cost.
type costQueue []queued

func (q costQueue) Len() int           { return len(q) }
func (q costQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q costQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *costQueue) Push(x any)        { *q = append(*q, x.(queued)) }
func (q *costQueue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}

type maze struct {
	g     *grid.Grid
	cost  map[reindeer]int
	best  int
	exits []reindeer
}

func (m *maze) open(p grid.Point) bool {
	c := m.g.At(p)
	return c != 0 && c != '#'
}

// moves lists the states reachable from s with their edge cost.
func (m *maze) moves(s reindeer, yield func(reindeer, int)) {
	if next := s.at.Add(grid.Dirs4[s.dir]); m.open(next) {
		yield(reindeer{next, s.dir}, stepCost)
	}
	yield(reindeer{s.at, (s.dir + 1) % 4}, turnCost)
	yield(reindeer{s.at, (s.dir + 3) % 4}, turnCost)
}

// solveMaze runs Dijkstra from S facing east until every cheapest way into E is known.
func solveMaze(input string) (*maze, error) {
	g, err := grid.New(input)
	if err != nil {
		return nil, err
	}
	start, ok := g.Find('S')
	if !ok {
		return nil, errors.NewInputError("no start tile", input)
	}
	end, ok := g.Find('E')
	if !ok {
		return nil, errors.NewInputError("no end tile", input)
	}

	m := &maze{g: g, cost: make(map[reindeer]int), best: math.MaxInt}
	first := reindeer{start, 1} // east
	m.cost[first] = 0
	q := &costQueue{{first, 0}}
	for q.Len() > 0 {
		cur := heap.Pop(q).(queued)
		if cur.cost > m.cost[cur.state] || cur.cost > m.best {
			continue
		}
		if cur.state.at == end {
			m.best = cur.cost
			m.exits = append(m.exits, cur.state)
			continue
		}
		m.moves(cur.state, func(next reindeer, step int) {
			c := cur.cost + step
			if old, seen := m.cost[next]; !seen || c < old {
				m.cost[next] = c
				heap.Push(q, queued{next, c})
			}
		})
	}
	if len(m.exits) == 0 {
		return nil, errors.NewInputError("end tile unreachable", input)
	}
	return m, nil
}

// bestSeats counts the tiles on at least one cheapest path, walking the
// cost table backwards from the exits.
func (m *maze) bestSeats() int {
	onPath := make(map[reindeer]bool)
	stack := append([]reindeer(nil), m.exits...)
	for _, s := range stack {
		onPath[s] = true
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var prev [3]struct {
			state reindeer
			step  int
		}
		prev[0].state, prev[0].step = reindeer{s.at.Sub(grid.Dirs4[s.dir]), s.dir}, stepCost
		prev[1].state, prev[1].step = reindeer{s.at, (s.dir + 1) % 4}, turnCost
		prev[2].state, prev[2].step = reindeer{s.at, (s.dir + 3) % 4}, turnCost
		for _, p := range prev {
			c, ok := m.cost[p.state]
			if !ok || onPath[p.state] || c+p.step != m.cost[s] {
				continue
			}
			onPath[p.state] = true
			stack = append(stack, p.state)
		}
	}

	tiles := make(map[grid.Point]struct{})
	for s := range onPath {
		tiles[s.at] = struct{}{}
	}
	return len(tiles)
}
