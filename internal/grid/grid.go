// Package grid provides a read-only 2D view over a newline-separated text block.
// Package grid 提供基于换行分隔文本块的只读二维视图。
package grid

import (
	"iter"

	"github.com/livp123/advent/pkg/errors"
	"github.com/livp123/advent/pkg/strs"
)

// Point is a cell coordinate; X is the column and Y the row.
type Point struct {
	X int
	Y int
}

var (
	Up    = Point{0, -1}
	Right = Point{1, 0}
	Down  = Point{0, 1}
	Left  = Point{-1, 0}

	// Dirs4 lists the orthogonal directions clockwise starting at Up.
	Dirs4 = [4]Point{Up, Right, Down, Left}
)

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Scale(k int) Point { return Point{p.X * k, p.Y * k} }

// Rot90 rotates p a quarter turn clockwise in screen coordinates.
func (p Point) Rot90() Point { return Point{-p.Y, p.X} }

// Grid views text as rows of equal width. Rows are separated by '\n'; the
// trailing newline is optional. The text is not copied.
type Grid struct {
	text   string
	Width  int
	Height int
	stride int
}

// New validates text as a rectangular block and returns a view over it.
// New 校验文本为矩形块并返回其视图。
func New(text string) (*Grid, error) {
	lines := strs.Lines(text)
	width := len(lines.Token())
	if width == 0 {
		return nil, errors.NewInputError("empty grid", text)
	}
	height := 0
	for row := range lines.All() {
		if len(row) != width {
			return nil, errors.NewInputError("ragged grid row", row)
		}
		height++
	}
	return &Grid{text: text, Width: width, Height: height, stride: width + 1}, nil
}

// In reports whether p lies inside the grid.
func (g *Grid) In(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// At returns the byte at p, or 0 outside the grid.
func (g *Grid) At(p Point) byte {
	if !g.In(p) {
		return 0
	}
	return g.text[p.Y*g.stride+p.X]
}

// Row returns row y as a view into the source text.
func (g *Grid) Row(y int) string {
	start := y * g.stride
	return g.text[start : start+g.Width]
}

// Col returns column x top to bottom. It allocates.
func (g *Grid) Col(x int) string {
	b := make([]byte, g.Height)
	for y := range b {
		b[y] = g.text[y*g.stride+x]
	}
	return string(b)
}

// Diagonals returns every diagonal running in direction step (Point{1,1} or
// Point{-1,1}), each read from its top end. They allocate.
func (g *Grid) Diagonals(step Point) []string {
	var out []string
	var starts []Point
	for x := 0; x < g.Width; x++ {
		starts = append(starts, Point{x, 0})
	}
	for y := 1; y < g.Height; y++ {
		if step.X > 0 {
			starts = append(starts, Point{0, y})
		} else {
			starts = append(starts, Point{g.Width - 1, y})
		}
	}
	for _, p := range starts {
		var b []byte
		for q := p; g.In(q); q = q.Add(step) {
			b = append(b, g.At(q))
		}
		out = append(out, string(b))
	}
	return out
}

// Find returns the first cell holding c in row-major order.
func (g *Grid) Find(c byte) (Point, bool) {
	for p, v := range g.Cells() {
		if v == c {
			return p, true
		}
	}
	return Point{}, false
}

// Cells yields every cell in row-major order.
func (g *Grid) Cells() iter.Seq2[Point, byte] {
	return func(yield func(Point, byte) bool) {
		for y := 0; y < g.Height; y++ {
			row := g.Row(y)
			for x := 0; x < g.Width; x++ {
				if !yield(Point{x, y}, row[x]) {
					return
				}
			}
		}
	}
}
