// Package puzzles defines the puzzle contract and the registry solvers add themselves to.
// Package puzzles 定义谜题接口以及求解器的注册表。
package puzzles

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/livp123/advent/pkg/errors"
	"github.com/livp123/advent/pkg/strs"
)

// ID identifies a puzzle by year and day.
type ID struct {
	Year int
	Day  int
}

func (id ID) String() string { return fmt.Sprintf("%d/%d", id.Year, id.Day) }

// ParseID parses "2024/5" into an ID.
// ParseID 将 "2024/5" 解析为 ID。
func ParseID(s string) (ID, error) {
	year, day, ok := strs.Pair(s, strs.Byte('/'))
	if !ok {
		return ID{}, errors.NewPuzzleError(s)
	}
	y, ok1 := strs.ParseNum[int](year)
	d, ok2 := strs.ParseNum[int](day)
	if !ok1 || !ok2 || d < 1 || d > 25 {
		return ID{}, errors.NewPuzzleError(s)
	}
	return ID{Year: y, Day: d}, nil
}

// Solver computes both answers of one puzzle from its raw input text.
// The input must stay alive and unmodified while a part is running.
type Solver interface {
	Part1(input string) (int64, error)
	Part2(input string) (int64, error)
}

// Puzzle binds a Solver to its identity.
type Puzzle struct {
	ID     ID
	Title  string
	Solver Solver
}

var (
	mu       sync.RWMutex
	registry = map[ID]Puzzle{}
)

// Register adds a puzzle; it panics on a duplicate ID since that is a wiring bug.
// Register 注册谜题；重复注册属于接线错误，会 panic。
func Register(year, day int, title string, s Solver) {
	mu.Lock()
	defer mu.Unlock()

	id := ID{Year: year, Day: day}
	if _, dup := registry[id]; dup {
		panic("puzzles: duplicate registration for " + id.String())
	}
	registry[id] = Puzzle{ID: id, Title: title, Solver: s}
}

// Get looks up a registered puzzle.
func Get(id ID) (Puzzle, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := registry[id]
	if !ok {
		return Puzzle{}, errors.NewPuzzleError(id.String())
	}
	return p, nil
}

// All returns every registered puzzle sorted by year then day.
func All() []Puzzle {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Puzzle, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ID.Year != out[j].ID.Year {
			return out[i].ID.Year < out[j].ID.Year
		}
		return out[i].ID.Day < out[j].ID.Day
	})
	return out
}

// Year returns the registered puzzles of one year.
func Year(year int) []Puzzle {
	var out []Puzzle
	for _, p := range All() {
		if p.ID.Year == year {
			out = append(out, p)
		}
	}
	return out
}

// InputPath returns the conventional location of a puzzle input: <dir>/<year>/<day>.txt.
func InputPath(dir string, id ID) string {
	return filepath.Join(dir, strconv.Itoa(id.Year), strconv.Itoa(id.Day)+".txt")
}

// LoadInput reads the whole input file of id into one buffer.
// LoadInput 将谜题输入文件整体读入内存。
func LoadInput(dir string, id ID) (string, error) {
	path := filepath.Clean(InputPath(dir, id))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewFileError(path, err)
	}
	return string(data), nil
}

// Funcs adapts two plain functions to a Solver.
type Funcs struct {
	One func(input string) (int64, error)
	Two func(input string) (int64, error)
}

func (f Funcs) Part1(input string) (int64, error) { return call(f.One, input) }

func (f Funcs) Part2(input string) (int64, error) { return call(f.Two, input) }

func call(fn func(string) (int64, error), input string) (int64, error) {
	if fn == nil {
		return 0, errors.ErrNotImplemented
	}
	return fn(input)
}
