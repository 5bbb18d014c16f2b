package y2024

import (
	"slices"

	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/pkg/errors"
	"github.com/livp123/advent/pkg/strs"
)

func init() {
	puzzles.Register(2024, 5, "Print Queue", puzzles.Funcs{One: day5Part1, Two: day5Part2})
}

type pageRule [2]int

type printQueue struct {
	rules   map[pageRule]bool
	updates [][]int
}

func parsePrintQueue(input string) (*printQueue, error) {
	rulesText, updatesText, ok := strs.Pair(strs.Trim(input), strs.Literal("\n\n"))
	if !ok {
		return nil, errors.NewInputError("expected rules and updates separated by a blank line", input)
	}

	q := &printQueue{rules: make(map[pageRule]bool)}
	for line := range strs.Lines(rulesText).All() {
		a, b, ok := strs.Pair(line, strs.Byte('|'))
		if !ok {
			return nil, errors.NewInputError("ordering rule", line)
		}
		before, ok1 := strs.ParseNum[int](a)
		after, ok2 := strs.ParseNum[int](b)
		if !ok1 || !ok2 {
			return nil, errors.NewInputError("ordering rule", line)
		}
		q.rules[pageRule{before, after}] = true
	}

	for line := range strs.SplitWhitespace(updatesText).All() {
		pages, err := strs.ParseAll[int](strs.Split(line, strs.Byte(',')))
		if err != nil {
			return nil, err
		}
		q.updates = append(q.updates, pages)
	}
	return q, nil
}

func (q *printQueue) compare(a, b int) int {
	switch {
	case q.rules[pageRule{a, b}]:
		return -1
	case q.rules[pageRule{b, a}]:
		return 1
	}
	return 0
}

func middlePage(pages []int) int64 { return int64(pages[(len(pages)-1)/2]) }

func day5Part1(input string) (int64, error) {
	q, err := parsePrintQueue(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, u := range q.updates {
		if slices.IsSortedFunc(u, q.compare) {
			total += middlePage(u)
		}
	}
	return total, nil
}

func day5Part2(input string) (int64, error) {
	q, err := parsePrintQueue(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, u := range q.updates {
		if slices.IsSortedFunc(u, q.compare) {
			continue
		}
		fixed := slices.Clone(u)
		slices.SortFunc(fixed, q.compare)
		total += middlePage(fixed)
	}
	return total, nil
}
