package y2024

import (
	"testing"

	"github.com/livp123/advent/internal/grid"
	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	exampleDay1 = `3   4
4   3
2   5
1   3
3   9
3   3
`
	exampleDay2 = `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
`
	exampleDay3Part1 = `xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))`
	exampleDay3Part2 = `xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))`
	exampleDay4      = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
`
	exampleDay5 = `47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
`
	exampleDay6 = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`
	exampleDay7 = `190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20
`
	exampleDay8 = `............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
`
	exampleDay9  = "2333133121414131402\n"
	exampleDay10 = `89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
`
	exampleDay11 = "125 17\n"
	exampleDay12 = `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
`
	exampleDay16 = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`
	exampleDay16Small = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`
)

// TestExamples runs every registered 2024 solver on the published example input
// TestExamples 使用公开示例输入运行 2024 年的全部求解器
func TestExamples(t *testing.T) {
	tests := []struct {
		day   int
		input string
		part  int
		want  int64
	}{
		{1, exampleDay1, 1, 11},
		{1, exampleDay1, 2, 31},
		{2, exampleDay2, 1, 2},
		{2, exampleDay2, 2, 4},
		{3, exampleDay3Part1, 1, 161},
		{3, exampleDay3Part2, 2, 48},
		{4, exampleDay4, 1, 18},
		{4, exampleDay4, 2, 9},
		{5, exampleDay5, 1, 143},
		{5, exampleDay5, 2, 123},
		{6, exampleDay6, 1, 41},
		{6, exampleDay6, 2, 6},
		{7, exampleDay7, 1, 3749},
		{7, exampleDay7, 2, 11387},
		{8, exampleDay8, 1, 14},
		{8, exampleDay8, 2, 34},
		{9, exampleDay9, 1, 1928},
		{9, exampleDay9, 2, 2858},
		{10, exampleDay10, 1, 36},
		{10, exampleDay10, 2, 81},
		{11, exampleDay11, 1, 55312},
		{12, exampleDay12, 1, 1930},
		{12, exampleDay12, 2, 1206},
		{12, "AAAA\nBBCD\nBBCC\nEEEC\n", 1, 140},
		{12, "AAAA\nBBCD\nBBCC\nEEEC\n", 2, 80},
		{16, exampleDay16Small, 1, 7036},
		{16, exampleDay16Small, 2, 45},
		{16, exampleDay16, 1, 11048},
		{16, exampleDay16, 2, 64},
	}

	for _, tt := range tests {
		p, err := puzzles.Get(puzzles.ID{Year: 2024, Day: tt.day})
		require.NoError(t, err)
		t.Run(p.Title, func(t *testing.T) {
			solve := p.Solver.Part1
			if tt.part == 2 {
				solve = p.Solver.Part2
			}
			got, err := solve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "day %d part %d", tt.day, tt.part)
		})
	}
}

func TestRegisteredDays(t *testing.T) {
	var days []int
	for _, p := range puzzles.Year(2024) {
		days = append(days, p.ID.Day)
		assert.NotEmpty(t, p.Title)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 16}, days)
}

func TestCorners(t *testing.T) {
	tests := []struct {
		name  string
		input string
		at    grid.Point
		want  int
	}{
		{"single cell", "A\n", grid.Point{X: 0, Y: 0}, 4},
		{"plus centre", "BAB\nAAA\nBAB\n", grid.Point{X: 1, Y: 1}, 4},
		{"bar end", "AA\n", grid.Point{X: 0, Y: 0}, 2},
		{"inner bend", "AA\nAB\n", grid.Point{X: 0, Y: 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := grid.New(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, corners(g, tt.at))
		})
	}
}

func TestMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		solve func(string) (int64, error)
		input string
	}{
		{"day1 odd column", day1Part1, "1 2\n3\n"},
		{"day1 not a number", day1Part1, "1 x\n"},
		{"day2 not a number", day2Part1, "1 2 z\n"},
		{"day4 ragged", day4Part1, "XMAS\nXM\n"},
		{"day5 no blank line", day5Part1, "47|53\n75,47\n"},
		{"day5 bad rule", day5Part1, "47-53\n\n75,47\n"},
		{"day6 no guard", day6Part1, "...\n.#.\n"},
		{"day9 not a digit", day9Part1, "12a4\n"},
		{"day12 ragged", func(s string) (int64, error) { return fencePrice(s, false) }, "AB\nA\n"},
		{"day16 no start", func(s string) (int64, error) { _, err := solveMaze(s); return 0, err }, "#E#\n"},
		{"day16 walled in", func(s string) (int64, error) { _, err := solveMaze(s); return 0, err }, "S#E\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.solve(tt.input)
			require.Error(t, err)
			assert.True(t,
				errors.Is(err, errors.ErrMalformedInput) || errors.Is(err, errors.ErrInvalidNumber),
				"unexpected error: %v", err)
		})
	}

	_, err := calibrate("190:\n", false)
	assert.Error(t, err)
}

func TestIsSafe(t *testing.T) {
	assert.True(t, isSafe([]int64{1}))
	assert.True(t, isSafe([]int64{1, 4, 5}))
	assert.False(t, isSafe([]int64{1, 5}))
	assert.False(t, isSafe([]int64{3, 3}))
	assert.True(t, isSafeDampened([]int64{1, 3, 2, 4, 5}))
	assert.False(t, isSafeDampened([]int64{9, 7, 6, 2, 1}))
}

func TestParseMul(t *testing.T) {
	v, n, ok := parseMul("mul(11,8)rest")
	require.True(t, ok)
	assert.Equal(t, int64(88), v)
	assert.Equal(t, len("mul(11,8)"), n)

	for _, bad := range []string{"mul(4*", "mul(6,9!", "mul ( 2 , 4 )", "mul(-2,4)", "mul(2,4]"} {
		_, _, ok := parseMul(bad)
		assert.False(t, ok, bad)
	}
}

func TestSolvable(t *testing.T) {
	assert.True(t, solvable(190, []int64{10, 19}, false))
	assert.False(t, solvable(83, []int64{17, 5}, false))
	assert.True(t, solvable(156, []int64{15, 6}, true))
	assert.True(t, solvable(0, []int64{5, 0}, false))
	assert.Equal(t, int64(10), pow10(0))
	assert.Equal(t, int64(100), pow10(10))
	assert.Equal(t, int64(1000), pow10(999))
}
