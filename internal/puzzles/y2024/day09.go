package y2024

import (
	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/pkg/errors"
	"github.com/livp123/advent/pkg/strs"
)

func init() {
	puzzles.Register(2024, 9, "Disk Fragmenter", puzzles.Funcs{One: day9Part1, Two: day9Part2})
}

// extent is a contiguous run of blocks; id is -1 for free space.
type extent struct {
	id  int
	pos int
	len int
}

func parseDiskMap(input string) (files, free []extent, err error) {
	pos := 0
	for i, c := range []byte(strs.Trim(input)) {
		if c < '0' || c > '9' {
			return nil, nil, errors.NewInputError("disk map digit", string(c))
		}
		n := int(c - '0')
		if i%2 == 0 {
			files = append(files, extent{id: i / 2, pos: pos, len: n})
		} else {
			free = append(free, extent{id: -1, pos: pos, len: n})
		}
		pos += n
	}
	return files, free, nil
}

func checksum(files []extent) int64 {
	var sum int64
	for _, f := range files {
		for p := f.pos; p < f.pos+f.len; p++ {
			sum += int64(p * f.id)
		}
	}
	return sum
}

// day9Part1 moves single blocks from the end of the disk into the leftmost gap.
func day9Part1(input string) (int64, error) {
	files, _, err := parseDiskMap(input)
	if err != nil {
		return 0, err
	}
	var blocks []int
	for i, f := range files {
		for j := 0; j < f.len; j++ {
			blocks = append(blocks, f.id)
		}
		if i+1 < len(files) {
			for j := f.pos + f.len; j < files[i+1].pos; j++ {
				blocks = append(blocks, -1)
			}
		}
	}

	lo, hi := 0, len(blocks)-1
	for {
		for lo < hi && blocks[lo] != -1 {
			lo++
		}
		for lo < hi && blocks[hi] == -1 {
			hi--
		}
		if lo >= hi {
			break
		}
		blocks[lo], blocks[hi] = blocks[hi], -1
	}

	var sum int64
	for p, id := range blocks {
		if id >= 0 {
			sum += int64(p * id)
		}
	}
	return sum, nil
}

// day9Part2 moves whole files, highest id first, into the leftmost gap that fits.
func day9Part2(input string) (int64, error) {
	files, free, err := parseDiskMap(input)
	if err != nil {
		return 0, err
	}
	for i := len(files) - 1; i >= 0; i-- {
		f := &files[i]
		for j := range free {
			gap := &free[j]
			if gap.pos >= f.pos {
				break
			}
			if gap.len >= f.len {
				f.pos = gap.pos
				gap.pos += f.len
				gap.len -= f.len
				break
			}
		}
	}
	return checksum(files), nil
}
