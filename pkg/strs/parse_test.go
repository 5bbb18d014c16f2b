package strs

import (
	"testing"

	"github.com/livp123/advent/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNum(t *testing.T) {
	v, ok := ParseNum[int]("42")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	n, ok := ParseNum[int64]("-7")
	assert.True(t, ok)
	assert.Equal(t, int64(-7), n)

	_, ok = ParseNum[uint64]("-7")
	assert.False(t, ok, "unsigned rejects a sign")

	_, ok = ParseNum[int]("4x")
	assert.False(t, ok)

	_, ok = ParseNum[int]("+5")
	assert.False(t, ok, "leading plus is rejected")
	_, ok = ParseNum[uint]("+5")
	assert.False(t, ok)

	_, ok = ParseNum[int]("")
	assert.False(t, ok)

	_, ok = ParseNum[uint8]("256")
	assert.False(t, ok, "out of range")

	b, ok := ParseNum[int8]("-128")
	assert.True(t, ok)
	assert.Equal(t, int8(-128), b)
}

func TestMustParseNum(t *testing.T) {
	assert.Equal(t, uint32(9), MustParseNum[uint32]("9"))
	assert.Panics(t, func() { MustParseNum[int]("nine") })
}

func TestParseNumPrefix(t *testing.T) {
	v, rest, ok := ParseNumPrefix[int]("123,4)")
	require.True(t, ok)
	assert.Equal(t, 123, v)
	assert.Equal(t, ",4)", rest)

	v, rest, ok = ParseNumPrefix[int]("-5x")
	require.True(t, ok)
	assert.Equal(t, -5, v)
	assert.Equal(t, "x", rest)

	_, rest, ok = ParseNumPrefix[int]("x1")
	assert.False(t, ok)
	assert.Equal(t, "x1", rest)

	_, _, ok = ParseNumPrefix[uint]("-5")
	assert.False(t, ok)
}

func TestParseAll(t *testing.T) {
	got, err := ParseAll[int](Split("75,47,61", Byte(',')))
	require.NoError(t, err)
	assert.Equal(t, []int{75, 47, 61}, got)

	_, err = ParseAll[int](Split("75,,61", Byte(',')))
	assert.True(t, errors.Is(err, errors.ErrInvalidNumber))
}
