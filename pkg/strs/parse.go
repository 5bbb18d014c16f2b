package strs

import (
	"strconv"

	"github.com/livp123/advent/pkg/errors"
)

// Integer is the set of integer types the numeric helpers accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func signed[T Integer]() bool {
	var zero T
	return zero-1 < zero
}

func bitSize[T Integer]() int {
	bits := 0
	for v := T(1); v != 0; v <<= 1 {
		bits++
	}
	return bits
}

// ParseNum parses a whole token as a base-10 integer of type T.
// ok is false for malformed or out-of-range text; callers must check it.
// Only an optional '-' is accepted before the digits, never '+'.
// ParseNum 将整个 token 解析为十进制整数；格式错误时 ok 为 false。
func ParseNum[T Integer](tok string) (v T, ok bool) {
	if len(tok) > 0 && tok[0] == '+' {
		return 0, false
	}
	if signed[T]() {
		n, err := strconv.ParseInt(tok, 10, bitSize[T]())
		if err != nil {
			return 0, false
		}
		return T(n), true
	}
	n, err := strconv.ParseUint(tok, 10, bitSize[T]())
	if err != nil {
		return 0, false
	}
	return T(n), true
}

// MustParseNum is ParseNum for tokens already known to be numeric.
// It panics on a malformed token: that is a broken invariant, not an input error.
func MustParseNum[T Integer](tok string) T {
	v, ok := ParseNum[T](tok)
	if !ok {
		panic(errors.NewNumberError(tok))
	}
	return v
}

// ParseNumPrefix parses the longest leading run of decimal digits (with an
// optional '-' for signed T) and returns the value and the unparsed rest.
// ok is false when text does not start with a digit.
func ParseNumPrefix[T Integer](text string) (v T, rest string, ok bool) {
	i := 0
	if signed[T]() && i < len(text) && text[i] == '-' {
		i++
	}
	digits := i
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, text, false
	}
	v, ok = ParseNum[T](text[:i])
	if !ok {
		return 0, text, false
	}
	return v, text[i:], true
}

// ParseAll parses every token of s, failing on the first malformed one.
// ParseAll 解析 s 的所有 token，遇到第一个格式错误即返回错误。
func ParseAll[T Integer](s *Splitter) ([]T, error) {
	var out []T
	for tok := range s.All() {
		v, ok := ParseNum[T](tok)
		if !ok {
			return nil, errors.NewNumberError(tok)
		}
		out = append(out, v)
	}
	return out, nil
}
