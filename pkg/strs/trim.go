package strs

// IsSpace reports whether c is an ASCII whitespace byte:
// space, tab, newline, carriage return, form feed or vertical tab.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// MatchWhitespace matches a maximal run of whitespace bytes as one delimiter.
var MatchWhitespace = MatchAnyOf(Predicate(IsSpace))

// Trim returns the largest inner substring of s with no leading or trailing
// whitespace. For empty or all-whitespace input it returns s[:0], the empty
// view anchored at the start of s.
// Trim 去除首尾空白，返回同一底层内存上的子串。
func Trim(s string) string {
	start := 0
	for start < len(s) && IsSpace(s[start]) {
		start++
	}
	if start == len(s) {
		return s[:0]
	}
	end := len(s)
	for IsSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// SplitWhitespace trims s and splits it on whitespace runs, so "  a   b  "
// yields exactly "a" and "b". Empty or all-whitespace input yields a single
// empty token.
// SplitWhitespace 先去除首尾空白，再按连续空白切分。
func SplitWhitespace(s string) *Splitter {
	return Split(Trim(s), MatchWhitespace)
}

// Lines splits s on '\n' after dropping a single trailing newline, the usual
// shape of a puzzle input file.
func Lines(s string) *Splitter {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
	}
	return Split(s, Byte('\n'))
}

// Reverse returns the bytes of s in reverse order.
// Unlike every other helper here it allocates.
func Reverse(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[len(s)-1-i] = s[i]
	}
	return string(b)
}
