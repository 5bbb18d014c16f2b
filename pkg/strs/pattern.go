// Package strs provides lazy, non-copying text splitting over byte-oriented input.
// Package strs 提供基于字节的惰性、零拷贝文本切分。
//
// Every token produced by this package is a substring of the caller's input, so
// it shares the caller's backing memory. Only single-byte (ASCII) classification
// is performed; multi-byte UTF-8 sequences are treated as opaque bytes.
package strs

import "strings"

// Matcher is the normalized form of every pattern: given the remaining text it
// returns how many leading bytes match, or 0 when there is no match at this position.
// Matcher 是所有模式的统一形式：返回剩余文本开头匹配的字节数，0 表示此处不匹配。
type Matcher func(rest string) int

// Pattern is a delimiter rule that can be baked into a Matcher.
// The set of implementations is closed: Byte, Literal, Predicate and Matcher.
// Pattern 是可被烘焙为 Matcher 的分隔规则。
type Pattern interface {
	Bake() Matcher
	pattern()
}

// Byte matches a single literal byte.
type Byte byte

// Literal matches a literal byte sequence; the match length is len(Literal).
type Literal string

// Predicate matches one byte for which the function reports true.
type Predicate func(c byte) bool

// Bake returns a matcher reporting 1 when rest starts with b.
func (b Byte) Bake() Matcher {
	return func(rest string) int {
		if len(rest) > 0 && rest[0] == byte(b) {
			return 1
		}
		return 0
	}
}

// Bake returns a matcher reporting len(l) when rest starts with l.
// An empty literal never matches.
func (l Literal) Bake() Matcher {
	lit := string(l)
	return func(rest string) int {
		if len(lit) > 0 && strings.HasPrefix(rest, lit) {
			return len(lit)
		}
		return 0
	}
}

// Bake returns a matcher reporting 1 when p accepts the first byte of rest.
func (p Predicate) Bake() Matcher {
	return func(rest string) int {
		if len(rest) > 0 && p(rest[0]) {
			return 1
		}
		return 0
	}
}

// Bake returns m unchanged.
func (m Matcher) Bake() Matcher { return m }

func (Byte) pattern()      {}
func (Literal) pattern()   {}
func (Predicate) pattern() {}
func (Matcher) pattern()   {}

// Bake normalizes any pattern into its Matcher. A nil pattern yields a matcher
// that never matches.
// Bake 将任意模式规范化为 Matcher。
func Bake(p Pattern) Matcher {
	if p == nil {
		return never
	}
	m := p.Bake()
	if m == nil {
		return never
	}
	return m
}

func never(string) int { return 0 }

// matchAt runs m on rest and clamps the result into [0, len(rest)].
func matchAt(m Matcher, rest string) int {
	n := m(rest)
	if n < 0 {
		return 0
	}
	if n > len(rest) {
		return len(rest)
	}
	return n
}

// MatchAnyOf returns a matcher that greedily consumes consecutive matches of p
// and reports their combined length. Zero matches report 0.
// MatchAnyOf 返回一个贪婪匹配连续多次 p 的 Matcher。
func MatchAnyOf(p Pattern) Matcher {
	inner := Bake(p)
	return func(rest string) int {
		total := 0
		for total < len(rest) {
			n := matchAt(inner, rest[total:])
			if n == 0 {
				break
			}
			total += n
		}
		return total
	}
}

// MatchOr returns a matcher that tries each pattern in order and reports the
// first nonzero match. The first match wins, not the longest.
// MatchOr 依次尝试各模式，返回第一个非零匹配（先到先得，而非最长匹配）。
func MatchOr(patterns ...Pattern) Matcher {
	baked := make([]Matcher, len(patterns))
	for i, p := range patterns {
		baked[i] = Bake(p)
	}
	return func(rest string) int {
		for _, m := range baked {
			if n := m(rest); n > 0 {
				return n
			}
		}
		return 0
	}
}

// CountMatches scans text left to right and counts non-overlapping matches of p.
// After a match the scan resumes past the matched span; otherwise it moves one byte.
// CountMatches 从左到右统计 p 的不重叠匹配次数。
func CountMatches(text string, p Pattern) int {
	m := Bake(p)
	count := 0
	for i := 0; i < len(text); {
		if n := matchAt(m, text[i:]); n > 0 {
			count++
			i += n
			continue
		}
		i++
	}
	return count
}
