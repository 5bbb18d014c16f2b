package strs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplit_Byte tests splitting on a single byte
// TestSplit_Byte 测试按单字节切分
func TestSplit_Byte(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Simple", "a,b,c", []string{"a", "b", "c"}},
		{"Trailing delimiter", "a,b,", []string{"a", "b", ""}},
		{"Leading delimiter", ",a", []string{"", "a"}},
		{"Adjacent delimiters", "a,,b", []string{"a", "", "b"}},
		{"No match", "abc", []string{"abc"}},
		{"Empty input", "", []string{""}},
		{"Only delimiter", ",", []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input, Byte(',')).Collect()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSplit_Literal(t *testing.T) {
	got := Split("47|53\n97|13\n\n75,47\n61,13", Literal("\n\n")).Collect()
	assert.Equal(t, []string{"47|53\n97|13", "75,47\n61,13"}, got)

	// Overlapping candidates resolve left to right.
	got = Split("aaaa", Literal("aa")).Collect()
	assert.Equal(t, []string{"", "", ""}, got)

	got = Split("aaa", Literal("aa")).Collect()
	assert.Equal(t, []string{"", "a"}, got)
}

func TestSplit_Predicate(t *testing.T) {
	isDigit := Predicate(func(c byte) bool { return c >= '0' && c <= '9' })
	got := Split("a1b22c", isDigit).Collect()
	assert.Equal(t, []string{"a", "b", "", "c"}, got)
}

func TestSplit_MatchOr(t *testing.T) {
	got := Split("190: 10 19", MatchOr(Literal(": "), Byte(' '))).Collect()
	assert.Equal(t, []string{"190", "10", "19"}, got)

	// First match wins even when a later pattern is longer.
	got = Split("a::b", MatchOr(Byte(':'), Literal("::"))).Collect()
	assert.Equal(t, []string{"a", "", "b"}, got)
}

func TestSplit_CursorIsPrimed(t *testing.T) {
	s := Split("x;y", Byte(';'))
	require.False(t, s.Done())
	assert.Equal(t, "x", s.Token())
	assert.Equal(t, Span{Start: 0, End: 1}, s.Span())
	assert.Equal(t, ";", s.Delim())

	s.Next()
	assert.Equal(t, "y", s.Token())
	assert.Equal(t, "", s.Delim())

	s.Next()
	assert.True(t, s.Done())
	assert.Equal(t, "", s.Token())

	// Advancing an exhausted cursor is a no-op.
	s.Next()
	assert.True(t, s.Done())
}

func TestSplit_Clone(t *testing.T) {
	s := Split("1 2 3", Byte(' '))
	peek := s.Clone()
	peek.Next()
	assert.Equal(t, "2", peek.Token())
	assert.Equal(t, "1", s.Token(), "clone must not disturb the original cursor")
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, 2, peek.Count())
}

func TestSplit_AllConsumesOnce(t *testing.T) {
	s := Split("a b c", Byte(' '))
	var first []string
	for tok := range s.All() {
		first = append(first, tok)
		if tok == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, []string{"c"}, s.Collect())
	assert.Empty(t, s.Collect())
}

func TestSplit_EarlyStopPosition(t *testing.T) {
	s := Split("a,b,c", Byte(','))
	var mark *Splitter
	for tok := range s.All() {
		if tok == "a" {
			mark = s.Clone()
			break
		}
	}
	assert.Equal(t, "b", s.Token(), "the yielded token is consumed on break")
	assert.Equal(t, []string{"a", "b", "c"}, mark.Collect())

	sp := Split("a,b", Byte(','))
	for range sp.Spans() {
		break
	}
	assert.Equal(t, Span{2, 3}, sp.Span())
}

func TestSplit_Spans(t *testing.T) {
	var spans []Span
	for sp := range Split("ab--c", Literal("--")).Spans() {
		spans = append(spans, sp)
	}
	assert.Equal(t, []Span{{0, 2}, {4, 5}}, spans)
	assert.Equal(t, 2, spans[0].Len())
}

func TestSplit_TokensAreViews(t *testing.T) {
	input := "left|right"
	s := Split(input, Byte('|'))
	tok := s.Token()
	sp := s.Span()
	assert.Equal(t, input[sp.Start:sp.End], tok)
}

func TestSplit_ZeroLengthMatcherTerminates(t *testing.T) {
	// Reports a match that consumes nothing; the cursor still advances.
	alwaysZero := Matcher(func(string) int { return 0 })
	assert.Equal(t, []string{"abc"}, Split("abc", alwaysZero).Collect())

	negative := Matcher(func(string) int { return -3 })
	assert.Equal(t, []string{"abc"}, Split("abc", negative).Collect())

	// Claims a match on the empty remainder too.
	greedyEnd := Matcher(func(rest string) int { return 1 })
	assert.Equal(t, []string{"", "", ""}, Split("ab", greedyEnd).Collect())
}

func TestSplit_OverlongMatchIsClamped(t *testing.T) {
	overlong := Matcher(func(rest string) int {
		if strings.HasPrefix(rest, "#") {
			return 100
		}
		return 0
	})
	s := Split("ab#c", overlong)
	var rebuilt strings.Builder
	var toks []string
	for ; !s.Done(); s.Next() {
		toks = append(toks, s.Token())
		rebuilt.WriteString(s.Token())
		rebuilt.WriteString(s.Delim())
	}
	assert.Equal(t, []string{"ab", ""}, toks)
	assert.Equal(t, "ab#c", rebuilt.String())
}

func TestSplit_NilPattern(t *testing.T) {
	assert.Equal(t, []string{"a,b"}, Split("a,b", nil).Collect())
	assert.Equal(t, []string{"a,b"}, Split("a,b", Matcher(nil)).Collect())
}

// TestSplit_Invariants checks round-trip, count and no-match identity over a small corpus.
// TestSplit_Invariants 检查往返、计数与无匹配恒等性质。
func TestSplit_Invariants(t *testing.T) {
	inputs := []string{"", ",", ",,", "a", "a,b", ",a,", "ab,,cd,", "  x  y\t\tz\n", "aaaaa", "xmasxmas"}
	patterns := map[string]Pattern{
		"byte":       Byte(','),
		"literal":    Literal("aa"),
		"predicate":  Predicate(IsSpace),
		"whitespace": MatchWhitespace,
		"or":         MatchOr(Byte(','), Literal("ma")),
	}

	for name, p := range patterns {
		for _, in := range inputs {
			t.Run(name+"/"+in, func(t *testing.T) {
				var rebuilt strings.Builder
				tokens := 0
				for s := Split(in, p); !s.Done(); s.Next() {
					rebuilt.WriteString(s.Token())
					rebuilt.WriteString(s.Delim())
					tokens++
				}
				assert.Equal(t, in, rebuilt.String(), "round-trip")
				assert.Equal(t, CountMatches(in, p)+1, tokens, "k matches give k+1 tokens")
			})
		}
	}

	never := Matcher(func(string) int { return 0 })
	for _, in := range inputs {
		assert.Equal(t, []string{in}, Split(in, never).Collect())
	}
}

func TestPair(t *testing.T) {
	a, b, ok := Pair("47|53", Byte('|'))
	require.True(t, ok)
	assert.Equal(t, "47", a)
	assert.Equal(t, "53", b)

	_, _, ok = Pair("47", Byte('|'))
	assert.False(t, ok)

	_, _, ok = Pair("1|2|3", Byte('|'))
	assert.False(t, ok)
}
