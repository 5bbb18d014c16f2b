package strs

import "iter"

// Span is a half-open byte range [Start, End) into the text a Splitter was built on.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int { return s.End - s.Start }

// Splitter is a lazy, forward-only cursor over the tokens of a text separated by
// matches of a pattern. It never copies the text: every token is a substring of it.
//
// The current token is valid as soon as the Splitter is constructed. A text with
// k non-overlapping leftmost matches yields exactly k+1 tokens, any of which may
// be empty. Copying a Splitter (or calling Clone) duplicates the cursor only.
// Splitter 是基于模式匹配的惰性单向游标，不复制原始文本。
type Splitter struct {
	text  string
	match Matcher
	begin int
	end   int
	next  int
	done  bool
}

// Split builds a Splitter over text and primes its first token.
// Split 创建 Splitter 并立即计算第一个 token。
func Split(text string, p Pattern) *Splitter {
	s := &Splitter{text: text, match: Bake(p)}
	s.Next()
	return s
}

// Next advances to the following token. Once the terminal token has been
// consumed the Splitter reports Done and further calls are no-ops.
//
// Matching is attempted at each scan position in turn; the matcher decides
// whether the pattern matches exactly there. When the scan reaches the end of
// input without a match the token ends there and the cursor moves one past the
// end, so an input ending in a delimiter still yields a trailing empty token.
// A match is always skipped by at least one byte.
func (s *Splitter) Next() {
	if s.done {
		return
	}
	n := len(s.text)
	if s.next > n {
		s.done = true
		return
	}

	s.begin = s.next
	pos := s.begin
	consumed := 0
	for {
		consumed = matchAt(s.match, s.text[pos:])
		if consumed != 0 || pos == n {
			break
		}
		pos++
	}
	s.end = pos
	s.next = pos + max(consumed, 1)
}

// Done reports whether the sequence is exhausted.
func (s *Splitter) Done() bool { return s.done }

// Token returns the current token. It is empty once Done.
func (s *Splitter) Token() string {
	if s.done {
		return ""
	}
	return s.text[s.begin:s.end]
}

// Span returns the bounds of the current token within the source text.
func (s *Splitter) Span() Span {
	if s.done {
		return Span{Start: len(s.text), End: len(s.text)}
	}
	return Span{Start: s.begin, End: s.end}
}

// Delim returns the delimiter text consumed after the current token.
// It is empty for the terminal token.
// Delim 返回当前 token 之后被消耗的分隔符文本。
func (s *Splitter) Delim() string {
	if s.done || s.next > len(s.text) {
		return ""
	}
	return s.text[s.end:s.next]
}

// Clone returns an independent copy of the cursor over the same text.
// It is used to peek ahead without disturbing s.
func (s *Splitter) Clone() *Splitter {
	c := *s
	return &c
}

// All yields the current token and every following one, consuming s.
// Stopping early also consumes the token that was last yielded, so after a
// break s is positioned on the token after it. Clone s first to resume
// from the yielded token.
// All 依次产出当前及之后的所有 token，会消耗 s；提前退出时最后产出的 token 也被消耗。
func (s *Splitter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for ; !s.done; s.Next() {
			if !yield(s.Token()) {
				s.Next()
				return
			}
		}
	}
}

// Spans is like All but yields token bounds, with the same early-stop behaviour.
func (s *Splitter) Spans() iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for ; !s.done; s.Next() {
			if !yield(s.Span()) {
				s.Next()
				return
			}
		}
	}
}

// Collect drains the remaining tokens into a slice.
func (s *Splitter) Collect() []string {
	var out []string
	for tok := range s.All() {
		out = append(out, tok)
	}
	return out
}

// Count drains the remaining tokens and returns how many there were.
func (s *Splitter) Count() int {
	n := 0
	for ; !s.done; s.Next() {
		n++
	}
	return n
}

// Pair splits text into exactly two tokens. ok is false when the pattern
// matches zero times or more than once.
func Pair(text string, p Pattern) (first, second string, ok bool) {
	s := Split(text, p)
	first = s.Token()
	s.Next()
	if s.Done() {
		return "", "", false
	}
	second = s.Token()
	s.Next()
	if !s.Done() {
		return "", "", false
	}
	return first, second, true
}
