// Package stream feeds lines of a file, optionally followed as it grows,
// through a splitter and emits the tokens.
// Package stream 将文件（可持续跟踪）的每一行交给切分器并输出词元。
package stream

import (
	"iter"

	"github.com/livp123/advent/internal/config"
	"github.com/livp123/advent/pkg/errors"
	"github.com/livp123/advent/pkg/strs"
)

// Tokenizer splits single lines with a fixed pattern.
type Tokenizer struct {
	pattern strs.Pattern
	trim    bool
}

// NewTokenizer builds a tokenizer from a split kind and its pattern text.
// kind is one of config.SplitByte, config.SplitLiteral, config.SplitWhitespace.
// NewTokenizer 根据切分类型与模式文本构建分词器。
func NewTokenizer(kind, pattern string, trim bool) (*Tokenizer, error) {
	var p strs.Pattern
	switch kind {
	case config.SplitByte:
		if len(pattern) != 1 {
			return nil, errors.NewPatternError("byte separator must be exactly one byte")
		}
		p = strs.Byte(pattern[0])
	case config.SplitLiteral:
		if pattern == "" {
			return nil, errors.NewPatternError("empty literal")
		}
		p = strs.Literal(pattern)
	case config.SplitWhitespace:
		p = strs.MatchWhitespace
		trim = true
	default:
		return nil, errors.NewPatternError("unknown kind " + kind)
	}
	return &Tokenizer{pattern: p, trim: trim}, nil
}

// FromConfig builds the tokenizer configured under stream:.
func FromConfig(cfg config.StreamConfig) (*Tokenizer, error) {
	return NewTokenizer(cfg.Kind, cfg.Pattern, cfg.Trim)
}

// Tokens yields the tokens of one line. Tokens are views into line.
func (t *Tokenizer) Tokens(line string) iter.Seq[string] {
	if t.trim {
		line = strs.Trim(line)
	}
	return strs.Split(line, t.pattern).All()
}

// Count returns the number of tokens in line.
func (t *Tokenizer) Count(line string) int {
	if t.trim {
		line = strs.Trim(line)
	}
	return strs.Split(line, t.pattern).Count()
}
