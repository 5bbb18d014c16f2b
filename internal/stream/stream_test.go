package stream

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/livp123/advent/internal/config"
	"github.com/livp123/advent/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestTokenizer tests splitting single lines for each kind
// TestTokenizer 测试各切分类型对单行的切分
func TestTokenizer(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		pattern string
		trim    bool
		line    string
		want    []string
	}{
		{"byte", config.SplitByte, ",", false, "a,,b", []string{"a", "", "b"}},
		{"byte trailing", config.SplitByte, ",", false, "a,", []string{"a", ""}},
		{"literal", config.SplitLiteral, "->", false, "x->y->z", []string{"x", "y", "z"}},
		{"literal trimmed", config.SplitLiteral, "|", true, "  1 | 2  ", []string{"1 ", " 2"}},
		{"whitespace", config.SplitWhitespace, "", false, "  7 6\t4  ", []string{"7", "6", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := NewTokenizer(tt.kind, tt.pattern, tt.trim)
			require.NoError(t, err)
			assert.Equal(t, tt.want, slices.Collect(tok.Tokens(tt.line)))
			assert.Equal(t, len(tt.want), tok.Count(tt.line))
		})
	}
}

func TestTokenizer_Invalid(t *testing.T) {
	for _, c := range [][2]string{{config.SplitByte, ""}, {config.SplitByte, "ab"}, {config.SplitLiteral, ""}, {"regex", "."}} {
		_, err := NewTokenizer(c[0], c[1], false)
		assert.True(t, errors.Is(err, errors.ErrInvalidPattern), c)
	}

	tok, err := FromConfig(config.DefaultConfig().Stream)
	require.NoError(t, err)
	assert.Equal(t, 2, tok.Count(" a b "))
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func collect(f *Follower) []string {
	var out []string
	for line := range f.Lines {
		out = append(out, line.Text)
	}
	return out
}

func TestFollower_ReadsToEOF(t *testing.T) {
	path := writeFile(t, "1 2\n3 4\n5\n")

	f, err := Open(context.Background(), path, false)
	require.NoError(t, err)
	defer f.Stop()

	assert.Equal(t, []string{"1 2", "3 4", "5"}, collect(f))
}

func TestFollower_MissingFile(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), false)
	assert.True(t, errors.Is(err, errors.ErrInputNotFound))
}

func TestFollower_Follow(t *testing.T) {
	path := writeFile(t, "first\n")

	f, err := Open(context.Background(), path, true)
	require.NoError(t, err)

	select {
	case line := <-f.Lines:
		assert.Equal(t, "first", line.Text)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for first line")
	}

	fh, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = fh.WriteString("second\n")
	require.NoError(t, err)
	require.NoError(t, fh.Close())

	select {
	case line := <-f.Lines:
		assert.Equal(t, "second", line.Text)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for appended line")
	}

	f.Stop()
	f.Stop()
	_, ok := <-f.Lines
	assert.False(t, ok, "Lines is closed after Stop")
}

func TestFollower_ContextCancel(t *testing.T) {
	path := writeFile(t, "")
	ctx, cancel := context.WithCancel(context.Background())

	f, err := Open(ctx, path, true)
	require.NoError(t, err)
	cancel()

	for range f.Lines {
	}
	f.Stop()
}
