// Package fmtutil provides formatting utilities for human-readable output.
// Package fmtutil 提供用于人类可读输出的格式化工具。
package fmtutil

import (
	"fmt"
	"strings"
	"time"
)

// Color is an ANSI foreground colour code.
type Color int

const (
	Black   Color = 30
	Red     Color = 31
	Green   Color = 32
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
	Cyan    Color = 36
	White   Color = 37
)

// Style is an ANSI text attribute.
type Style int

const (
	Normal     Style = 0
	Bold       Style = 1
	Underlined Style = 4
)

// Palette renders coloured text. The zero value prints plain text, which
// the CLI uses for --no-color and non-terminal output.
// Palette 负责彩色输出；零值输出纯文本。
type Palette struct {
	Color bool
}

// Styled wraps the formatted value of v in an ANSI style/colour sequence.
// Styled 使用 ANSI 样式和颜色包装 v 的格式化结果。
func (p Palette) Styled(style Style, color Color, v any) string {
	if !p.Color {
		return fmt.Sprint(v)
	}
	return fmt.Sprintf("\033[%d;%dm%v\033[0m", style, color, v)
}

// Colored renders v in color with normal weight.
func (p Palette) Colored(color Color, v any) string { return p.Styled(Normal, color, v) }

// Emphasis renders v bold in white.
func (p Palette) Emphasis(v any) string { return p.Styled(Bold, White, v) }

// FormatNumberWithComma formats a number with thousand separators.
// FormatNumberWithComma 格式化数字，添加千位分隔符。
func FormatNumberWithComma(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// FormatElapsed formats a solve duration with a unit suited to its size.
// FormatElapsed 以合适的单位格式化求解耗时。
func FormatElapsed(d time.Duration) string {
	switch {
	case d <= 0:
		return "0ns"
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
