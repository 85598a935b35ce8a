package widgets

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/boxterm/internal/border"
	"github.com/alexisbeaulieu97/boxterm/internal/render"
)

// MessageBox renders free text inside a bordered box, wrapped to the
// target's width.
type MessageBox struct {
	style border.BoxStyle
	text  string
}

// NewMessageBox builds a message box.
func NewMessageBox(style border.BoxStyle, text string) MessageBox {
	return MessageBox{style: style, text: text}
}

// Render wraps the text to the target width and draws it boxed, each line
// padded to the widest one.
func (m MessageBox) Render(t render.Target) error {
	lines, width := SplitLines(m.text, t.Width())
	frame := m.style.WithWidth(width + 4)
	p := render.NewPrinter(t)

	p.Str(" ").Push(frame.Top()).Newline()

	for _, line := range lines {
		var buf strings.Builder
		buf.WriteString("  ")
		buf.WriteString(line)
		buf.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(line)))
		buf.WriteString("  ")

		p.Str(" ").
			Attr(m.style.TextAttr()).
			Str(buf.String()).
			Attr(render.DefaultAttr()).
			Newline()
	}

	p.Str(" ").Push(frame.Bottom()).Newline()
	return p.Err()
}

// SplitLines trims trailing whitespace from text and splits it into lines on
// '\n' and every maxWidth runes. A maxWidth of zero or less disables
// wrapping. It also returns the rune count of the longest line.
//
// Splitting is idempotent: feeding the joined result back in yields the
// same lines.
func SplitLines(text string, maxWidth int) ([]string, int) {
	text = strings.TrimRightFunc(text, unicode.IsSpace)
	if text == "" {
		return nil, 0
	}

	var lines []string
	width := 0
	for _, raw := range strings.Split(text, "\n") {
		for {
			n := utf8.RuneCountInString(raw)
			if maxWidth <= 0 || n <= maxWidth {
				lines = append(lines, raw)
				width = max(width, n)
				break
			}
			cut := byteOffset(raw, maxWidth)
			lines = append(lines, raw[:cut])
			width = max(width, maxWidth)
			raw = raw[cut:]
		}
	}
	return lines, width
}

func byteOffset(s string, runes int) int {
	offset := 0
	for i := 0; i < runes; i++ {
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}
	return offset
}

// MiniMessageBox is a one-line inline box with half-block end caps. It does
// not end the line.
type MiniMessageBox struct {
	style border.BoxStyle
	text  string
	width int
}

// NewMiniMessageBox builds an inline message box.
func NewMiniMessageBox(style border.BoxStyle, text string) MiniMessageBox {
	return MiniMessageBox{style: style, text: text, width: utf8.RuneCountInString(text) + 4}
}

// Width returns the number of cells the box occupies.
func (m MiniMessageBox) Width() int {
	return m.width
}

// Render draws the capped box.
func (m MiniMessageBox) Render(t render.Target) error {
	return render.NewPrinter(t).
		Attr(m.style.BorderAttr()).
		Str("🬫").
		Attr(m.style.TextAttr()).
		Str(" ").
		Str(m.text).
		Str(" ").
		Attr(m.style.BorderAttr()).
		Str("🬛").
		Attr(render.DefaultAttr()).
		Err()
}
