package widgets

import (
	"strings"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/boxterm/internal/border"
	"github.com/alexisbeaulieu97/boxterm/internal/render"
)

// BoxTab is one tab of a BoxTabs bar.
type BoxTab struct {
	Label string
	Style border.BoxStyle
}

// BoxTabs renders tabs as bordered boxes side by side over three lines.
type BoxTabs struct {
	tabs []BoxTab
}

// NewBoxTabs builds a boxed tab bar.
func NewBoxTabs(tabs []BoxTab) BoxTabs {
	return BoxTabs{tabs: append([]BoxTab(nil), tabs...)}
}

// Render draws the top rules, the labels and the bottom rules.
func (b BoxTabs) Render(t render.Target) error {
	frames := make([]border.BorderBox, len(b.tabs))
	for i, tab := range b.tabs {
		frames[i] = tab.Style.WithWidth(utf8.RuneCountInString(tab.Label) + 4)
	}

	p := render.NewPrinter(t)
	for _, frame := range frames {
		p.Str(" ").Push(frame.Top())
	}
	p.Newline()

	for i, tab := range b.tabs {
		p.Str(" ").
			Attr(frames[i].TextAttr()).
			Str("  ").
			Str(tab.Label).
			Str("  ").
			Attr(render.DefaultAttr())
	}
	p.Newline()

	for _, frame := range frames {
		p.Str(" ").Push(frame.Bottom())
	}
	p.Newline()

	return p.Err()
}

// SlimTab is one tab of a SlimTabs strip.
type SlimTab struct {
	Label string
	Attr  render.Attr
}

// SlimTabs renders tabs as a single line on a uniform background that is
// padded out to the target width.
type SlimTabs struct {
	background render.Attr
	tabs       []SlimTab
}

// NewSlimTabs builds a slim tab strip.
func NewSlimTabs(background render.Attr, tabs []SlimTab) SlimTabs {
	return SlimTabs{background: background, tabs: append([]SlimTab(nil), tabs...)}
}

// Render draws each label with its own attr between background gaps.
func (s SlimTabs) Render(t render.Target) error {
	p := render.NewPrinter(t)
	pos := 0
	for _, tab := range s.tabs {
		pos += utf8.RuneCountInString(tab.Label) + 3
		p.Attr(s.background).
			Str(" ").
			Attr(tab.Attr).
			Str(" ").
			Str(tab.Label).
			Str(" ")
	}

	p.Attr(s.background)
	if fill := t.Width() - pos; fill > 0 {
		p.Str(strings.Repeat(" ", fill))
	}
	return p.Newline().Err()
}
