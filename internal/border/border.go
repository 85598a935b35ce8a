// Package border draws the horizontal rules that frame every boxed widget.
package border

import (
	"strings"

	"github.com/alexisbeaulieu97/boxterm/internal/colour"
	"github.com/alexisbeaulieu97/boxterm/internal/render"
)

// BoxStyle is the palette of a bordered box: the colour surrounding it, the
// box fill and the text drawn on that fill.
type BoxStyle struct {
	Surround   colour.Colour
	Background colour.Colour
	Foreground colour.Colour
}

// NewBoxStyle builds a BoxStyle.
func NewBoxStyle(surround, background, foreground colour.Colour) BoxStyle {
	return BoxStyle{Surround: surround, Background: background, Foreground: foreground}
}

// WithWidth binds the style to a concrete width.
func (s BoxStyle) WithWidth(width int) BorderBox {
	return BorderBox{Style: s, Width: width}
}

// BorderAttr is the attr of the outer rules: box fill drawn on the surround.
func (s BoxStyle) BorderAttr() render.Attr {
	return render.DefaultAttr().
		WithBackground(s.Surround).
		WithForeground(s.Background)
}

// TextAttr is the attr of text inside the box.
func (s BoxStyle) TextAttr() render.Attr {
	return render.DefaultAttr().
		WithBackground(s.Background).
		WithForeground(s.Foreground)
}

// BorderBox is a BoxStyle with a width, producing the rules of one box.
type BorderBox struct {
	Style BoxStyle
	Width int
}

// Top returns the top rule.
func (b BorderBox) Top() Border {
	return New(KindTop, b.Style.Surround, b.Style.Background, b.Width)
}

// Bottom returns the bottom rule.
func (b BorderBox) Bottom() Border {
	return New(KindBottom, b.Style.Surround, b.Style.Background, b.Width)
}

// Separator returns an interior rule.
func (b BorderBox) Separator() Border {
	return New(KindSeparator, b.Style.Surround, b.Style.Background, b.Width)
}

// TextAttr returns the style's text attr.
func (b BorderBox) TextAttr() render.Attr {
	return b.Style.TextAttr()
}

// Kind selects the glyph and colour arrangement of a rule.
type Kind int

const (
	KindTop Kind = iota
	KindBottom
	KindSeparator
)

const (
	glyphTop       = "▅"
	glyphBottom    = "🮄"
	glyphSeparator = "─"
)

// Glyph returns the box-drawing character repeated along the rule.
func (k Kind) Glyph() string {
	switch k {
	case KindBottom:
		return glyphBottom
	case KindSeparator:
		return glyphSeparator
	default:
		return glyphTop
	}
}

// Border is one horizontal rule.
type Border struct {
	kind       Kind
	background colour.Colour
	foreground colour.Colour
	width      int
}

// New builds a rule of the given kind. Background and foreground are the
// colours of an outer rule; a separator swaps them so it reads as an
// interior line.
func New(kind Kind, background, foreground colour.Colour, width int) Border {
	return Border{kind: kind, background: background, foreground: foreground, width: width}
}

// Kind returns the rule kind.
func (b Border) Kind() Kind {
	return b.kind
}

// Width returns the rule length in cells.
func (b Border) Width() int {
	return b.width
}

// Attr returns the attr the rule is drawn with.
func (b Border) Attr() render.Attr {
	background, foreground := b.background, b.foreground
	if b.kind == KindSeparator {
		background, foreground = foreground, background
	}
	return render.DefaultAttr().WithBackground(background).WithForeground(foreground)
}

// Render draws the rule and resets to the default attr.
func (b Border) Render(t render.Target) error {
	width := b.width
	if width < 0 {
		width = 0
	}
	return render.NewPrinter(t).
		Attr(b.Attr()).
		Str(strings.Repeat(b.kind.Glyph(), width)).
		Attr(render.DefaultAttr()).
		Err()
}
