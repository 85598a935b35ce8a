// Package cells implements a render.Target that draws into a tcell screen,
// one rune per cell.
package cells

import (
	"github.com/gdamore/tcell/v2"

	"github.com/alexisbeaulieu97/boxterm/internal/render"
)

// Target draws onto a tcell.Screen starting at an origin. Text past the
// screen edge is dropped by the screen.
type Target struct {
	screen  tcell.Screen
	originX int
	x, y    int
	width   int
	style   tcell.Style
}

// New returns a target drawing at (originX, originY) with the given width
// budget.
func New(screen tcell.Screen, originX, originY, width int) *Target {
	return &Target{
		screen:  screen,
		originX: originX,
		x:       originX,
		y:       originY,
		width:   width,
		style:   tcell.StyleDefault,
	}
}

// Width returns the width budget.
func (t *Target) Width() int {
	return t.width
}

// PushAttr sets the style of subsequent cells.
func (t *Target) PushAttr(attr render.Attr) error {
	t.style = Style(attr)
	return nil
}

// PushStr writes one cell per rune.
func (t *Target) PushStr(text string) error {
	for _, r := range text {
		t.screen.SetContent(t.x, t.y, r, nil, t.style)
		t.x++
	}
	return nil
}

// Newline moves to the start of the next row.
func (t *Target) Newline() error {
	t.x = t.originX
	t.y++
	return nil
}

// Cursor returns the next cell to be written.
func (t *Target) Cursor() (x, y int) {
	return t.x, t.y
}

// Style converts an attr to a tcell style. Unset colours map to
// tcell.ColorReset.
func Style(attr render.Attr) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(tcell.ColorReset).
		Background(tcell.ColorReset).
		Bold(attr.Bold())
	if c, ok := attr.Foreground(); ok {
		style = style.Foreground(tcell.NewRGBColor(int32(c.Red), int32(c.Green), int32(c.Blue)))
	}
	if c, ok := attr.Background(); ok {
		style = style.Background(tcell.NewRGBColor(int32(c.Red), int32(c.Green), int32(c.Blue)))
	}
	return style
}

var _ render.Target = (*Target)(nil)
