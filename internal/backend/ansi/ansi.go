// Package ansi implements a render.Target that writes 24-bit ANSI escape
// sequences to an io.Writer.
package ansi

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/boxterm/internal/render"
)

// Target writes escape sequences and text to an io.Writer. Write failures are
// returned from the primitive that hit them.
type Target struct {
	out   io.Writer
	width int
}

// New returns a target writing to out with the given width budget.
func New(out io.Writer, width int) *Target {
	return &Target{out: out, width: width}
}

// Width returns the width budget.
func (t *Target) Width() int {
	return t.width
}

// PushAttr always emits foreground, background and bold, in that order,
// whether or not they changed.
func (t *Target) PushAttr(attr render.Attr) error {
	_, err := io.WriteString(t.out, Sequence(attr))
	return err
}

// PushStr writes text verbatim.
func (t *Target) PushStr(text string) error {
	_, err := io.WriteString(t.out, text)
	return err
}

// Newline writes a line feed.
func (t *Target) Newline() error {
	_, err := io.WriteString(t.out, "\n")
	return err
}

// Sequence returns the escape sequence PushAttr writes for attr.
func Sequence(attr render.Attr) string {
	var fg, bg, bold string
	if c, ok := attr.Foreground(); ok {
		fg = fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.Red, c.Green, c.Blue)
	} else {
		fg = "\x1b[39m"
	}
	if c, ok := attr.Background(); ok {
		bg = fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.Red, c.Green, c.Blue)
	} else {
		bg = "\x1b[49m"
	}
	if attr.Bold() {
		bold = "\x1b[1m"
	} else {
		bold = "\x1b[22m"
	}
	return fg + bg + bold
}

var _ render.Target = (*Target)(nil)
