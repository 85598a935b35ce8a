package render

import "github.com/alexisbeaulieu97/boxterm/internal/colour"

// Attr is an immutable style token. An unset foreground or background means
// the terminal default, not black or white. The zero value is the default
// attr.
type Attr struct {
	foreground    colour.Colour
	background    colour.Colour
	hasForeground bool
	hasBackground bool
	bold          bool
}

// DefaultAttr returns an attr with no colours and bold off.
func DefaultAttr() Attr {
	return Attr{}
}

// WithForeground returns a copy with the foreground set.
func (a Attr) WithForeground(c colour.Colour) Attr {
	a.foreground = c
	a.hasForeground = true
	return a
}

// WithBackground returns a copy with the background set.
func (a Attr) WithBackground(c colour.Colour) Attr {
	a.background = c
	a.hasBackground = true
	return a
}

// WithBold returns a copy with bold switched on or off.
func (a Attr) WithBold(bold bool) Attr {
	a.bold = bold
	return a
}

// Foreground reports the foreground colour and whether one is set.
func (a Attr) Foreground() (colour.Colour, bool) {
	return a.foreground, a.hasForeground
}

// Background reports the background colour and whether one is set.
func (a Attr) Background() (colour.Colour, bool) {
	return a.background, a.hasBackground
}

// Bold reports whether bold is on.
func (a Attr) Bold() bool {
	return a.bold
}

// Render pushes the attr onto the target.
func (a Attr) Render(t Target) error {
	return NewPrinter(t).Attr(a).Err()
}
