// Package render defines the seam between what is drawn and where it is drawn.
//
// A Target consumes four primitives: its width budget, an attr change, a run
// of text and a line break. A Renderable decomposes itself into those
// primitives. Widgets only ever talk to a Target, so the same value can be
// replayed against an ANSI stream, a lipgloss text builder or a tcell screen
// and produce the same sequence of calls.
//
// Rendering is synchronous and a Target belongs to one render at a time.
package render

import (
	apperrors "github.com/alexisbeaulieu97/boxterm/pkg/errors"
)

// Primitive names used in RenderError.Op.
const (
	OpPushAttr = "push_attr"
	OpPushStr  = "push_str"
	OpNewline  = "newline"
)

// Target is implemented by output backends.
type Target interface {
	// Width is the rendering width budget. It does not change during the
	// target's lifetime.
	Width() int
	// PushAttr sets the style for subsequent text.
	PushAttr(attr Attr) error
	// PushStr emits text under the current style.
	PushStr(text string) error
	// Newline ends the current line. The current style is kept.
	Newline() error
}

// Renderable is a value that can draw itself onto any Target.
type Renderable interface {
	Render(t Target) error
}

// Render draws r onto t. A failing primitive aborts the render and is
// returned as a *errors.RenderError.
func Render(t Target, r Renderable) error {
	return r.Render(t)
}

// Text is a run of text rendered under whatever attr is current.
type Text string

// Render pushes the text onto the target.
func (s Text) Render(t Target) error {
	return NewPrinter(t).Str(string(s)).Err()
}

// Line renders its parts in order and then ends the line.
type Line []Renderable

// Render draws every part followed by a newline.
func (l Line) Render(t Target) error {
	p := NewPrinter(t)
	for _, part := range l {
		p.Push(part)
	}
	return p.Newline().Err()
}

// Printer drives a Target on behalf of a renderable. After the first failed
// primitive it issues no further calls and Err reports the failure.
type Printer struct {
	target Target
	err    error
}

// NewPrinter returns a printer writing to t.
func NewPrinter(t Target) *Printer {
	return &Printer{target: t}
}

// Width returns the target's width budget.
func (p *Printer) Width() int {
	return p.target.Width()
}

// Attr pushes an attr.
func (p *Printer) Attr(attr Attr) *Printer {
	if p.err != nil {
		return p
	}
	if err := p.target.PushAttr(attr); err != nil {
		p.err = apperrors.NewRenderError(OpPushAttr, err)
	}
	return p
}

// Str pushes a run of text.
func (p *Printer) Str(text string) *Printer {
	if p.err != nil {
		return p
	}
	if err := p.target.PushStr(text); err != nil {
		p.err = apperrors.NewRenderError(OpPushStr, err)
	}
	return p
}

// Newline ends the current line.
func (p *Printer) Newline() *Printer {
	if p.err != nil {
		return p
	}
	if err := p.target.Newline(); err != nil {
		p.err = apperrors.NewRenderError(OpNewline, err)
	}
	return p
}

// Push renders a nested renderable onto the same target.
func (p *Printer) Push(r Renderable) *Printer {
	if p.err != nil {
		return p
	}
	p.err = r.Render(p.target)
	return p
}

// Err returns the first failure, if any.
func (p *Printer) Err() error {
	return p.err
}
