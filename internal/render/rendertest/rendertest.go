// Package rendertest provides Targets for asserting on render output.
package rendertest

import (
	"errors"
	"strings"

	"github.com/alexisbeaulieu97/boxterm/internal/render"
)

// OpKind identifies a recorded primitive.
type OpKind int

const (
	OpAttr OpKind = iota
	OpStr
	OpNewline
)

// Op is one recorded primitive call.
type Op struct {
	Kind OpKind
	Attr render.Attr
	Text string
}

// Attr builds an expected attr op.
func Attr(attr render.Attr) Op {
	return Op{Kind: OpAttr, Attr: attr}
}

// Str builds an expected text op.
func Str(text string) Op {
	return Op{Kind: OpStr, Text: text}
}

// Newline builds an expected newline op.
func Newline() Op {
	return Op{Kind: OpNewline}
}

// Recorder is a Target that records every primitive call.
type Recorder struct {
	width int
	Ops   []Op
}

// NewRecorder returns a recorder with the given width budget.
func NewRecorder(width int) *Recorder {
	return &Recorder{width: width}
}

func (r *Recorder) Width() int {
	return r.width
}

func (r *Recorder) PushAttr(attr render.Attr) error {
	r.Ops = append(r.Ops, Attr(attr))
	return nil
}

func (r *Recorder) PushStr(text string) error {
	r.Ops = append(r.Ops, Str(text))
	return nil
}

func (r *Recorder) Newline() error {
	r.Ops = append(r.Ops, Newline())
	return nil
}

// Lines returns the recorded text with attrs dropped, one entry per line. A
// trailing line without a newline is included.
func (r *Recorder) Lines() []string {
	var lines []string
	var current strings.Builder
	open := false
	for _, op := range r.Ops {
		switch op.Kind {
		case OpStr:
			current.WriteString(op.Text)
			open = true
		case OpNewline:
			lines = append(lines, current.String())
			current.Reset()
			open = false
		}
	}
	if open {
		lines = append(lines, current.String())
	}
	return lines
}

// ErrInjected is returned by FailingTarget.
var ErrInjected = errors.New("injected target failure")

// FailingTarget records calls like Recorder and fails the call numbered
// FailAt (zero based).
type FailingTarget struct {
	Recorder
	FailAt int
	calls  int
}

// NewFailingTarget returns a target that fails on call failAt.
func NewFailingTarget(width, failAt int) *FailingTarget {
	return &FailingTarget{Recorder: Recorder{width: width}, FailAt: failAt}
}

// Calls returns how many primitive calls reached the target, including the
// failed one.
func (f *FailingTarget) Calls() int {
	return f.calls
}

func (f *FailingTarget) PushAttr(attr render.Attr) error {
	if err := f.tick(); err != nil {
		return err
	}
	return f.Recorder.PushAttr(attr)
}

func (f *FailingTarget) PushStr(text string) error {
	if err := f.tick(); err != nil {
		return err
	}
	return f.Recorder.PushStr(text)
}

func (f *FailingTarget) Newline() error {
	if err := f.tick(); err != nil {
		return err
	}
	return f.Recorder.Newline()
}

func (f *FailingTarget) tick() error {
	call := f.calls
	f.calls++
	if call == f.FailAt {
		return ErrInjected
	}
	return nil
}
