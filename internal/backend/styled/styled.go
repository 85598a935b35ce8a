// Package styled implements a render.Target that builds an in-memory text of
// styled spans, rendered through lipgloss.
package styled

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/boxterm/internal/render"
)

// Span is a run of text with the attr that was current when it was pushed.
type Span struct {
	Text string
	Attr render.Attr
}

// Line is one line of spans.
type Line []Span

// Text is the built output of a Target.
type Text struct {
	Lines []Line
}

// Target collects pushed text into lines of spans. It never fails.
type Target struct {
	width int
	lines []Line
	spans []Span
	attr  render.Attr
}

// New returns a target with the given width budget.
func New(width int) *Target {
	return &Target{width: width}
}

// Width returns the width budget.
func (t *Target) Width() int {
	return t.width
}

// PushAttr sets the attr of subsequent spans.
func (t *Target) PushAttr(attr render.Attr) error {
	t.attr = attr
	return nil
}

// PushStr appends a span under the current attr.
func (t *Target) PushStr(text string) error {
	t.spans = append(t.spans, Span{Text: text, Attr: t.attr})
	return nil
}

// Newline closes the current line.
func (t *Target) Newline() error {
	t.lines = append(t.lines, Line(t.spans))
	t.spans = nil
	return nil
}

// Build returns the collected text. Spans pushed after the last newline form
// a final line.
func (t *Target) Build() Text {
	lines := append([]Line(nil), t.lines...)
	if len(t.spans) > 0 {
		lines = append(lines, append(Line(nil), t.spans...))
	}
	return Text{Lines: lines}
}

// Plain returns the text with all styling dropped.
func (t Text) Plain() string {
	var b strings.Builder
	for i, line := range t.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, span := range line {
			b.WriteString(span.Text)
		}
	}
	return b.String()
}

// Styled renders every span with the lipgloss style matching its attr.
func (t Text) Styled(r *lipgloss.Renderer) string {
	var b strings.Builder
	for i, line := range t.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, span := range line {
			if span.Text == "" {
				continue
			}
			b.WriteString(Style(r, span.Attr).Render(span.Text))
		}
	}
	return b.String()
}

// Style converts an attr to a lipgloss style. Unset colours are left unset so
// the terminal default shows through.
func Style(r *lipgloss.Renderer, attr render.Attr) lipgloss.Style {
	style := r.NewStyle().Bold(attr.Bold())
	if c, ok := attr.Foreground(); ok {
		style = style.Foreground(lipgloss.Color(c.String()))
	}
	if c, ok := attr.Background(); ok {
		style = style.Background(lipgloss.Color(c.String()))
	}
	return style
}

// NewRenderer returns a lipgloss renderer for out. When trueColour is set the
// colour profile is forced to 24-bit instead of being detected from out.
func NewRenderer(out io.Writer, trueColour bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	if trueColour {
		r.SetColorProfile(termenv.TrueColor)
	}
	return r
}

// Capture renders r into a fresh Target of the given width and returns the
// built text.
func Capture(width int, r render.Renderable) (Text, error) {
	target := New(width)
	if err := render.Render(target, r); err != nil {
		return Text{}, err
	}
	return target.Build(), nil
}

var _ render.Target = (*Target)(nil)
