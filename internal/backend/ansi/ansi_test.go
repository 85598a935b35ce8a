package ansi

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/boxterm/internal/border"
	"github.com/alexisbeaulieu97/boxterm/internal/colour"
	"github.com/alexisbeaulieu97/boxterm/internal/render"
	"github.com/alexisbeaulieu97/boxterm/internal/table"
	apperrors "github.com/alexisbeaulieu97/boxterm/pkg/errors"
)

func TestSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		attr     render.Attr
		expected string
	}{
		{
			name:     "default resets everything",
			attr:     render.DefaultAttr(),
			expected: "\x1b[39m\x1b[49m\x1b[22m",
		},
		{
			name:     "foreground only",
			attr:     render.DefaultAttr().WithForeground(colour.New(1, 2, 3)),
			expected: "\x1b[38;2;1;2;3m\x1b[49m\x1b[22m",
		},
		{
			name: "all set",
			attr: render.DefaultAttr().
				WithBackground(colour.New(255, 0, 128)).
				WithForeground(colour.New(0, 0, 0)).
				WithBold(true),
			expected: "\x1b[38;2;0;0;0m\x1b[48;2;255;0;128m\x1b[1m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sequence(tt.attr))
		})
	}
}

func TestTargetWritesPrimitives(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	target := New(buf, 42)
	assert.Equal(t, 42, target.Width())

	err := render.NewPrinter(target).
		Attr(render.DefaultAttr().WithBold(true)).
		Str("hi").
		Newline().
		Err()
	require.NoError(t, err)
	assert.Equal(t, "\x1b[39m\x1b[49m\x1b[1mhi\n", buf.String())
}

func TestTargetRendersTableBox(t *testing.T) {
	t.Parallel()

	b := table.NewBuilder()
	b.Row().Left("a").Build()
	style := border.NewBoxStyle(colour.New(0, 0, 0), colour.New(0x50, 0x40, 0x30), colour.New(0xff, 0xff, 0xff))

	buf := &bytes.Buffer{}
	require.NoError(t, render.Render(New(buf, 80), table.NewBox(style, b.Build())))

	rule := "\x1b[38;2;80;64;48m\x1b[48;2;0;0;0m\x1b[22m"
	text := "\x1b[38;2;255;255;255m\x1b[48;2;80;64;48m\x1b[22m"
	reset := "\x1b[39m\x1b[49m\x1b[22m"
	expected := " " + rule + "▅▅▅▅▅" + reset + "\n" +
		" " + text + "  a  " + reset + "\n" +
		" " + rule + "🮄🮄🮄🮄🮄" + reset + "\n"
	assert.Equal(t, expected, buf.String())
}

type failingWriter struct {
	after  int
	writes int
}

var errClosed = errors.New("stream closed")

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.writes >= f.after {
		return 0, errClosed
	}
	f.writes++
	return len(p), nil
}

func TestTargetPropagatesWriteFailure(t *testing.T) {
	t.Parallel()

	out := &failingWriter{after: 1}
	err := render.NewPrinter(New(out, 80)).Str("ok").Newline().Str("never").Err()

	var renderErr *apperrors.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, render.OpNewline, renderErr.Op)
	require.ErrorIs(t, err, errClosed)
	assert.Equal(t, 1, out.writes)
}
