package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/boxterm/internal/colour"
	"github.com/alexisbeaulieu97/boxterm/internal/render"
	"github.com/alexisbeaulieu97/boxterm/internal/render/rendertest"
	apperrors "github.com/alexisbeaulieu97/boxterm/pkg/errors"
)

func TestAttrBuilderReturnsCopies(t *testing.T) {
	t.Parallel()

	red := colour.New(0xff, 0, 0)
	base := render.DefaultAttr()
	styled := base.WithForeground(red).WithBold(true)

	_, hasFg := base.Foreground()
	assert.False(t, hasFg)
	assert.False(t, base.Bold())

	fg, hasFg := styled.Foreground()
	assert.True(t, hasFg)
	assert.Equal(t, red, fg)
	assert.True(t, styled.Bold())

	_, hasBg := styled.Background()
	assert.False(t, hasBg)
	assert.Equal(t, render.Attr{}, base)
}

func TestUnsetColourDiffersFromBlack(t *testing.T) {
	t.Parallel()

	black := render.DefaultAttr().WithBackground(colour.New(0, 0, 0))
	assert.NotEqual(t, render.DefaultAttr(), black)
}

func TestLineRendersPartsThenNewline(t *testing.T) {
	t.Parallel()

	attr := render.DefaultAttr().WithBold(true)
	rec := rendertest.NewRecorder(10)
	require.NoError(t, render.Render(rec, render.Line{attr, render.Text("hi"), render.DefaultAttr()}))

	assert.Equal(t, []rendertest.Op{
		rendertest.Attr(attr),
		rendertest.Str("hi"),
		rendertest.Attr(render.DefaultAttr()),
		rendertest.Newline(),
	}, rec.Ops)
	assert.Equal(t, []string{"hi"}, rec.Lines())
}

func TestPrinterStopsAfterFirstFailure(t *testing.T) {
	t.Parallel()

	target := rendertest.NewFailingTarget(10, 1)
	err := render.NewPrinter(target).
		Attr(render.DefaultAttr()).
		Str("lost").
		Newline().
		Str("never sent").
		Err()

	var renderErr *apperrors.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, render.OpPushStr, renderErr.Op)
	require.ErrorIs(t, err, rendertest.ErrInjected)
	assert.Equal(t, 2, target.Calls())
	assert.Len(t, target.Ops, 1)
}

func TestPrinterPropagatesNestedFailureUnchanged(t *testing.T) {
	t.Parallel()

	target := rendertest.NewFailingTarget(10, 2)
	err := render.NewPrinter(target).
		Str("a").
		Push(render.Line{render.Text("b"), render.Text("c")}).
		Str("d").
		Err()

	var renderErr *apperrors.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, render.OpPushStr, renderErr.Op)
	assert.Equal(t, rendertest.ErrInjected, renderErr.Err)
	assert.Equal(t, 3, target.Calls())
}

func TestRecorderLinesIncludesUnterminatedLine(t *testing.T) {
	t.Parallel()

	rec := rendertest.NewRecorder(5)
	require.NoError(t, render.NewPrinter(rec).Str("a").Newline().Newline().Str("b").Err())
	assert.Equal(t, []string{"a", "", "b"}, rec.Lines())
	assert.Equal(t, 5, rec.Width())
}
