package border

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/boxterm/internal/colour"
	"github.com/alexisbeaulieu97/boxterm/internal/render"
	"github.com/alexisbeaulieu97/boxterm/internal/render/rendertest"
)

var (
	surround   = colour.New(0, 0, 0)
	background = colour.New(0x50, 0x40, 0x30)
	foreground = colour.New(0xff, 0xff, 0xff)
	style      = NewBoxStyle(surround, background, foreground)
)

func TestBoxStyleAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		render.DefaultAttr().WithBackground(surround).WithForeground(background),
		style.BorderAttr())
	assert.Equal(t,
		render.DefaultAttr().WithBackground(background).WithForeground(foreground),
		style.TextAttr())
	assert.Equal(t, style.TextAttr(), style.WithWidth(3).TextAttr())
}

func TestBorderRenderSequence(t *testing.T) {
	t.Parallel()

	box := style.WithWidth(4)
	outer := render.DefaultAttr().WithBackground(surround).WithForeground(background)
	inner := render.DefaultAttr().WithBackground(background).WithForeground(surround)

	tests := []struct {
		name   string
		border Border
		attr   render.Attr
		text   string
	}{
		{"top", box.Top(), outer, "▅▅▅▅"},
		{"bottom", box.Bottom(), outer, "🮄🮄🮄🮄"},
		{"separator swaps colours", box.Separator(), inner, "────"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := rendertest.NewRecorder(80)
			require.NoError(t, render.Render(rec, tt.border))
			assert.Equal(t, []rendertest.Op{
				rendertest.Attr(tt.attr),
				rendertest.Str(tt.text),
				rendertest.Attr(render.DefaultAttr()),
			}, rec.Ops)
		})
	}
}

func TestBorderAttrMatchesBoxStyleBorderAttr(t *testing.T) {
	t.Parallel()

	box := style.WithWidth(1)
	assert.Equal(t, style.BorderAttr(), box.Top().Attr())
	assert.Equal(t, style.BorderAttr(), box.Bottom().Attr())
	assert.NotEqual(t, style.BorderAttr(), box.Separator().Attr())
}

func TestZeroWidthBorderStillResetsAttr(t *testing.T) {
	t.Parallel()

	rec := rendertest.NewRecorder(80)
	require.NoError(t, render.Render(rec, style.WithWidth(0).Top()))
	require.Len(t, rec.Ops, 3)
	assert.Equal(t, "", rec.Ops[1].Text)
	assert.Equal(t, rendertest.Attr(render.DefaultAttr()), rec.Ops[2])
}

func TestBorderAccessors(t *testing.T) {
	t.Parallel()

	b := New(KindBottom, surround, background, 7)
	assert.Equal(t, KindBottom, b.Kind())
	assert.Equal(t, 7, b.Width())
	assert.Equal(t, "🮄", b.Kind().Glyph())
}
