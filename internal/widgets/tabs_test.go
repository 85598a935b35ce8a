package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/boxterm/internal/border"
	"github.com/alexisbeaulieu97/boxterm/internal/colour"
	"github.com/alexisbeaulieu97/boxterm/internal/render"
	"github.com/alexisbeaulieu97/boxterm/internal/render/rendertest"
)

func TestBoxTabsRender(t *testing.T) {
	t.Parallel()

	other := border.NewBoxStyle(colour.MustParse("#000"), colour.MustParse("#246"), colour.MustParse("#fff"))
	tabs := NewBoxTabs([]BoxTab{
		{Label: "one", Style: style},
		{Label: "three", Style: other},
	})

	rec := rendertest.NewRecorder(80)
	require.NoError(t, render.Render(rec, tabs))

	assert.Equal(t, []string{
		" ▅▅▅▅▅▅▅ ▅▅▅▅▅▅▅▅▅",
		"   one     three  ",
		" 🮄🮄🮄🮄🮄🮄🮄 🮄🮄🮄🮄🮄🮄🮄🮄🮄",
	}, rec.Lines())

	var textAttrs []render.Attr
	for _, op := range rec.Ops {
		if op.Kind == rendertest.OpAttr && op.Attr != render.DefaultAttr() {
			if op.Attr == style.TextAttr() || op.Attr == other.TextAttr() {
				textAttrs = append(textAttrs, op.Attr)
			}
		}
	}
	assert.Equal(t, []render.Attr{style.TextAttr(), other.TextAttr()}, textAttrs)
}

func TestBoxTabsEmpty(t *testing.T) {
	t.Parallel()

	rec := rendertest.NewRecorder(80)
	require.NoError(t, render.Render(rec, NewBoxTabs(nil)))
	assert.Equal(t, []string{"", "", ""}, rec.Lines())
}

func TestSlimTabsRender(t *testing.T) {
	t.Parallel()

	bg := render.DefaultAttr().WithBackground(colour.MustParse("#333"))
	active := render.DefaultAttr().WithBackground(colour.MustParse("#c42")).WithBold(true)
	idle := bg.WithForeground(colour.MustParse("#aaa"))

	rec := rendertest.NewRecorder(16)
	require.NoError(t, render.Render(rec, NewSlimTabs(bg, []SlimTab{
		{Label: "a", Attr: active},
		{Label: "bb", Attr: idle},
	})))

	assert.Equal(t, []rendertest.Op{
		rendertest.Attr(bg), rendertest.Str(" "),
		rendertest.Attr(active), rendertest.Str(" "), rendertest.Str("a"), rendertest.Str(" "),
		rendertest.Attr(bg), rendertest.Str(" "),
		rendertest.Attr(idle), rendertest.Str(" "), rendertest.Str("bb"), rendertest.Str(" "),
		rendertest.Attr(bg), rendertest.Str("       "),
		rendertest.Newline(),
	}, rec.Ops)
	assert.Equal(t, []string{"  a   bb        "}, rec.Lines())
}

func TestSlimTabsWiderThanTarget(t *testing.T) {
	t.Parallel()

	bg := render.DefaultAttr()
	rec := rendertest.NewRecorder(4)
	require.NoError(t, render.Render(rec, NewSlimTabs(bg, []SlimTab{{Label: "long label", Attr: bg}})))

	assert.Equal(t, []string{"  long label "}, rec.Lines())
	last := rec.Ops[len(rec.Ops)-2]
	assert.Equal(t, rendertest.Attr(bg), last)
}
