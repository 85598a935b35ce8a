package table

import (
	"github.com/alexisbeaulieu97/boxterm/internal/border"
	"github.com/alexisbeaulieu97/boxterm/internal/render"
)

// Box renders a table inside a bordered box. The box is four cells wider than
// the table: two cells of padding on each side.
type Box struct {
	style border.BoxStyle
	table *Table
}

// NewBox binds a table to a box style.
func NewBox(style border.BoxStyle, t *Table) Box {
	return Box{style: style, table: t}
}

// Render draws the top rule, every row (separators as interior rules) and the
// bottom rule. Each line is indented by one cell.
func (b Box) Render(t render.Target) error {
	frame := b.style.WithWidth(b.table.Width() + 4)
	p := render.NewPrinter(t)

	p.Str(" ").Push(frame.Top()).Newline()

	for _, row := range b.table.rows {
		if row.IsSeparator() {
			p.Str(" ").Push(frame.Separator()).Newline()
			continue
		}
		p.Str(" ").
			Attr(b.style.TextAttr()).
			Str("  ").
			Str(row.Format(b.table.widths)).
			Str("  ").
			Attr(render.DefaultAttr()).
			Newline()
	}

	p.Str(" ").Push(frame.Bottom()).Newline()
	return p.Err()
}
