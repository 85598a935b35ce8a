// Package table lays out rows of spanned, aligned cells into balanced columns
// and renders them as a bordered box.
//
// Rows are added through a Builder. Build computes one width per column so
// that every cell fits in the columns it spans:
//
//	b := table.NewBuilder()
//	b.Row().Left("Name").Space(2).Right("Size").Build()
//	b.Separator()
//	b.Row().Left("initrd").Space(2).Right("42").Build()
//	t := b.Build()
package table

import (
	"strings"
	"unicode/utf8"
)

// Align positions text within the width of a cell.
type Align int

const (
	AlignLeft Align = iota
	AlignCentre
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCentre:
		return "centre"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Cell is one entry of a row.
type Cell struct {
	span     int
	align    Align
	minWidth int
	text     string
}

// Span returns the number of columns the cell occupies.
func (c Cell) Span() int { return c.span }

// Align returns the cell alignment.
func (c Cell) Align() Align { return c.align }

// Text returns the cell text.
func (c Cell) Text() string { return c.text }

// MinWidth returns the effective minimum width: the declared minimum or the
// rune count of the text, whichever is larger.
func (c Cell) MinWidth() int { return c.minWidth }

// Row is either a list of cells or a separator.
type Row struct {
	cells     []Cell
	separator bool
}

// IsSeparator reports whether the row is a separator.
func (r Row) IsSeparator() bool { return r.separator }

// Cells returns the row's cells. It is empty for separators.
func (r Row) Cells() []Cell {
	return append([]Cell(nil), r.cells...)
}

// span returns the number of columns the row covers.
func (r Row) span() int {
	total := 0
	for _, cell := range r.cells {
		total += cell.span
	}
	return total
}

// Format lays the row's cells out against the given column widths. Each cell
// is padded to the summed width of its columns. Separators format as "---".
func (r Row) Format(widths []int) string {
	if r.separator {
		return "---"
	}
	var out strings.Builder
	start := 0
	for _, cell := range r.cells {
		end := start + cell.span
		width := 0
		for _, w := range widths[start:end] {
			width += w
		}
		out.WriteString(pad(cell.text, width, cell.align))
		start = end
	}
	return out.String()
}

func pad(text string, width int, align Align) string {
	gap := width - utf8.RuneCountInString(text)
	if gap <= 0 {
		return text
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + text
	case AlignCentre:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		return text + strings.Repeat(" ", gap)
	}
}

// Table is a built, immutable table.
type Table struct {
	rows   []Row
	widths []int
	width  int
}

// Rows returns the rows in insertion order.
func (t *Table) Rows() []Row {
	return append([]Row(nil), t.rows...)
}

// ColumnWidths returns a copy of the computed column widths.
func (t *Table) ColumnWidths() []int {
	return append([]int(nil), t.widths...)
}

// Width returns the sum of all column widths.
func (t *Table) Width() int {
	return t.width
}

// FormatRow formats row i against the table's column widths.
func (t *Table) FormatRow(i int) string {
	return t.rows[i].Format(t.widths)
}

// Builder accumulates rows in call order.
type Builder struct {
	rows []Row
}

// NewBuilder returns an empty table builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Row starts a new row. The row joins the table when its Build is called.
func (b *Builder) Row() *RowBuilder {
	return &RowBuilder{table: b}
}

// Separator appends a separator row.
func (b *Builder) Separator() *Builder {
	b.rows = append(b.rows, Row{separator: true})
	return b
}

// Build computes the column widths and returns the table.
func (b *Builder) Build() *Table {
	rows := append([]Row(nil), b.rows...)
	widths := balanceWidths(rows)
	total := 0
	for _, w := range widths {
		total += w
	}
	return &Table{rows: rows, widths: widths, width: total}
}

// balanceWidths distributes width over columns so every cell fits. Cells are
// visited by ascending span, so single-column cells are satisfied before any
// wider cell. A cell short of its minimum grows the narrowest of its columns
// one unit at a time, lowest index first on ties, which means wide cells only
// ever add width.
func balanceWidths(rows []Row) []int {
	numCols := 0
	for _, row := range rows {
		if row.separator {
			continue
		}
		if span := row.span(); span > numCols {
			numCols = span
		}
	}

	widths := make([]int, numCols)
	for span := 1; span <= numCols; span++ {
		for _, row := range rows {
			if row.separator {
				continue
			}
			start := 0
			for _, cell := range row.cells {
				end := start + cell.span
				if cell.span == span {
					growToFit(widths[start:end], cell.minWidth)
				}
				start = end
			}
		}
	}
	return widths
}

func growToFit(cols []int, minWidth int) {
	current := 0
	for _, w := range cols {
		current += w
	}
	for current < minWidth {
		narrowest := 0
		for i, w := range cols {
			if w < cols[narrowest] {
				narrowest = i
			}
		}
		cols[narrowest]++
		current++
	}
}

// RowBuilder accumulates cells left to right.
type RowBuilder struct {
	table *Builder
	cells []Cell
}

// Cell appends a cell. A span below 1 counts as 1 and a negative minimum
// width as 0.
func (r *RowBuilder) Cell(span int, align Align, minWidth int, text string) *RowBuilder {
	if span < 1 {
		span = 1
	}
	if n := utf8.RuneCountInString(text); n > minWidth {
		minWidth = n
	}
	if minWidth < 0 {
		minWidth = 0
	}
	r.cells = append(r.cells, Cell{span: span, align: align, minWidth: minWidth, text: text})
	return r
}

// Left appends a left-aligned single-column cell.
func (r *RowBuilder) Left(text string) *RowBuilder {
	return r.Cell(1, AlignLeft, 0, text)
}

// LeftSpan appends a left-aligned cell covering span columns.
func (r *RowBuilder) LeftSpan(span int, text string) *RowBuilder {
	return r.Cell(span, AlignLeft, 0, text)
}

// Centre appends a centred single-column cell.
func (r *RowBuilder) Centre(text string) *RowBuilder {
	return r.Cell(1, AlignCentre, 0, text)
}

// CentreSpan appends a centred cell covering span columns.
func (r *RowBuilder) CentreSpan(span int, text string) *RowBuilder {
	return r.Cell(span, AlignCentre, 0, text)
}

// Right appends a right-aligned single-column cell.
func (r *RowBuilder) Right(text string) *RowBuilder {
	return r.Cell(1, AlignRight, 0, text)
}

// RightSpan appends a right-aligned cell covering span columns.
func (r *RowBuilder) RightSpan(span int, text string) *RowBuilder {
	return r.Cell(span, AlignRight, 0, text)
}

// Space appends an empty cell at least width wide.
func (r *RowBuilder) Space(width int) *RowBuilder {
	return r.Cell(1, AlignLeft, width, "")
}

// SpaceSpan appends an empty cell covering span columns, at least width wide.
func (r *RowBuilder) SpaceSpan(span, width int) *RowBuilder {
	return r.Cell(span, AlignLeft, width, "")
}

// Empty appends an empty single-column cell.
func (r *RowBuilder) Empty() *RowBuilder {
	return r.Cell(1, AlignLeft, 0, "")
}

// EmptySpan appends an empty cell covering span columns.
func (r *RowBuilder) EmptySpan(span int) *RowBuilder {
	return r.Cell(span, AlignLeft, 0, "")
}

// Build commits the row to its table.
func (r *RowBuilder) Build() *Builder {
	r.table.rows = append(r.table.rows, Row{cells: append([]Cell(nil), r.cells...)})
	return r.table
}
