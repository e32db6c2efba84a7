package widget

import (
	"image"

	"github.com/jmigpin/tableui/util/mathutil"
)

// Grid of rows and cells. Rows can be ragged: the number of columns is the
// biggest number of cells in a row, and missing cells behave as empty cells.
//
// Column widths and row heights are resolved once per available extent and
// cached (see Widths/Heights). The table is itself content, and can be
// nested in another table's cell. A table that is the direct content of a
// cell invalidates the parent table on changes; when wrapped by other
// content (ex: Pad), the parent needs an explicit Invalidate.
type Table struct {
	EmbedContent
	Spacing image.Point // between columns (X) and rows (Y)

	rows       []*Row
	cache      layoutCache
	placements []Placement // last drawn
	parent     *Cell       // not owned, set when nested
}

func NewTable(rows ...*Row) *Table {
	t := &Table{}
	t.Sz = SizeParent
	t.AppendRow(rows...)
	return t
}

//----------

func (t *Table) AppendRow(rows ...*Row) {
	for _, r := range rows {
		t.InsertRowBefore(r, nil)
	}
}

// Inserts at the end if mark is nil.
func (t *Table) InsertRowBefore(r, mark *Row) {
	if r.table != nil {
		panic("row already has a table")
	}
	i := len(t.rows)
	if mark != nil {
		i = t.rowIndex(mark)
		if i < 0 {
			panic("mark is not a row of this table")
		}
	}

	t.rows = append(t.rows, nil)
	copy(t.rows[i+1:], t.rows[i:])
	t.rows[i] = r
	r.table = t

	t.structureChanged()
}

func (t *Table) RemoveRow(r *Row) {
	i := t.rowIndex(r)
	if i < 0 {
		panic("not a row of this table")
	}
	copy(t.rows[i:], t.rows[i+1:])
	t.rows[len(t.rows)-1] = nil
	t.rows = t.rows[:len(t.rows)-1]
	r.table = nil

	t.structureChanged()
}

func (t *Table) rowIndex(r *Row) int {
	for i, u := range t.rows {
		if u == r {
			return i
		}
	}
	return -1
}

//----------

func (t *Table) Rows() []*Row {
	return append([]*Row(nil), t.rows...)
}

func (t *Table) RowsLen() int {
	return len(t.rows)
}

// Returns nil if out of range.
func (t *Table) Row(i int) *Row {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i]
}

func (t *Table) ColumnsLen() int {
	n := 0
	for _, r := range t.rows {
		if l := r.CellsLen(); l > n {
			n = l
		}
	}
	return n
}

//----------

// Returns nil if out of range.
func (t *Table) CellsByRow(row int) []*Cell {
	r := t.Row(row)
	if r == nil {
		return nil
	}
	return r.Cells()
}

// One entry per row, with nil entries for rows that are shorter than the column.
// Returns nil if out of range.
func (t *Table) CellsByColumn(col int) []*Cell {
	if col < 0 || col >= t.ColumnsLen() {
		return nil
	}
	cells := make([]*Cell, len(t.rows))
	for i, r := range t.rows {
		cells[i] = r.Cell(col)
	}
	return cells
}

// Returns nil if out of range, or if the row has no cell at that column.
func (t *Table) Cell(row, col int) *Cell {
	r := t.Row(row)
	if r == nil {
		return nil
	}
	return r.Cell(col)
}

//----------

// Contents of the column (XAxis) or row (YAxis) at index i.
func (t *Table) track(axis Axis, i int) []Content {
	var cells []*Cell
	if axis == YAxis {
		cells = t.CellsByRow(i)
	} else {
		cells = t.CellsByColumn(i)
	}
	u := make([]Content, len(cells))
	for k, c := range cells {
		if c != nil {
			u[k] = c.content
		}
	}
	return u
}

func (t *Table) tracks(axis Axis) [][]Content {
	n := t.ColumnsLen()
	if axis == YAxis {
		n = len(t.rows)
	}
	u := make([][]Content, n)
	for i := range u {
		u[i] = t.track(axis, i)
	}
	return u
}

//----------

func (t *Table) MeasureWidth(avail int, correction float64) int {
	return t.measure(XAxis, avail, correction)
}

func (t *Table) MeasureHeight(avail int, correction float64) int {
	return t.measure(YAxis, avail, correction)
}

func (t *Table) measure(axis Axis, avail int, correction float64) int {
	sizes := t.sizes(axis, avail, correction)
	e := tracksExtent(sizes, axis.Point(t.Spacing))
	return mathutil.LimitPositive(e, avail)
}

//----------

func (t *Table) Draw(r image.Rectangle) {
	t.placements = t.Placements(r)
	for _, p := range t.placements {
		p.Cell.content.Draw(p.Bounds)
	}
}

// Hit-tests a point against the cells placed by the last Draw.
func (t *Table) CellAt(p image.Point) (Placement, bool) {
	for _, u := range t.placements {
		if p.In(u.Track) {
			return u, true
		}
	}
	return Placement{}, false
}
