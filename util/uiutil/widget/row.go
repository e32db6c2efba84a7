package widget

type Row struct {
	cells []*Cell
	table *Table // not owned, lookup only
}

func NewRow(cells ...*Cell) *Row {
	r := &Row{}
	r.Append(cells...)
	return r
}

// Convenience: creates one cell per content.
func NewContentRow(contents ...Content) *Row {
	r := &Row{}
	for _, c := range contents {
		r.Append(NewCell(c))
	}
	return r
}

//----------

func (r *Row) Append(cells ...*Cell) {
	for _, c := range cells {
		r.InsertBefore(c, nil)
	}
}

// Inserts at the end if mark is nil.
func (r *Row) InsertBefore(c, mark *Cell) {
	if c.row != nil {
		panic("cell already has a row")
	}
	i := len(r.cells)
	if mark != nil {
		i = r.index(mark)
		if i < 0 {
			panic("mark is not a cell of this row")
		}
	}

	r.cells = append(r.cells, nil)
	copy(r.cells[i+1:], r.cells[i:])
	r.cells[i] = c
	c.row = r

	r.structureChanged()
}

func (r *Row) Remove(c *Cell) {
	i := r.index(c)
	if i < 0 {
		panic("not a cell of this row")
	}
	copy(r.cells[i:], r.cells[i+1:])
	r.cells[len(r.cells)-1] = nil
	r.cells = r.cells[:len(r.cells)-1]
	c.row = nil

	r.structureChanged()
}

//----------

func (r *Row) CellsLen() int {
	return len(r.cells)
}

// Returns nil if out of range.
func (r *Row) Cell(i int) *Cell {
	if i < 0 || i >= len(r.cells) {
		return nil
	}
	return r.cells[i]
}

func (r *Row) Cells() []*Cell {
	return append([]*Cell(nil), r.cells...)
}

// Owning table, nil if the row was not inserted in a table.
func (r *Row) Table() *Table {
	return r.table
}

func (r *Row) index(c *Cell) int {
	for i, u := range r.cells {
		if u == c {
			return i
		}
	}
	return -1
}

//----------

// Cell changes affect every track of the owning table.
func (r *Row) structureChanged() {
	if r.table != nil {
		r.table.structureChanged()
	}
}
