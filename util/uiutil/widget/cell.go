package widget

type Cell struct {
	HAlign HAlign
	VAlign VAlign

	content Content
	row     *Row // not owned, lookup only
}

func NewCell(content Content) *Cell {
	c := &Cell{}
	c.setContent(content)
	return c
}

// Nil content is a valid empty cell (zero size, not drawn).
func (c *Cell) Content() Content {
	return c.content
}

func (c *Cell) SetContent(content Content) {
	c.setContent(content)
	c.contentChanged()
}

// A table set directly as content reports its own changes back to this cell.
func (c *Cell) setContent(content Content) {
	if t, ok := c.content.(*Table); ok && t.parent == c {
		t.parent = nil
	}
	c.content = content
	if t, ok := content.(*Table); ok {
		t.parent = c
	}
}

func (c *Cell) contentChanged() {
	if c.row != nil {
		c.row.structureChanged()
	}
}

// Owning row, nil if the cell was not inserted in a row.
func (c *Cell) Row() *Row {
	return c.row
}

func (c *Cell) SetAlign(h HAlign, v VAlign) *Cell {
	c.HAlign, c.VAlign = h, v
	return c
}
