package widget

import (
	"image"

	"github.com/jmigpin/tableui/util/mathutil"
)

type Placement struct {
	Row, Col int
	Cell     *Cell
	Track    image.Rectangle // column width by row height
	Bounds   image.Rectangle // content bounds, aligned inside the track
}

// Places the cells inside r. Cells without content, or in a track with no width
// or height, are not placed.
func (t *Table) Placements(r image.Rectangle) []Placement {
	widths := t.sizes(XAxis, r.Dx(), 1)
	heights := t.sizes(YAxis, r.Dy(), 1)

	ps := []Placement{}
	y := r.Min.Y
	for ri, row := range t.rows {
		if ri >= len(heights) {
			break
		}
		h := heights[ri]
		x := r.Min.X
		for ci, w := range widths {
			cell := row.Cell(ci)
			if cell != nil && cell.content != nil && w > 0 && h > 0 {
				ps = append(ps, placeCell(cell, ri, ci, image.Rect(x, y, x+w, y+h)))
			}
			x += w + t.Spacing.X
		}
		y += h + t.Spacing.Y
	}
	return ps
}

func placeCell(cell *Cell, row, col int, track image.Rectangle) Placement {
	w, h := track.Dx(), track.Dy()
	cw := contentExtent(cell.content, XAxis, w)
	ch := contentExtent(cell.content, YAxis, h)

	min := track.Min.Add(image.Point{cell.HAlign.offset(w, cw), cell.VAlign.offset(h, ch)})
	bounds := image.Rectangle{min, min.Add(image.Point{cw, ch})}

	return Placement{Row: row, Col: col, Cell: cell, Track: track, Bounds: bounds}
}

// Absolute content gets its own measured size (limited to the track), relative
// content gets the whole track.
func contentExtent(c Content, axis Axis, track int) int {
	if axis.spec(c).IsAbsolute() {
		return mathutil.LimitPositive(axis.measure(c, track, 1), track)
	}
	return track
}
