package widget

import "image"

// Allows calculations to be done X oriented, and have them translated to the Y
// axis. The table resolver runs the same code for columns (XAxis) and rows
// (YAxis).
type Axis uint8

const (
	XAxis Axis = iota
	YAxis
)

func (a Axis) String() string {
	if a == YAxis {
		return "y"
	}
	return "x"
}

func (a Axis) Point(p image.Point) int {
	if a == YAxis {
		return p.Y
	}
	return p.X
}

// Main axis size of the rectangle.
func (a Axis) Dim(r image.Rectangle) int {
	if a == YAxis {
		return r.Dy()
	}
	return r.Dx()
}

// Measures content on this axis. Nil content measures to zero.
func (a Axis) measure(c Content, avail int, correction float64) int {
	if c == nil {
		return 0
	}
	if a == YAxis {
		return c.MeasureHeight(avail, correction)
	}
	return c.MeasureWidth(avail, correction)
}

// Declared size of the content on this axis. Nil content reports a zero absolute
// size.
func (a Axis) spec(c Content) SizeSpec {
	if c == nil {
		return Abs(0)
	}
	return c.Size().Axis(a)
}
