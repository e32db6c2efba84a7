package widget

import (
	"image"
)

// Anything that can be placed in a table cell.
type Content interface {
	// Declared width/height. Read on every layout pass, can change between frames.
	Size() Size

	// Measured size given the available extent. The correction factor scales the
	// available extent (partial extents given by nested layouts).
	MeasureWidth(avail int, correction float64) int
	MeasureHeight(avail int, correction float64) int

	Draw(r image.Rectangle)
}

//----------

// Default content implementation, other widgets should embed it and override
// what they need.
type EmbedContent struct {
	Sz Size
}

func (ec *EmbedContent) Size() Size {
	return ec.Sz
}

func (ec *EmbedContent) MeasureWidth(avail int, correction float64) int {
	return measureFixed(ec.Sz.Width, 0)
}

func (ec *EmbedContent) MeasureHeight(avail int, correction float64) int {
	return measureFixed(ec.Sz.Height, 0)
}

func (ec *EmbedContent) Draw(r image.Rectangle) {
}

//----------

// Returns the fixed value of an absolute size, or the intrinsic size otherwise.
func measureFixed(s SizeSpec, intrinsic int) int {
	if v, ok := s.fixed(); ok {
		return v
	}
	return intrinsic
}

func correctedExtent(avail int, correction float64) int {
	return int(float64(avail) * correction)
}
