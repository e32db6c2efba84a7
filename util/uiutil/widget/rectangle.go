package widget

import (
	"image"
	"image/color"

	"github.com/jmigpin/tableui/util/imageutil"
)

// Filled box. Auto sizes measure to zero.
type Rectangle struct {
	EmbedContent
	Color  color.Color
	Border color.Color
	ctx    ImageContext
}

func NewRectangle(ctx ImageContext) *Rectangle {
	r := &Rectangle{ctx: ctx}
	r.Sz = SizeParent
	return r
}

func (r *Rectangle) Draw(b image.Rectangle) {
	if r.ctx == nil {
		return
	}
	img := r.ctx.Image()
	imageutil.FillRectangle(img, b, r.Color)
	if r.Border != nil {
		imageutil.BorderRectangle(img, b, r.Border, 1)
	}
}
