package driver

import (
	"image"
	"image/draw"
)

// Host side of the widget layer: owns the drawing target and pumps frames.
type Window interface {
	Image() draw.Image // implements widget.ImageContext
	Resize(size image.Point)

	// Draws the root into the whole image, once per call.
	Frame(root Drawer)
}

type Drawer interface {
	Draw(r image.Rectangle)
}
