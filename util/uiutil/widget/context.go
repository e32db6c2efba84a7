package widget

import (
	"image/draw"
)

// Drawing target for content widgets. Implemented by the frame driver.
type ImageContext interface {
	Image() draw.Image
}
