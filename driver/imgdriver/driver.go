package imgdriver

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/jmigpin/tableui/driver"
	"github.com/jmigpin/tableui/util/imageutil"
	"github.com/pkg/errors"
)

// Offscreen window: frames are drawn into an in-memory image.
type Driver struct {
	Background color.Color
	Logf       func(format string, args ...interface{})

	img    *image.RGBA
	frames int
}

var _ driver.Window = (*Driver)(nil)

func NewDriver(size image.Point) *Driver {
	d := &Driver{
		Background: color.White,
		Logf:       func(string, ...interface{}) {},
	}
	d.Resize(size)
	return d
}

func (d *Driver) Image() draw.Image {
	return d.img
}

func (d *Driver) Bounds() image.Rectangle {
	return d.img.Bounds()
}

func (d *Driver) Resize(size image.Point) {
	size = imageutil.MaxPoint(size, image.Point{})
	if d.img != nil && d.img.Bounds().Size() == size {
		return
	}
	d.img = image.NewRGBA(image.Rectangle{Max: size})
	d.Logf("resize: %v", size)
}

// Clears to the background and draws the root into the whole image.
func (d *Driver) Frame(root driver.Drawer) {
	b := d.img.Bounds()
	if d.Background != nil {
		imageutil.FillRectangle(d.img, b, d.Background)
	}
	root.Draw(b)
	d.frames++
	d.Logf("frame %d: %v", d.frames, b)
}

func (d *Driver) Frames() int {
	return d.frames
}

//----------

func (d *Driver) EncodePNG(w io.Writer) error {
	return png.Encode(w, d.img)
}

func (d *Driver) SavePNG(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := d.EncodePNG(f); err != nil {
		f.Close()
		return errors.Wrap(err, "png encode")
	}
	return f.Close()
}
