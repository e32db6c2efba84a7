package widget

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/jmigpin/tableui/util/fontutil"
	"github.com/jmigpin/tableui/util/imageutil"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Text content. Auto sizes measure to the text extent.
type Label struct {
	EmbedContent
	Text string
	Face *fontutil.FontFace
	Fg   color.Color
	Bg   color.Color // not painted if nil

	ctx ImageContext
}

func NewLabel(ctx ImageContext, text string) *Label {
	l := &Label{ctx: ctx, Text: text}
	l.Sz = SizeContent
	l.Fg = color.Black
	return l
}

func (l *Label) face() *fontutil.FontFace {
	if l.Face == nil {
		l.Face = fontutil.DefaultFontFace()
	}
	return l.Face
}

func (l *Label) MeasureWidth(avail int, correction float64) int {
	return measureFixed(l.Sz.Width, l.face().StringSize(l.Text).X)
}

func (l *Label) MeasureHeight(avail int, correction float64) int {
	return measureFixed(l.Sz.Height, l.face().StringSize(l.Text).Y)
}

func (l *Label) Draw(r image.Rectangle) {
	if l.ctx == nil {
		return
	}
	img := clipImage(l.ctx.Image(), r)
	if l.Bg != nil {
		imageutil.FillRectangle(img, r, l.Bg)
	}

	ff := l.face()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(l.Fg),
		Face: ff.Face,
	}
	pen := fixed.P(r.Min.X, r.Min.Y).Add(ff.BaseLine())
	for _, line := range strings.Split(l.Text, "\n") {
		d.Dot = pen
		d.DrawString(line)
		pen.Y += ff.LineHeight()
	}
}

//----------

// Keeps drawing inside r, if the image supports sub images.
func clipImage(img draw.Image, r image.Rectangle) draw.Image {
	type subImager interface {
		SubImage(image.Rectangle) image.Image
	}
	if si, ok := img.(subImager); ok {
		if u, ok := si.SubImage(r).(draw.Image); ok {
			return u
		}
	}
	return img
}
