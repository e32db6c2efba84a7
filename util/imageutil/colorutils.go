package imageutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

func RgbaColor(c color.Color) color.RGBA {
	if u, ok := c.(color.RGBA); ok {
		return u
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{
		uint8(r >> 8),
		uint8(g >> 8),
		uint8(b >> 8),
		uint8(a >> 8),
	}
}

//----------

func RgbaFromInt(u int) color.RGBA {
	v := u & 0xffffff
	r := uint8((v << 0) >> 16)
	g := uint8((v << 8) >> 16)
	b := uint8((v << 16) >> 16)
	return color.RGBA{r, g, b, 255}
}

//----------

func SprintRgb(c color.Color) string {
	rgba := RgbaColor(c)
	return fmt.Sprintf("%x %x %x", rgba.R, rgba.G, rgba.B)
}

//----------

// Accepts svg color names ("steelblue") and hex values ("#4682b4", "0x4682b4").
func ParseColor(s string) (color.RGBA, error) {
	u := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[u]; ok {
		return c, nil
	}
	h := strings.TrimPrefix(strings.TrimPrefix(u, "#"), "0x")
	if len(h) == 6 {
		if v, err := strconv.ParseUint(h, 16, 32); err == nil {
			return RgbaFromInt(int(v)), nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color: %q", s)
}
