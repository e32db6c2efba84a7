package tabledoc

import (
	"fmt"
	"image"
	"strings"

	"github.com/jmigpin/tableui/util/uiutil/widget"
)

// Resolved tracks and one line per placed cell, for the table laid out in r.
func Dump(t *widget.Table, r image.Rectangle) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "widths=%v\n", t.Widths(r.Dx()))
	fmt.Fprintf(sb, "heights=%v\n", t.Heights(r.Dy()))
	sb.WriteString(FormatPlacements(t.Placements(r)))
	return sb.String()
}

func FormatPlacements(ps []widget.Placement) string {
	sb := &strings.Builder{}
	for _, p := range ps {
		fmt.Fprintf(sb, "%d,%d track=%v bounds=%v\n", p.Row, p.Col, p.Track, p.Bounds)
	}
	return sb.String()
}
