// Table documents: TOML descriptions of a table, built into a widget.Table.
//
//	spacing = [10, 5]
//	[[row]]
//	  [[row.cell]]
//	  kind = "label"
//	  text = "name"
//	  halign = "right"
//	  [[row.cell]]
//	  kind = "rect"
//	  width = "1*"
//	  color = "steelblue"
//
// Cell kinds: "" (empty cell), "rect", "label", "table" (nested document in the
// "table" key).
package tabledoc

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jmigpin/tableui/util/fontutil"
	"github.com/jmigpin/tableui/util/imageutil"
	"github.com/jmigpin/tableui/util/uiutil/widget"
	"github.com/pkg/errors"
)

type Doc struct {
	Width      string `toml:"width"`
	Height     string `toml:"height"`
	Spacing    []int  `toml:"spacing"` // [x, y] or [both]
	Background string `toml:"background"`

	Rows []RowDoc `toml:"row"`
}

type RowDoc struct {
	Cells []CellDoc `toml:"cell"`
}

type CellDoc struct {
	Kind   string `toml:"kind"`
	Width  string `toml:"width"`
	Height string `toml:"height"`
	HAlign string `toml:"halign"`
	VAlign string `toml:"valign"`

	Text     string  `toml:"text"`
	FontSize float64 `toml:"font_size"`
	Color    string  `toml:"color"`  // rect fill, label text
	Bg       string  `toml:"bg"`     // label background
	Border   string  `toml:"border"` // rect border

	Pad      []int  `toml:"pad"` // [all], [vertical, horizontal] or [top, right, bottom, left]
	PadColor string `toml:"pad_color"`

	Table *Doc `toml:"table"`
}

//----------

func Decode(r io.Reader) (*Doc, error) {
	doc := &Doc{}
	md, err := toml.NewDecoder(r).Decode(doc)
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	if u := md.Undecoded(); len(u) > 0 {
		keys := make([]string, len(u))
		for i, k := range u {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %v", strings.Join(keys, ", "))
	}
	return doc, nil
}

func DecodeFile(filename string) (*Doc, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return doc, nil
}

//----------

func (doc *Doc) BackgroundColor() (color.Color, error) {
	if doc.Background == "" {
		return color.White, nil
	}
	return imageutil.ParseColor(doc.Background)
}

// Builds the table. Content draws into ctx (can be nil, ex: layout only).
func (doc *Doc) Build(ctx widget.ImageContext) (*widget.Table, error) {
	t := widget.NewTable()

	sz, err := parseSize(doc.Width, doc.Height, "*")
	if err != nil {
		return nil, err
	}
	t.Sz = sz

	switch len(doc.Spacing) {
	case 0:
	case 1:
		t.Spacing = image.Point{doc.Spacing[0], doc.Spacing[0]}
	case 2:
		t.Spacing = image.Point{doc.Spacing[0], doc.Spacing[1]}
	default:
		return nil, fmt.Errorf("bad spacing: %v", doc.Spacing)
	}

	for ri, rd := range doc.Rows {
		row := widget.NewRow()
		for ci, cd := range rd.Cells {
			cell, err := cd.build(ctx)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d cell %d", ri, ci)
			}
			row.Append(cell)
		}
		t.AppendRow(row)
	}
	return t, nil
}

func (cd *CellDoc) build(ctx widget.ImageContext) (*widget.Cell, error) {
	ha, err := widget.ParseHAlign(cd.HAlign)
	if err != nil {
		return nil, err
	}
	va, err := widget.ParseVAlign(cd.VAlign)
	if err != nil {
		return nil, err
	}

	content, err := cd.buildContent(ctx)
	if err != nil {
		return nil, err
	}
	if content != nil && len(cd.Pad) > 0 {
		content, err = cd.wrapPad(ctx, content)
		if err != nil {
			return nil, err
		}
	}

	cell := widget.NewCell(content)
	cell.SetAlign(ha, va)
	return cell, nil
}

func (cd *CellDoc) buildContent(ctx widget.ImageContext) (widget.Content, error) {
	switch cd.Kind {
	case "", "empty":
		return nil, nil
	case "rect":
		r := widget.NewRectangle(ctx)
		sz, err := parseSize(cd.Width, cd.Height, "*")
		if err != nil {
			return nil, err
		}
		r.Sz = sz
		if r.Color, err = parseColor(cd.Color, nil); err != nil {
			return nil, err
		}
		if cd.Border != "" {
			if r.Border, err = imageutil.ParseColor(cd.Border); err != nil {
				return nil, err
			}
		}
		return r, nil
	case "label":
		l := widget.NewLabel(ctx, cd.Text)
		sz, err := parseSize(cd.Width, cd.Height, "auto")
		if err != nil {
			return nil, err
		}
		l.Sz = sz
		if l.Fg, err = parseColor(cd.Color, color.Black); err != nil {
			return nil, err
		}
		if cd.Bg != "" {
			if l.Bg, err = imageutil.ParseColor(cd.Bg); err != nil {
				return nil, err
			}
		}
		if cd.FontSize < 0 {
			return nil, fmt.Errorf("bad font size: %v", cd.FontSize)
		}
		if cd.FontSize > 0 {
			l.Face = fontutil.DefaultFont().FontFace2(cd.FontSize)
		}
		return l, nil
	case "table":
		if cd.Table == nil {
			return nil, errors.New("table cell without table")
		}
		// the cell size keys, if present, override the nested declared size
		nested := *cd.Table
		if cd.Width != "" {
			nested.Width = cd.Width
		}
		if cd.Height != "" {
			nested.Height = cd.Height
		}
		t, err := nested.Build(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "table")
		}
		return t, nil
	}
	return nil, fmt.Errorf("unknown cell kind: %q", cd.Kind)
}

func (cd *CellDoc) wrapPad(ctx widget.ImageContext, content widget.Content) (widget.Content, error) {
	p := widget.NewPad(ctx, content)
	switch v := cd.Pad; len(v) {
	case 1:
		p.SetAll(v[0])
	case 2:
		p.Set(v[0], v[1], v[0], v[1])
	case 4:
		p.Set(v[0], v[1], v[2], v[3])
	default:
		return nil, fmt.Errorf("bad pad: %v", cd.Pad)
	}
	if cd.PadColor != "" {
		c, err := imageutil.ParseColor(cd.PadColor)
		if err != nil {
			return nil, err
		}
		p.Color = c
	}
	return p, nil
}

//----------

func parseSize(w, h string, def string) (widget.Size, error) {
	if w == "" {
		w = def
	}
	if h == "" {
		h = def
	}
	ws, err := widget.ParseSizeSpec(w)
	if err != nil {
		return widget.Size{}, err
	}
	hs, err := widget.ParseSizeSpec(h)
	if err != nil {
		return widget.Size{}, err
	}
	return widget.Size{Width: ws, Height: hs}, nil
}

func parseColor(s string, def color.Color) (color.Color, error) {
	if s == "" {
		return def, nil
	}
	return imageutil.ParseColor(s)
}
