package css

import "github.com/UNO-SOFT/tablesheet/style"

const (
	PropWidth  = "width"
	PropHeight = "height"
)

// Width sets the width of the cell's column.
type Width struct{}

func (Width) Parse(p Properties) Properties { return parseLength(p, PropWidth) }

func (Width) Apply(*style.Format, Properties) {}

func (Width) ApplyCell(t Target, p Properties) error {
	if pt, ok := ToPoints(p[PropWidth]); ok {
		return t.SetColWidth(pt)
	}
	return nil
}

// Height sets the height of the cell's row.
type Height struct{}

func (Height) Parse(p Properties) Properties { return parseLength(p, PropHeight) }

func (Height) Apply(*style.Format, Properties) {}

func (Height) ApplyCell(t Target, p Properties) error {
	if pt, ok := ToPoints(p[PropHeight]); ok {
		return t.SetRowHeight(pt)
	}
	return nil
}

func parseLength(p Properties, name string) Properties {
	out := make(Properties, 1)
	if pt, ok := ToPoints(p[name]); ok && pt > 0 {
		out[name] = formatPoints(pt)
	}
	return out
}
