package css

import "github.com/UNO-SOFT/tablesheet/style"

const (
	TextAlign     = "text-align"
	VerticalAlign = "vertical-align"
)

var (
	hAligns = map[string]string{
		"left": "left", "start": "left",
		"center": "center", "middle": "center", "-webkit-center": "center",
		"right": "right", "end": "right",
		"justify": "justify",
	}
	vAligns = map[string]string{
		"top": "top", "text-top": "top",
		"middle": "center", "center": "center",
		"bottom": "bottom", "text-bottom": "bottom", "baseline": "bottom",
	}
)

// Align handles text-align and vertical-align.
type Align struct{}

func (Align) Parse(p Properties) Properties {
	out := make(Properties, 2)
	if v, ok := hAligns[p[TextAlign]]; ok {
		out[TextAlign] = v
	}
	if v, ok := vAligns[p[VerticalAlign]]; ok {
		out[VerticalAlign] = v
	}
	return out
}

func (Align) Apply(f *style.Format, p Properties) {
	if v := p[TextAlign]; v != "" {
		f.HAlign = v
	}
	if v := p[VerticalAlign]; v != "" {
		f.VAlign = v
	}
}
