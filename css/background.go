package css

import "github.com/UNO-SOFT/tablesheet/style"

const (
	BackgroundShorthand = "background"
	BackgroundColor     = "background-color"
)

// Background handles background-color and the color of the background shorthand.
type Background struct{}

func (Background) Parse(p Properties) Properties {
	out := make(Properties, 1)
	if c, ok := ParseColor(p[BackgroundColor]); ok {
		out[BackgroundColor] = c
		return out
	}
	for _, tok := range fields(p[BackgroundShorthand]) {
		if c, ok := ParseColor(tok); ok {
			out[BackgroundColor] = c
			break
		}
	}
	return out
}

func (Background) Apply(f *style.Format, p Properties) {
	if c := p[BackgroundColor]; c != "" {
		f.Fill = excelColor(c)
	}
}
