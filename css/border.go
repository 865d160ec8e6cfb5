package css

import (
	"strings"

	"github.com/UNO-SOFT/tablesheet/style"
)

const PropBorder = "border"

var borderStyleNames = map[style.BorderStyle]string{
	style.BorderNone:         "none",
	style.BorderThin:         "thin",
	style.BorderMedium:       "medium",
	style.BorderDashed:       "dashed",
	style.BorderDotted:       "dotted",
	style.BorderThick:        "thick",
	style.BorderDouble:       "double",
	style.BorderHair:         "hair",
	style.BorderMediumDashed: "medium-dashed",
}

var cssBorderStyles = map[string]bool{
	"none": true, "hidden": true, "solid": true, "dashed": true, "dotted": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

var borderWidthKeywords = map[string]float64{"thin": 0.75, "medium": 2.25, "thick": 3.75}

// Border handles the border shorthands and longhands.
// Its canonical form is one "border-<side>: <style> <#color>" per side set.
type Border struct{}

type sideBorder struct {
	style, color string
	width        float64
	hasWidth     bool
	set          bool
}

func (b *sideBorder) merge(o sideBorder) {
	if o.style != "" {
		b.style = o.style
	}
	if o.color != "" {
		b.color = o.color
	}
	if o.hasWidth {
		b.width, b.hasWidth = o.width, true
	}
	b.set = b.set || o.set
}

func (Border) Parse(p Properties) Properties {
	var sides [4]sideBorder
	all := func(o sideBorder) {
		for i := range sides {
			sides[i].merge(o)
		}
	}
	if v := p[PropBorder]; v != "" {
		all(parseBorderShorthand(v))
	}
	for _, prop := range []string{"style", "width", "color"} {
		vals := boxValues(p[PropBorder+"-"+prop])
		for i, v := range vals {
			if o, ok := parseBorderPart(prop, v); ok {
				sides[i].merge(o)
			}
		}
	}
	for _, s := range style.Sides {
		name := PropBorder + "-" + s.String()
		if v := p[name]; v != "" {
			sides[s].merge(parseBorderShorthand(v))
		}
		for _, prop := range []string{"style", "width", "color"} {
			if o, ok := parseBorderPart(prop, p[name+"-"+prop]); ok {
				sides[s].merge(o)
			}
		}
	}

	out := make(Properties, 4)
	for _, s := range style.Sides {
		sb := sides[s]
		if !sb.set {
			continue
		}
		color := sb.color
		if color == "" {
			color = "#000000"
		}
		out[PropBorder+"-"+s.String()] = borderStyleNames[sb.borderStyle()] + " " + color
	}
	return out
}

func (Border) Apply(f *style.Format, p Properties) {
	for _, s := range style.Sides {
		v := p[PropBorder+"-"+s.String()]
		if v == "" {
			continue
		}
		name, color, _ := strings.Cut(v, " ")
		for bs, n := range borderStyleNames {
			if n == name {
				f.Border[s] = style.Border{Style: bs, Color: excelColor(color)}
				break
			}
		}
	}
}

func (b sideBorder) borderStyle() style.BorderStyle {
	width := 0.75
	if b.hasWidth {
		width = b.width
	}
	if width == 0 {
		return style.BorderNone
	}
	switch b.style {
	case "none", "hidden":
		return style.BorderNone
	case "dotted":
		return style.BorderDotted
	case "dashed":
		if width > 0.75 {
			return style.BorderMediumDashed
		}
		return style.BorderDashed
	case "double":
		return style.BorderDouble
	}
	switch {
	case width < 0.75:
		return style.BorderHair
	case width <= 0.75:
		return style.BorderThin
	case width <= 2.25:
		return style.BorderMedium
	default:
		return style.BorderThick
	}
}

func parseBorderShorthand(v string) sideBorder {
	var b sideBorder
	for _, tok := range fields(v) {
		for _, prop := range []string{"style", "width", "color"} {
			if o, ok := parseBorderPart(prop, tok); ok {
				b.merge(o)
				break
			}
		}
	}
	return b
}

func parseBorderPart(prop, v string) (sideBorder, bool) {
	if v == "" {
		return sideBorder{}, false
	}
	switch prop {
	case "style":
		if cssBorderStyles[v] {
			return sideBorder{style: v, set: true}, true
		}
	case "width":
		if w, ok := borderWidthKeywords[v]; ok {
			return sideBorder{width: w, hasWidth: true, set: true}, true
		}
		if w, ok := ToPoints(v); ok {
			return sideBorder{width: w, hasWidth: true, set: true}, true
		}
	case "color":
		if c, ok := ParseColor(v); ok {
			return sideBorder{color: c, set: true}, true
		}
	}
	return sideBorder{}, false
}

// boxValues expands the 1-4 value box shorthand to top, right, bottom, left.
func boxValues(v string) []string {
	vs := fields(v)
	switch len(vs) {
	case 1:
		return []string{vs[0], vs[0], vs[0], vs[0]}
	case 2:
		return []string{vs[0], vs[1], vs[0], vs[1]}
	case 3:
		return []string{vs[0], vs[1], vs[2], vs[1]}
	case 4:
		return vs
	}
	return nil
}
