// Package css turns inline style attributes into cell formats.
//
// Parse normalizes the declarations of a style attribute, every Applier
// of a Chain picks the properties it understands in canonical form,
// and Key joins those into the string formats are interned under.
package css

import (
	"maps"
	"slices"
	"strings"
)

// Properties maps lower-cased property names to their values.
type Properties map[string]string

const (
	Font       = "font"
	FontFamily = "font-family"
)

// Parse splits an inline style declaration list into Properties.
//
// Names are lower-cased, and so are values except for font and font-family,
// as font names are case sensitive. Malformed declarations are dropped.
func Parse(text string) Properties {
	props := make(Properties)
	for _, decl := range strings.Split(text, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		name = strings.ToLower(name)
		if name != Font && name != FontFamily {
			value = strings.ToLower(value)
		}
		props[name] = value
	}
	return props
}

// Key returns the canonical "name:value;" concatenation of p, sorted by name.
func Key(p Properties) string {
	var buf strings.Builder
	for _, k := range slices.Sorted(maps.Keys(p)) {
		buf.WriteString(k)
		buf.WriteByte(':')
		buf.WriteString(p[k])
		buf.WriteByte(';')
	}
	return buf.String()
}
