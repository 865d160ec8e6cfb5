package css

import (
	"slices"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2/css"

	"github.com/UNO-SOFT/tablesheet/style"
)

const (
	Color          = "color"
	FontWeight     = "font-weight"
	FontStyle      = "font-style"
	FontSize       = "font-size"
	TextDecoration = "text-decoration"
	WhiteSpace     = "white-space"
)

var fontSizeKeywords = map[string]float64{
	"xx-small": 7, "x-small": 7.5, "small": 10, "medium": 12,
	"large": 13.5, "x-large": 18, "xx-large": 24, "xxx-large": 36,
}

var genericFamilies = map[string]string{
	"serif":      "Times New Roman",
	"sans-serif": "Arial",
	"monospace":  "Courier New",
	"cursive":    "Comic Sans MS",
	"system-ui":  "Calibri",
}

// Text handles the font, the text color, decorations and white-space.
type Text struct{}

func (Text) Parse(p Properties) Properties {
	out := make(Properties)
	if v := p[Font]; v != "" {
		parseFontShorthand(out, v)
	}
	if c, ok := ParseColor(p[Color]); ok {
		out[Color] = c
	}
	if v := p[FontWeight]; v != "" {
		if isBold(v) {
			out[FontWeight] = "bold"
		} else {
			delete(out, FontWeight)
		}
	}
	if v := p[FontStyle]; v != "" {
		if v == "italic" || strings.HasPrefix(v, "oblique") {
			out[FontStyle] = "italic"
		} else {
			delete(out, FontStyle)
		}
	}
	if v, ok := p[TextDecoration]; ok {
		parseDecoration(out, v)
	} else if v, ok := p[TextDecoration+"-line"]; ok {
		parseDecoration(out, v)
	}
	if v := p[FontSize]; v != "" {
		if pt, ok := fontSize(v); ok {
			out[FontSize] = formatPoints(pt)
		}
	}
	if v := p[FontFamily]; v != "" {
		if fam := firstFamily(v); fam != "" {
			out[FontFamily] = fam
		}
	}
	switch p[WhiteSpace] {
	case "nowrap", "pre":
		out[WhiteSpace] = "nowrap"
	}
	return out
}

func (Text) Apply(f *style.Format, p Properties) {
	if c := p[Color]; c != "" {
		f.Font.Color = excelColor(c)
	}
	if p[FontWeight] == "bold" {
		f.Font.Bold = true
	}
	if p[FontStyle] == "italic" {
		f.Font.Italic = true
	}
	for _, d := range strings.Fields(p[TextDecoration]) {
		switch d {
		case "underline":
			f.Font.Underline = true
		case "line-through":
			f.Font.Strike = true
		}
	}
	if pt, ok := ToPoints(p[FontSize]); ok {
		f.Font.Size = pt
	}
	if fam := p[FontFamily]; fam != "" {
		f.Font.Family = fam
	}
	if p[WhiteSpace] == "nowrap" {
		f.WrapText = false
	}
}

func isBold(v string) bool {
	if v == "bold" || v == "bolder" {
		return true
	}
	n, err := strconv.Atoi(v)
	return err == nil && n >= 600
}

func parseDecoration(out Properties, v string) {
	var ds []string
	for _, d := range strings.Fields(v) {
		if (d == "underline" || d == "line-through") && !slices.Contains(ds, d) {
			ds = append(ds, d)
		}
	}
	if len(ds) == 0 {
		delete(out, TextDecoration)
		return
	}
	slices.Sort(ds)
	out[TextDecoration] = strings.Join(ds, " ")
}

func fontSize(v string) (float64, bool) {
	if pt, ok := fontSizeKeywords[v]; ok {
		return pt, true
	}
	pt, ok := ToPoints(v)
	return pt, ok && pt > 0
}

// firstFamily returns the first family of a font-family list, unquoted,
// with generic families replaced by a common font.
func firstFamily(v string) string {
	var words []string
loop:
	for _, t := range significant(v) {
		switch t.tt {
		case css.StringToken:
			if len(words) == 0 && len(t.data) >= 2 {
				words = append(words, t.data[1:len(t.data)-1])
			}
			break loop
		case css.IdentToken:
			words = append(words, t.data)
		default:
			break loop
		}
	}
	first := strings.Join(words, " ")
	if fam, ok := genericFamilies[strings.ToLower(first)]; ok {
		return fam
	}
	return first
}

// parseFontShorthand parses "[style] [weight] size[/line-height] family[, family...]".
// Keywords are matched case insensitively, as font values keep their case.
func parseFontShorthand(out Properties, v string) {
	toks := fields(v)
	for i, tok := range toks {
		lower := strings.ToLower(tok)
		switch {
		case lower == "italic" || lower == "oblique":
			out[FontStyle] = "italic"
			continue
		case isBold(lower):
			out[FontWeight] = "bold"
			continue
		case lower == "normal" || lower == "small-caps" || lower == "lighter" || isNumber(lower):
			continue
		}
		size, _, _ := strings.Cut(lower, "/")
		pt, ok := fontSize(size)
		if !ok {
			// system font keywords (caption, menu...) carry no size or family
			return
		}
		out[FontSize] = formatPoints(pt)
		rest := toks[i+1:]
		// "12px / 1.5 Arial"
		if len(rest) > 1 && rest[0] == "/" {
			rest = rest[2:]
		} else if len(rest) > 0 && strings.HasPrefix(rest[0], "/") {
			rest = rest[1:]
		}
		if fam := firstFamily(strings.Join(rest, " ")); fam != "" {
			out[FontFamily] = fam
		}
		return
	}
}
