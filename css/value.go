package css

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/image/colornames"
)

// points per unit
var units = map[string]float64{
	"px":  0.75,
	"pt":  1,
	"pc":  12,
	"in":  72,
	"cm":  72 / 2.54,
	"mm":  72 / 25.4,
	"q":   72 / 101.6,
	"em":  12,
	"rem": 12,
}

type token struct {
	tt   css.TokenType
	data string
}

// lex returns the tokens of a property value, without comments.
func lex(v string) []token {
	var toks []token
	l := css.NewLexer(parse.NewInputString(v))
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return toks
		case css.CommentToken:
			continue
		}
		toks = append(toks, token{tt: tt, data: string(data)})
	}
}

// significant returns the tokens of v, without comments and white space.
func significant(v string) []token {
	toks := lex(v)
	out := toks[:0]
	for _, t := range toks {
		if t.tt != css.WhitespaceToken {
			out = append(out, t)
		}
	}
	return out
}

// fields splits a value into its space separated components.
// Functions, like rgb(...), and quoted strings are kept in one piece.
func fields(v string) []string {
	var out []string
	var buf strings.Builder
	var depth int
	for _, t := range lex(v) {
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
		case css.WhitespaceToken:
			if depth == 0 {
				if buf.Len() != 0 {
					out = append(out, buf.String())
					buf.Reset()
				}
			} else {
				buf.WriteByte(' ')
			}
			continue
		}
		buf.WriteString(t.data)
	}
	if buf.Len() != 0 {
		out = append(out, buf.String())
	}
	return out
}

// clean drops the comments of v and collapses its white space.
func clean(v string) string { return strings.Join(fields(v), " ") }

// ToPoints converts a non-negative CSS length to points.
// Unitless numbers are pixels.
func ToPoints(s string) (float64, bool) {
	toks := significant(s)
	if len(toks) != 1 {
		return 0, false
	}
	num, mul := toks[0].data, 0.75
	switch toks[0].tt {
	case css.NumberToken:
	case css.DimensionToken:
		var unit string
		num, unit = splitDimension(num)
		var ok bool
		if mul, ok = units[strings.ToLower(unit)]; !ok {
			return 0, false
		}
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil || f < 0 || math.IsInf(f, 0) {
		return 0, false
	}
	return math.Round(f*mul*100) / 100, true
}

// splitDimension splits a dimension token to its number and unit.
func splitDimension(s string) (string, string) {
	i := strings.LastIndexFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z')
	}) + 1
	return s[:i], s[i:]
}

func formatPoints(pt float64) string {
	return strconv.FormatFloat(pt, 'f', -1, 64) + "pt"
}

func isNumber(s string) bool {
	toks := significant(s)
	return len(toks) == 1 && toks[0].tt == css.NumberToken
}

// ParseColor returns the color as "#rrggbb".
// Transparent and unknown colors return false.
func ParseColor(s string) (string, bool) {
	toks := significant(s)
	if len(toks) == 0 {
		return "", false
	}
	switch t := toks[0]; t.tt {
	case css.HashToken:
		if len(toks) != 1 {
			return "", false
		}
		return parseHexColor(strings.ToLower(t.data[1:]))
	case css.IdentToken:
		if len(toks) != 1 {
			return "", false
		}
		c, ok := colornames.Map[strings.ToLower(t.data)]
		if !ok {
			return "", false
		}
		return hexRGB(c), true
	case css.FunctionToken:
		switch strings.ToLower(t.data) {
		case "rgb(", "rgba(":
			if toks[len(toks)-1].tt != css.RightParenthesisToken {
				return "", false
			}
			return parseRGB(toks[1 : len(toks)-1])
		}
	}
	return "", false
}

func hexRGB(c color.RGBA) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+2*i], b[2+2*i] = digits[v>>4], digits[v&0xf]
	}
	return string(b)
}

func parseHexColor(h string) (string, bool) {
	for _, r := range h {
		if !('0' <= r && r <= '9' || 'a' <= r && r <= 'f') {
			return "", false
		}
	}
	switch len(h) {
	case 4: // #rgba
		if h[3] == '0' {
			return "", false
		}
		h = h[:3]
		fallthrough
	case 3:
		return "#" + string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}), true
	case 8:
		if h[6:] == "00" {
			return "", false
		}
		h = h[:6]
		fallthrough
	case 6:
		return "#" + h, true
	}
	return "", false
}

// parseRGB parses the arguments of rgb() and rgba(),
// both "r, g, b[, a]" and "r g b[ / a]".
func parseRGB(args []token) (string, bool) {
	var vals []token
	for _, t := range args {
		switch {
		case t.tt == css.CommaToken, t.tt == css.DelimToken && t.data == "/":
		case t.tt == css.NumberToken, t.tt == css.PercentageToken:
			vals = append(vals, t)
		default:
			return "", false
		}
	}
	if len(vals) != 3 && len(vals) != 4 {
		return "", false
	}
	var rgb [3]uint8
	for i, t := range vals[:3] {
		f, err := strconv.ParseFloat(strings.TrimSuffix(t.data, "%"), 64)
		if err != nil {
			return "", false
		}
		if t.tt == css.PercentageToken {
			f = f * 255 / 100
		}
		rgb[i] = uint8(math.Round(math.Max(0, math.Min(255, f))))
	}
	if len(vals) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSuffix(vals[3].data, "%"), 64)
		if err != nil || a == 0 {
			return "", false
		}
	}
	return hexRGB(color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}), true
}

// excelColor converts "#rrggbb" to "RRGGBB".
func excelColor(c string) string {
	return strings.ToUpper(strings.TrimPrefix(c, "#"))
}
