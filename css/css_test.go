package css

import (
	"reflect"
	"testing"

	"github.com/UNO-SOFT/tablesheet/style"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Properties
	}{
		{"", Properties{}},
		{"   ", Properties{}},
		{"color: RED; Font-Weight: Bold", Properties{"color": "red", "font-weight": "bold"}},
		{" ; ;color:red;;", Properties{"color": "red"}},
		{"color", Properties{}},
		{"color:", Properties{}},
		{": red", Properties{}},
		{"FONT-FAMILY: Times New Roman; TEXT-ALIGN: Center", Properties{"font-family": "Times New Roman", "text-align": "center"}},
		{"font: Bold 12px Arial", Properties{"font": "Bold 12px Arial"}},
		{"background: url(http://x/Y.png) RED", Properties{"background": "url(http://x/y.png) red"}},
	}
	for _, tt := range tests {
		if got := Parse(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q) = %v, expected %v", tt.input, got, tt.want)
		}
	}
}

func TestKey(t *testing.T) {
	a := Key(Properties{"width": "9pt", "color": "#ff0000", "border-top": "thin #000000"})
	if want := "border-top:thin #000000;color:#ff0000;width:9pt;"; a != want {
		t.Errorf("got %q, expected %q", a, want)
	}
	if got := Key(nil); got != "" {
		t.Errorf("Key(nil) = %q", got)
	}
}

func TestCanonicalKeyEquivalence(t *testing.T) {
	chain := DefaultChain()
	pairs := [][2]string{
		{"color: RED; Font-Weight: Bold", "color:red;font-weight:bold"},
		{"color: red", "color: #F00"},
		{"color: rgb(255, 0, 0)", "color:#ff0000"},
		{"width: 12px", "width: 9pt"},
		{"text-align: start", "text-align: left"},
		{"vertical-align: middle", "vertical-align: center"},
		{"font-weight: 700", "font-weight: bold"},
		{"background: #FFF url(x.png) no-repeat", "background-color: white"},
		{"border: 1px solid black", "border-top:thin solid #000;border-right:1px solid;border-bottom:solid 1px;border-left:solid"},
		{"unknown: 1; color: blue", "color: blue"},
	}
	for _, p := range pairs {
		a, b := Key(chain.Canonical(Parse(p[0]))), Key(chain.Canonical(Parse(p[1])))
		if a != b {
			t.Errorf("%q -> %q, but %q -> %q", p[0], a, p[1], b)
		}
	}
	if a, b := Key(chain.Canonical(Parse("font-family: Arial"))), Key(chain.Canonical(Parse("font-family: arial"))); a == b {
		t.Errorf("font family case must be kept, got %q for both", a)
	}
}

func TestToPoints(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"12px", 9, true},
		{"12", 9, true},
		{"9pt", 9, true},
		{"1in", 72, true},
		{"2.54cm", 72, true},
		{"1em", 12, true},
		{"0", 0, true},
		{"-1px", 0, false},
		{"50%", 0, false},
		{"auto", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ToPoints(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ToPoints(%q) = %v, %t, expected %v, %t", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input, want string
		ok          bool
	}{
		{"red", "#ff0000", true},
		{"#abc", "#aabbcc", true},
		{"#AABBCC", "#aabbcc", true},
		{"#aabbcc80", "#aabbcc", true},
		{"#aabbcc00", "", false},
		{"rgb(0, 128, 255)", "#0080ff", true},
		{"rgb(0 128 255 / 50%)", "#0080ff", true},
		{"rgba(0,0,0,0)", "", false},
		{"rgb(100%, 0%, 0%)", "#ff0000", true},
		{"transparent", "", false},
		{"#ggg", "", false},
		{"hsl(0, 100%, 50%)", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseColor(%q) = %q, %t, expected %q, %t", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApply(t *testing.T) {
	chain := DefaultChain()
	f := style.Default()
	chain.Apply(&f, chain.Canonical(Parse(
		"text-align:right; vertical-align:top; background-color:#336699; "+
			"border-bottom: 3px double red; border-left: none; "+
			"color: navy; font: italic bold 10pt 'Courier New', monospace; "+
			"text-decoration: underline line-through; white-space: nowrap")))

	want := style.Default()
	want.HAlign, want.VAlign = "right", "top"
	want.Fill = "336699"
	want.WrapText = false
	want.Border[style.Bottom] = style.Border{Style: style.BorderDouble, Color: "FF0000"}
	want.Border[style.Left] = style.Border{Style: style.BorderNone, Color: "000000"}
	want.Font = style.Font{Family: "Courier New", Size: 10, Color: "000080",
		Bold: true, Italic: true, Underline: true, Strike: true}
	if f != want {
		t.Errorf("got\n%+v\nexpected\n%+v", f, want)
	}
}

func TestBorderStyles(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"border: 1px solid", "thin #000000"},
		{"border: 2px solid", "medium #000000"},
		{"border: thick solid", "thick #000000"},
		{"border: 0.5px solid", "hair #000000"},
		{"border: 1px dashed", "dashed #000000"},
		{"border: 2px dashed", "medium-dashed #000000"},
		{"border: dotted blue", "dotted #0000ff"},
		{"border: 0", "none #000000"},
		{"border: hidden", "none #000000"},
		{"border-color: green", "thin #008000"},
	}
	for _, tt := range tests {
		got := Border{}.Parse(Parse(tt.input))
		for _, s := range style.Sides {
			if v := got["border-"+s.String()]; v != tt.want {
				t.Errorf("%q: %s = %q, expected %q", tt.input, s, v, tt.want)
			}
		}
	}

	got := Border{}.Parse(Parse("border-width: 1px 4px; border-style: solid"))
	if got["border-top"] != "thin #000000" || got["border-right"] != "thick #000000" {
		t.Errorf("box values: %v", got)
	}
	if got := (Border{}).Parse(Parse("color: red")); len(got) != 0 {
		t.Errorf("no border property, got %v", got)
	}
}

type target struct{ width, height float64 }

func (t *target) SetColWidth(w float64) error  { t.width = w; return nil }
func (t *target) SetRowHeight(h float64) error { t.height = h; return nil }

func TestApplyCell(t *testing.T) {
	chain := DefaultChain()
	var tgt target
	if err := chain.ApplyCell(&tgt, chain.Canonical(Parse("width: 100px; height: 2em"))); err != nil {
		t.Fatal(err)
	}
	if tgt.width != 75 || tgt.height != 24 {
		t.Errorf("got %+v", tgt)
	}
}

func TestFontShorthand(t *testing.T) {
	tests := []struct {
		input string
		want  Properties
	}{
		{"font: 12px/1.5 Arial", Properties{"font-size": "9pt", "font-family": "Arial"}},
		{"font: italic 600 large \"Times New Roman\", serif", Properties{"font-style": "italic", "font-weight": "bold", "font-size": "13.5pt", "font-family": "Times New Roman"}},
		{"font: caption", Properties{}},
		{"font: Bold 10pt sans-serif; font-weight: normal", Properties{"font-size": "10pt", "font-family": "Arial"}},
	}
	for _, tt := range tests {
		if got := (Text{}).Parse(Parse(tt.input)); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%q: got %v, expected %v", tt.input, got, tt.want)
		}
	}
}

func TestCommentsInValues(t *testing.T) {
	chain := DefaultChain()
	tests := []struct {
		input, want string
	}{
		{"color: red /* brand */", "color:#ff0000;"},
		{"width: 12px/**/", "width:9pt;"},
		{"background-color: rgb(255,0,0)/*x*/", "background-color:#ff0000;"},
		{"font-size: 12PX", "font-size:9pt;"},
		{"text-align: /* a */ right", "text-align:right;"},
		{"border-top: 1px /* b */ solid", "border-top:thin #000000;"},
		{"font-family: 'Courier New' /* mono */, monospace", "font-family:Courier New;"},
		{"color: /* only a comment */", ""},
	}
	for _, tt := range tests {
		if got := Key(chain.Canonical(Parse(tt.input))); got != tt.want {
			t.Errorf("%q: got %q, expected %q", tt.input, got, tt.want)
		}
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"  1px   solid\tred ", []string{"1px", "solid", "red"}},
		{"rgb(0, 128, 255) url(x.png) no-repeat", []string{"rgb(0, 128, 255)", "url(x.png)", "no-repeat"}},
		{`italic 12px/1.5 "Times New Roman", serif`, []string{"italic", "12px/1.5", `"Times New Roman",`, "serif"}},
		{"a /* b */ c", []string{"a", "c"}},
	}
	for _, tt := range tests {
		if got := fields(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("fields(%q) = %q, expected %q", tt.input, got, tt.want)
		}
	}
}
