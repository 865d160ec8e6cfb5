// Package style holds the writer independent cell format.
package style

// Side indexes Format.Border.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

var sideNames = [...]string{"top", "right", "bottom", "left"}

func (s Side) String() string { return sideNames[s] }

// Sides lists every Side in Format.Border order.
var Sides = [...]Side{Top, Right, Bottom, Left}

// BorderStyle is the line style of a border.
// The values are the border style indexes of the spreadsheet formats.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderThin
	BorderMedium
	BorderDashed
	BorderDotted
	BorderThick
	BorderDouble
	BorderHair
	BorderMediumDashed
)

// Border of one side of a cell.
type Border struct {
	Style BorderStyle
	// Color is "RRGGBB".
	Color string
}

// Font properties of a cell.
type Font struct {
	Family    string
	Size      float64 // points
	Color     string  // "RRGGBB"
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
}

// Format is a cell format.
//
// Format holds no references, so assignment clones it.
type Format struct {
	// HAlign is one of "", "left", "center", "right", "justify".
	HAlign string
	// VAlign is one of "", "top", "center", "bottom".
	VAlign   string
	WrapText bool
	// Fill is the solid background color as "RRGGBB", empty for none.
	Fill   string
	Border [4]Border
	Font   Font
}

// Default returns the format cells get without any inline style:
// wrapped text, vertically centered, thin black border on every side.
func Default() Format {
	f := Format{WrapText: true, VAlign: "center"}
	for _, s := range Sides {
		f.Border[s] = Border{Style: BorderThin, Color: "000000"}
	}
	return f
}
