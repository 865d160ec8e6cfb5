package convert

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/UNO-SOFT/tablesheet"
	"github.com/UNO-SOFT/tablesheet/css"
	"github.com/UNO-SOFT/tablesheet/style"
)

// Browsers clamp spans to these.
const (
	maxRowSpan = 65534
	maxColSpan = 1000
)

// sheetLayout is the layout state of one sheet, shared by all of its tables.
type sheetLayout struct {
	sheet    tablesheet.Sheet
	chain    css.Chain
	styles   *StyleCache
	occupied Occupancy
	rows     map[int]struct{}
	logger   *slog.Logger
	// maxRow is the highest row index created so far.
	maxRow int
}

func newSheetLayout(sheet tablesheet.Sheet, chain css.Chain, styles *StyleCache, logger *slog.Logger) *sheetLayout {
	return &sheetLayout{
		sheet: sheet, chain: chain, styles: styles, logger: logger,
		occupied: make(Occupancy),
		rows:     make(map[int]struct{}),
	}
}

// getOrCreateRow registers row idx, moving the row cursor if idx is beyond it.
func (sl *sheetLayout) getOrCreateRow(idx int) {
	if _, ok := sl.rows[idx]; ok {
		return
	}
	sl.rows[idx] = struct{}{}
	if idx > sl.maxRow {
		sl.maxRow = idx
	}
}

// layoutTable lays out the rows of table below what the sheet already has,
// leaving one blank row between tables.
func (sl *sheetLayout) layoutTable(table *goquery.Selection) error {
	rowIdx := 0
	if len(sl.rows) != 0 {
		rowIdx = sl.maxRow + 2
	}
	sl.logger.Debug("table", "firstRow", rowIdx)
	var err error
	table.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		err = sl.row(tr, rowIdx)
		rowIdx++
		return err == nil
	})
	return err
}

func (sl *sheetLayout) row(tr *goquery.Selection, rowIdx int) error {
	colIdx := 0
	var err error
	tr.Find("td, th").EachWithBreak(func(_ int, td *goquery.Selection) bool {
		for sl.occupied.IsOccupied(rowIdx, colIdx) {
			sl.logger.Debug("occupied, skip", "row", rowIdx, "col", colIdx)
			colIdx++
		}
		var width int
		width, err = sl.place(td, rowIdx, colIdx)
		colIdx += width
		return err == nil
	})
	return err
}

type spanProfile uint8

const (
	noSpan spanProfile = iota
	colSpanOnly
	rowSpanOnly
	rowAndColSpan
)

func classify(rowSpan, colSpan int) spanProfile {
	switch {
	case rowSpan > 1 && colSpan > 1:
		return rowAndColSpan
	case colSpan > 1:
		return colSpanOnly
	case rowSpan > 1:
		return rowSpanOnly
	}
	return noSpan
}

// place writes td at (row, col) and returns the number of columns it covers.
func (sl *sheetLayout) place(td *goquery.Selection, row, col int) (int, error) {
	rowSpan := spanAttr(td, "rowspan", maxRowSpan)
	colSpan := spanAttr(td, "colspan", maxColSpan)
	f, props := sl.styles.Resolve(td.AttrOr("style", ""))
	c := cellContent{text: cellText(td), format: f, props: props}
	switch classify(rowSpan, colSpan) {
	case rowAndColSpan:
		return colSpan, sl.spanRowAndCol(c, row, col, rowSpan, colSpan)
	case colSpanOnly:
		return colSpan, sl.spanCol(c, row, col, colSpan)
	case rowSpanOnly:
		return 1, sl.spanRow(c, row, col, rowSpan)
	}
	anchor, err := sl.cell(c, row, col)
	if err != nil {
		return 1, err
	}
	return 1, sl.setValue(anchor, c)
}

type cellContent struct {
	text   string
	format *style.Format
	props  css.Properties
}

func (sl *sheetLayout) spanCol(c cellContent, row, col, colSpan int) error {
	if err := sl.merge(row, row, col, col+colSpan-1); err != nil {
		return err
	}
	anchor, err := sl.cell(c, row, col)
	if err != nil {
		return err
	}
	for j := 1; j < colSpan; j++ {
		if _, err := sl.cell(c, row, col+j); err != nil {
			return err
		}
	}
	return sl.setValue(anchor, c)
}

func (sl *sheetLayout) spanRow(c cellContent, row, col, rowSpan int) error {
	return sl.spanRowAndCol(c, row, col, rowSpan, 1)
}

func (sl *sheetLayout) spanRowAndCol(c cellContent, row, col, rowSpan, colSpan int) error {
	if err := sl.merge(row, row+rowSpan-1, col, col+colSpan-1); err != nil {
		return err
	}
	var anchor tablesheet.Cell
	for i := 0; i < rowSpan; i++ {
		for j := 0; j < colSpan; j++ {
			cell, err := sl.cell(c, row+i, col+j)
			if err != nil {
				return err
			}
			if i == 0 && j == 0 {
				anchor = cell
			}
			sl.occupied.MarkOccupied(row+i, col+j)
		}
	}
	return sl.setValue(anchor, c)
}

// cell returns the cell at (row, col) with the format of c.
func (sl *sheetLayout) cell(c cellContent, row, col int) (tablesheet.Cell, error) {
	cell, err := sl.sheet.Cell(row, col)
	if err != nil {
		return nil, err
	}
	sl.getOrCreateRow(row)
	if err = cell.SetFormat(c.format); err != nil {
		return nil, err
	}
	return cell, nil
}

// setValue writes the text into the anchor (top-left) cell of a placement,
// and applies the column and row dimensions of the style there.
func (sl *sheetLayout) setValue(anchor tablesheet.Cell, c cellContent) error {
	if err := anchor.SetValue(c.text); err != nil {
		return err
	}
	return sl.chain.ApplyCell(anchor, c.props)
}

func (sl *sheetLayout) merge(firstRow, lastRow, firstCol, lastCol int) error {
	r := tablesheet.Region{FirstRow: firstRow, LastRow: lastRow, FirstCol: firstCol, LastCol: lastCol}
	sl.logger.Debug("merge", "region", r)
	return sl.sheet.MergeCells(r)
}

// spanAttr returns the numeric value of the span attribute name, or 0 if
// it is missing or not a non-negative integer.
func spanAttr(td *goquery.Selection, name string, limit int) int {
	v, ok := td.Attr(name)
	if !ok || v == "" {
		return 0
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(v)
	if err != nil || n > limit {
		return limit
	}
	return n
}

// cellText is the text content of td with white space collapsed.
func cellText(td *goquery.Selection) string {
	return strings.Join(strings.Fields(td.Text()), " ")
}
