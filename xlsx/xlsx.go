// Copyright 2020, 2023, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlsx implements tablesheet.Writer with excelize.
package xlsx

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/UNO-SOFT/tablesheet"
	"github.com/UNO-SOFT/tablesheet/style"
	"github.com/xuri/excelize/v2"
)

var _ = (tablesheet.Writer)((*XLSXWriter)(nil))

const (
	// MaxRowCount is the number of maximum rows.
	MaxRowCount = excelize.TotalRows
	// MaxColumnCount is the number of maximum columns.
	MaxColumnCount = excelize.MaxColumns
	// MaxRowHeight is the maximum row height in points.
	MaxRowHeight = excelize.MaxRowHeight
	// MaxColumnWidth is the maximum column width in characters.
	MaxColumnWidth = excelize.MaxColumnWidth

	// charWidth is the width of a character of the default font, in points.
	charWidth = 5.25
)

type XLSXWriter struct {
	w      io.Writer
	xl     *excelize.File
	styles map[*style.Format]int
	sheets []string
	mu     sync.Mutex
}

type XLSXSheet struct {
	xlw  *XLSXWriter
	name string
}

type xlsxCell struct {
	sheet *XLSXSheet
	row   int
	col   int
	axis  string
}

// NewWriter returns a new tablesheet.Writer, writing the workbook to w on Close.
//
// This writer collects everything in memory, so big sheets may impose problems.
// It is not safe for concurrent use.
// A workbook closed without any NewSheet call holds excelize's default "Sheet1".
func NewWriter(w io.Writer) *XLSXWriter {
	return &XLSXWriter{w: w, xl: excelize.NewFile(), styles: make(map[*style.Format]int)}
}

func (xlw *XLSXWriter) Close() error {
	if xlw == nil {
		return nil
	}
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	xl, w := xlw.xl, xlw.w
	xlw.xl, xlw.w = nil, nil
	if xl == nil || w == nil {
		return nil
	}
	defer xl.Close()
	_, err := xl.WriteTo(w)
	return err
}

func (xlw *XLSXWriter) NewSheet(name string) (tablesheet.Sheet, error) {
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	for _, s := range xlw.sheets {
		if strings.EqualFold(s, name) {
			return nil, fmt.Errorf("%q: %w", name, tablesheet.ErrDuplicateSheet)
		}
	}
	if len(xlw.sheets) == 0 { // first
		if err := xlw.xl.SetSheetName("Sheet1", name); err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}
	} else if _, err := xlw.xl.NewSheet(name); err != nil {
		return nil, fmt.Errorf("%q: %w", name, err)
	}
	xlw.sheets = append(xlw.sheets, name)
	return &XLSXSheet{xlw: xlw, name: name}, nil
}

func (xls *XLSXSheet) Name() string { return xls.name }

func (xls *XLSXSheet) Cell(row, col int) (tablesheet.Cell, error) {
	axis, err := cellName(row, col)
	if err != nil {
		return nil, err
	}
	return &xlsxCell{sheet: xls, row: row, col: col, axis: axis}, nil
}

func (xls *XLSXSheet) MergeCells(r tablesheet.Region) error {
	first, err := cellName(r.FirstRow, r.FirstCol)
	if err != nil {
		return err
	}
	last, err := cellName(r.LastRow, r.LastCol)
	if err != nil {
		return err
	}
	if err := xls.xlw.xl.MergeCell(xls.name, first, last); err != nil {
		return fmt.Errorf("%s[%s:%s]: %w", xls.name, first, last, err)
	}
	return nil
}

func (c *xlsxCell) SetValue(s string) error {
	if err := c.sheet.xlw.xl.SetCellStr(c.sheet.name, c.axis, s); err != nil {
		return fmt.Errorf("%s[%s]: %w", c.sheet.name, c.axis, err)
	}
	return nil
}

func (c *xlsxCell) SetFormat(f *style.Format) error {
	s, err := c.sheet.xlw.getStyle(f)
	if err != nil {
		return fmt.Errorf("%s[%s]: %w", c.sheet.name, c.axis, err)
	}
	if err = c.sheet.xlw.xl.SetCellStyle(c.sheet.name, c.axis, c.axis, s); err != nil {
		return fmt.Errorf("%s[%s]: %w", c.sheet.name, c.axis, err)
	}
	return nil
}

func (c *xlsxCell) SetColWidth(pt float64) error {
	col, err := excelize.ColumnNumberToName(c.col + 1)
	if err != nil {
		return err
	}
	if err = c.sheet.xlw.xl.SetColWidth(c.sheet.name, col, col, math.Min(pt/charWidth, MaxColumnWidth)); err != nil {
		return fmt.Errorf("%s[%s]: %w", c.sheet.name, col, err)
	}
	return nil
}

func (c *xlsxCell) SetRowHeight(pt float64) error {
	if err := c.sheet.xlw.xl.SetRowHeight(c.sheet.name, c.row+1, math.Min(pt, MaxRowHeight)); err != nil {
		return fmt.Errorf("%s[%d]: %w", c.sheet.name, c.row+1, err)
	}
	return nil
}

// getStyle returns the excelize style of f, creating it on first use.
// Formats are identified by pointer, as they are interned by the caller.
func (xlw *XLSXWriter) getStyle(f *style.Format) (int, error) {
	if f == nil {
		return 0, nil
	}
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	if s, ok := xlw.styles[f]; ok {
		return s, nil
	}
	s, err := xlw.xl.NewStyle(excelStyle(f))
	if err != nil {
		return 0, err
	}
	xlw.styles[f] = s
	return s, nil
}

func excelStyle(f *style.Format) *excelize.Style {
	st := excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: f.HAlign,
			Vertical:   f.VAlign,
			WrapText:   f.WrapText,
		},
	}
	for _, side := range style.Sides {
		if b := f.Border[side]; b.Style != style.BorderNone {
			st.Border = append(st.Border, excelize.Border{
				Type: side.String(), Color: b.Color, Style: int(b.Style),
			})
		}
	}
	if f.Fill != "" {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{f.Fill}}
	}
	if f.Font != (style.Font{}) {
		st.Font = &excelize.Font{
			Family: f.Font.Family,
			Size:   f.Font.Size,
			Color:  f.Font.Color,
			Bold:   f.Font.Bold,
			Italic: f.Font.Italic,
			Strike: f.Font.Strike,
		}
		if f.Font.Underline {
			st.Font.Underline = "single"
		}
	}
	return &st
}

func cellName(row, col int) (string, error) {
	if row < 0 || row >= MaxRowCount {
		return "", fmt.Errorf("row %d: %w", row, tablesheet.ErrTooManyRows)
	}
	if col < 0 || col >= MaxColumnCount {
		return "", fmt.Errorf("column %d: %w", col, tablesheet.ErrTooManyColumns)
	}
	return excelize.CoordinatesToCellName(col+1, row+1)
}
