// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package tablesheet converts HTML tables into spreadsheet documents.
//
// This package holds the contract the layout engine (package convert)
// expects from a spreadsheet writer; package xlsx implements it.
package tablesheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/UNO-SOFT/tablesheet/style"
)

// Writer builds a spreadsheet document consisting of the sheets created
// with NewSheet. The document is serialized when Close is called.
//
// A Writer is not safe for concurrent use unless the implementation documents so.
type Writer interface {
	io.Closer
	// NewSheet creates a sheet. It returns ErrDuplicateSheet if the name is already used.
	NewSheet(name string) (Sheet, error)
}

// Sheet is a named sheet of a Writer.
type Sheet interface {
	Name() string
	// Cell returns the cell at the zero-based (row, col), creating it on first access.
	Cell(row, col int) (Cell, error)
	// MergeCells registers a merged region.
	MergeCells(Region) error
}

// Cell is a single cell of a Sheet.
//
// Width and height are column and row properties;
// setting them through a cell changes its column or row.
type Cell interface {
	SetValue(string) error
	// SetFormat assigns the format. The format is shared, never copied,
	// so the same *style.Format must result in the same stored style.
	SetFormat(*style.Format) error
	// SetColWidth sets the width of the cell's column in points.
	SetColWidth(float64) error
	// SetRowHeight sets the height of the cell's row in points.
	SetRowHeight(float64) error
}

// Region is an inclusive, zero-based rectangle of merged cells.
type Region struct {
	FirstRow, LastRow, FirstCol, LastCol int
}

func (r Region) String() string {
	return fmt.Sprintf("R%dC%d:R%dC%d", r.FirstRow, r.FirstCol, r.LastRow, r.LastCol)
}

// SheetHTML is one input of a conversion: the sheet's name and the HTML holding its tables.
type SheetHTML struct {
	Name string
	HTML string
}

var (
	ErrTooManyRows    = errors.New("too many rows")
	ErrTooManyColumns = errors.New("too many columns")
	ErrDuplicateSheet = errors.New("duplicate sheet name")
	ErrNoSheets       = errors.New("no sheets")
)

// SheetError is returned when building a sheet fails.
type SheetError struct {
	Sheet string
	Op    string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %s: %v", e.Sheet, e.Op, e.Err)
}

func (e *SheetError) Unwrap() error { return e.Err }
