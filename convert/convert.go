// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package convert lays out HTML tables onto spreadsheet sheets.
//
// Every table of a sheet's HTML is placed below the previous one, with a
// blank row in between. Row and column spans become merged regions, and the
// inline style attribute of each cell becomes its format.
package convert

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/UNO-SOFT/tablesheet"
	"github.com/UNO-SOFT/tablesheet/css"
	"github.com/UNO-SOFT/tablesheet/style"
	"github.com/UNO-SOFT/tablesheet/xlsx"
)

// DefaultMaxStyles is the default number of distinct styles per sheet.
const DefaultMaxStyles = 4000

// Options of a Converter. Zero fields mean the defaults.
type Options struct {
	// Logger receives the layout decisions at Debug level.
	Logger *slog.Logger
	// NewWriter returns the spreadsheet writer serializing to w.
	NewWriter func(w io.Writer) tablesheet.Writer
	// Appliers are the style appliers, in order.
	Appliers css.Chain
	// MaxStyles is the maximum number of distinct formats per sheet.
	MaxStyles int
}

func DefaultOptions() Options {
	return Options{
		Logger:    slog.New(slog.DiscardHandler),
		NewWriter: func(w io.Writer) tablesheet.Writer { return xlsx.NewWriter(w) },
		Appliers:  css.DefaultChain(),
		MaxStyles: DefaultMaxStyles,
	}
}

// Converter converts HTML tables to spreadsheets.
//
// A Converter holds no state of the conversions, so it can be used concurrently.
type Converter struct {
	opts Options
}

func New(opts Options) *Converter {
	def := DefaultOptions()
	if opts.Logger == nil {
		opts.Logger = def.Logger
	}
	if opts.NewWriter == nil {
		opts.NewWriter = def.NewWriter
	}
	if opts.Appliers == nil {
		opts.Appliers = def.Appliers
	} else {
		opts.Appliers = slices.Clone(opts.Appliers)
	}
	if opts.MaxStyles <= 0 {
		opts.MaxStyles = def.MaxStyles
	}
	return &Converter{opts: opts}
}

// Process converts the sheets with the default options and returns the serialized document.
func Process(sheets []tablesheet.SheetHTML) ([]byte, error) {
	return New(DefaultOptions()).Process(sheets)
}

// ProcessTo converts the sheets with the default options and writes the document to w.
func ProcessTo(w io.Writer, sheets []tablesheet.SheetHTML) error {
	return New(DefaultOptions()).ProcessTo(w, sheets)
}

func (c *Converter) Process(sheets []tablesheet.SheetHTML) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.convert(&buf, sheets); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ProcessTo writes the document to w.
// Nothing is written to w if the conversion fails.
func (c *Converter) ProcessTo(w io.Writer, sheets []tablesheet.SheetHTML) error {
	var buf bytes.Buffer
	if err := c.convert(&buf, sheets); err != nil {
		return err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (c *Converter) convert(out io.Writer, sheets []tablesheet.SheetHTML) error {
	if len(sheets) == 0 {
		// a workbook needs at least one sheet
		return tablesheet.ErrNoSheets
	}
	w := c.opts.NewWriter(out)
	// One default format per conversion, shared by the sheets.
	def := style.Default()
	for _, sh := range sheets {
		if err := c.buildSheet(w, sh, &def); err != nil {
			// Close only to release the writer; out is discarded by the callers.
			_ = w.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func (c *Converter) buildSheet(w tablesheet.Writer, in tablesheet.SheetHTML, def *style.Format) error {
	logger := c.opts.Logger.With("sheet", in.Name)
	sheet, err := w.NewSheet(in.Name)
	if err != nil {
		return &tablesheet.SheetError{Sheet: in.Name, Op: "create", Err: err}
	}
	doc, err := parseFragment(in.HTML)
	if err != nil {
		return &tablesheet.SheetError{Sheet: in.Name, Op: "parse", Err: err}
	}
	styles := NewStyleCache(c.opts.Appliers, def, c.opts.MaxStyles, logger)
	sl := newSheetLayout(sheet, c.opts.Appliers, styles, logger)
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		err = sl.layoutTable(table)
		return err == nil
	})
	if err != nil {
		return &tablesheet.SheetError{Sheet: in.Name, Op: "layout", Err: err}
	}
	logger.Debug("sheet done", "rows", len(sl.rows), "styles", styles.Len(), "dropped", styles.Dropped())
	return nil
}

// parseFragment parses s as the content of a <body>.
func parseFragment(s string) (*goquery.Document, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), body)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return goquery.NewDocumentFromNode(body), nil
}
