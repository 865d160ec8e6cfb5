// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package css

import (
	"errors"

	"github.com/UNO-SOFT/tablesheet/style"
)

// Applier maps one concern (alignment, borders...) of the inline style onto a Format.
type Applier interface {
	// Parse returns the subset of p the applier acts on, with canonical values.
	Parse(p Properties) Properties
	// Apply sets the format from the canonical properties returned by Parse.
	Apply(f *style.Format, p Properties)
}

// Target is what a CellApplier changes: column and row dimensions, in points.
type Target interface {
	SetColWidth(float64) error
	SetRowHeight(float64) error
}

// CellApplier is implemented by appliers that act on the cell's column or row,
// not on its format. ApplyCell is called for every cell using the style.
type CellApplier interface {
	ApplyCell(t Target, p Properties) error
}

// Chain is an ordered list of appliers. Treat it as immutable once built.
type Chain []Applier

// DefaultChain returns a new chain of every applier of this package,
// in the order alignment, background, width, height, border, text.
func DefaultChain() Chain {
	return Chain{Align{}, Background{}, Width{}, Height{}, Border{}, Text{}}
}

// Canonical merges the Parse results of every applier.
// Comments are dropped from the values and white space is collapsed first.
func (c Chain) Canonical(p Properties) Properties {
	cleaned := make(Properties, len(p))
	for k, v := range p {
		if v = clean(v); v != "" {
			cleaned[k] = v
		}
	}
	out := make(Properties, len(p))
	for _, a := range c {
		for k, v := range a.Parse(cleaned) {
			out[k] = v
		}
	}
	return out
}

// Apply runs every applier on f, in order.
func (c Chain) Apply(f *style.Format, p Properties) {
	for _, a := range c {
		a.Apply(f, p)
	}
}

// ApplyCell runs every CellApplier on t.
func (c Chain) ApplyCell(t Target, p Properties) error {
	if len(p) == 0 {
		return nil
	}
	var errs []error
	for _, a := range c {
		if ca, ok := a.(CellApplier); ok {
			if err := ca.ApplyCell(t, p); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
