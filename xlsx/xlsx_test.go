package xlsx

import (
	"bytes"
	"errors"
	"testing"

	"github.com/UNO-SOFT/tablesheet"
	"github.com/UNO-SOFT/tablesheet/style"
	"github.com/xuri/excelize/v2"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	sh, err := w.NewSheet("First")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = w.NewSheet("Second"); err != nil {
		t.Fatal(err)
	}
	if _, err = w.NewSheet("first"); !errors.Is(err, tablesheet.ErrDuplicateSheet) {
		t.Errorf("duplicate sheet: got %v", err)
	}

	def := style.Default()
	red := def
	red.Fill = "FF0000"
	red.Font.Bold = true
	red.HAlign = "right"

	for i, f := range []*style.Format{&def, &red, &red} {
		c, err := sh.Cell(1, i)
		if err != nil {
			t.Fatal(err)
		}
		if err = c.SetFormat(f); err != nil {
			t.Fatal(err)
		}
		if i == 0 {
			if err = c.SetValue("A"); err != nil {
				t.Fatal(err)
			}
			if err = c.SetColWidth(105); err != nil {
				t.Fatal(err)
			}
			if err = c.SetRowHeight(30); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err = sh.MergeCells(tablesheet.Region{FirstRow: 1, LastRow: 2, FirstCol: 1, LastCol: 2}); err != nil {
		t.Fatal(err)
	}
	if len(w.styles) != 2 {
		t.Errorf("got %d styles, expected 2", len(w.styles))
	}
	if err = w.Close(); err != nil {
		t.Fatal(err)
	}

	xl, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer xl.Close()
	if got := xl.GetSheetList(); len(got) != 2 || got[0] != "First" || got[1] != "Second" {
		t.Errorf("sheets: %v", got)
	}
	if v, err := xl.GetCellValue("First", "A2"); err != nil || v != "A" {
		t.Errorf("A2=%q (%v)", v, err)
	}
	if w, err := xl.GetColWidth("First", "A"); err != nil || w != 20 {
		t.Errorf("width=%v (%v)", w, err)
	}
	if h, err := xl.GetRowHeight("First", 2); err != nil || h != 30 {
		t.Errorf("height=%v (%v)", h, err)
	}
	mcs, err := xl.GetMergeCells("First")
	if err != nil {
		t.Fatal(err)
	}
	if len(mcs) != 1 || mcs[0].GetStartAxis() != "B2" || mcs[0].GetEndAxis() != "C3" {
		t.Errorf("merged: %v", mcs)
	}
	b2, _ := xl.GetCellStyle("First", "B2")
	c2, _ := xl.GetCellStyle("First", "C2")
	if b2 != c2 {
		t.Errorf("B2 style %d != C2 style %d", b2, c2)
	}
	st, err := xl.GetStyle(b2)
	if err != nil {
		t.Fatal(err)
	}
	if st.Font == nil || !st.Font.Bold || st.Alignment == nil || st.Alignment.Horizontal != "right" {
		t.Errorf("style: %+v", st)
	}
	if st.Fill.Pattern != 1 {
		t.Errorf("fill: %+v", st.Fill)
	}
	if len(st.Border) != 4 {
		t.Errorf("borders: %+v", st.Border)
	}
}

func TestLimits(t *testing.T) {
	w := NewWriter(new(bytes.Buffer))
	defer w.Close()
	sh, err := w.NewSheet("S")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = sh.Cell(MaxRowCount, 0); !errors.Is(err, tablesheet.ErrTooManyRows) {
		t.Errorf("row limit: got %v", err)
	}
	if _, err = sh.Cell(0, MaxColumnCount); !errors.Is(err, tablesheet.ErrTooManyColumns) {
		t.Errorf("column limit: got %v", err)
	}
	if _, err = w.NewSheet("bad[name]"); err == nil {
		t.Error("invalid sheet name accepted")
	}
}
