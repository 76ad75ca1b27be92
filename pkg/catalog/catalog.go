// Package catalog records the bricks generated in a run and writes a
// spreadsheet inventory, handy when queueing a batch of parts for a
// 3D printer.
package catalog

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dvriend/brickforge/pkg/brick"
)

// Entry describes one generated brick.
type Entry struct {
	Name     string
	Variant  string
	System   string
	WidthMM  float64
	LengthMM float64
	HeightMM float64
	File     string
}

// Catalog accumulates entries in generation order.
type Catalog struct {
	entries []Entry
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Add records a generated brick.
func (c *Catalog) Add(spec brick.Spec, sys brick.System, file string) {
	w, l, h := spec.OverallMM(sys)
	c.entries = append(c.entries, Entry{
		Name:     spec.Name(),
		Variant:  spec.Variant(),
		System:   sys.Name,
		WidthMM:  w,
		LengthMM: l,
		HeightMM: h,
		File:     file,
	})
}

// Entries returns the recorded entries in generation order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of recorded entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// header is the spreadsheet column layout.
var header = []string{"Name", "Variant", "System", "Width (mm)", "Length (mm)", "Height (mm)", "File"}

// WriteXLSX writes the catalog as a spreadsheet with one row per brick.
func (c *Catalog) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bricks"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
	}

	for row, e := range c.entries {
		values := []interface{}{e.Name, e.Variant, e.System, e.WidthMM, e.LengthMM, e.HeightMM, e.File}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("catalog: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("catalog: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("catalog: save %s: %w", path, err)
	}
	return nil
}
