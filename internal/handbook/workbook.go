package handbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook wraps an open handbook XLSX file. Sheets are named by table
// number; at least one published handbook carries a trailing space in a
// sheet name, so lookup falls back to trimmed-name matching.
type Workbook struct {
	f *excelize.File
}

// OpenWorkbook opens a handbook workbook. This is the only fatal failure
// path in the extraction layer.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Workbook{f: f}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Sheet materializes the named sheet as a raw Grid. The name is matched
// exactly first, then against trimmed sheet names. A missing sheet yields
// (nil, false) so the caller's extractor degrades to an empty result.
func (w *Workbook) Sheet(name string) (Grid, bool) {
	if rows, err := w.f.GetRows(name); err == nil {
		return Grid(rows), true
	}
	want := strings.TrimSpace(name)
	for _, actual := range w.f.GetSheetList() {
		if strings.TrimSpace(actual) == want {
			if rows, err := w.f.GetRows(actual); err == nil {
				return Grid(rows), true
			}
		}
	}
	return nil, false
}
