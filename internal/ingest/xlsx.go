package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/club19-dev/ledgerlift/internal/model"
	"github.com/club19-dev/ledgerlift/internal/parse"
)

// XLSX reads the first worksheet of an Excel export. Cells are read as
// raw stored values, so legacy date serials arrive as numbers rather
// than locale-formatted strings.
type XLSX struct {
	path string
	tag  model.Source
}

// NewXLSX creates an XLSX source for a file path and origin tag.
func NewXLSX(path string, tag model.Source) *XLSX {
	return &XLSX{path: path, tag: tag}
}

// Tag returns the origin tag.
func (s *XLSX) Tag() model.Source { return s.tag }

// Rows reads every row of the first worksheet.
func (s *XLSX) Rows() ([][]parse.Value, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%s: workbook has no worksheets", s.path)
	}

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	rows := make([][]parse.Value, len(raw))
	for i, cells := range raw {
		row := make([]parse.Value, len(cells))
		for j, cell := range cells {
			row[j] = cellValue(cell)
		}
		rows[i] = row
	}
	return rows, nil
}

// cellValue types a raw cell string: numeric text becomes a number so
// date serials and unformatted prices parse as such. ParseFloat also
// accepts spellings like "NaN" and "Inf"; those are ledger text, not
// amounts, and stay string cells.
func cellValue(s string) parse.Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return parse.Value{}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return parse.Number(f)
	}
	return parse.String(s)
}
