package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/club19-dev/ledgerlift/internal/model"
	"github.com/club19-dev/ledgerlift/internal/parse"
)

// CSV reads a ledger export re-saved as CSV. Column layout is the same
// positional contract as the XLSX sources.
type CSV struct {
	path string
	tag  model.Source
}

// NewCSV creates a CSV source for a file path and origin tag.
func NewCSV(path string, tag model.Source) *CSV {
	return &CSV{path: path, tag: tag}
}

// Tag returns the origin tag.
func (s *CSV) Tag() model.Source { return s.tag }

// Rows reads every record in the file. Records may have ragged lengths;
// missing trailing columns are handled downstream.
func (s *CSV) Rows() ([][]parse.Value, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close()

	rows, err := readCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]parse.Value, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]parse.Value, len(records))
	for i, rec := range records {
		row := make([]parse.Value, len(rec))
		for j, field := range rec {
			row[j] = cellValue(field)
		}
		rows[i] = row
	}
	return rows, nil
}
