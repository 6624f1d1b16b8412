// Package runlog keeps an append-only CSV history of import runs, so
// operators can trace when each legacy export was processed and how
// much of it was flagged for review.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the import log.
type Entry struct {
	Timestamp        time.Time
	Sources          string // semicolon-separated origin tags
	Rows             int
	Suppliers        int
	Clients          int
	FlaggedSuppliers int
	FlaggedClients   int
}

// Header is the CSV header for import-log.csv.
const Header = "timestamp,sources,rows,suppliers,clients,flagged_suppliers,flagged_clients"

const (
	numFields           = 7
	logFile             = "import-log.csv"
	colTimestamp        = 0
	colSources          = 1
	colRows             = 2
	colSuppliers        = 3
	colClients          = 4
	colFlaggedSuppliers = 5
	colFlaggedClients   = 6
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSources] = e.Sources
	row[colRows] = strconv.Itoa(e.Rows)
	row[colSuppliers] = strconv.Itoa(e.Suppliers)
	row[colClients] = strconv.Itoa(e.Clients)
	row[colFlaggedSuppliers] = strconv.Itoa(e.FlaggedSuppliers)
	row[colFlaggedClients] = strconv.Itoa(e.FlaggedClients)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	ints := make([]int, numFields)
	for _, col := range []int{colRows, colSuppliers, colClients, colFlaggedSuppliers, colFlaggedClients} {
		n, err := strconv.Atoi(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing field %d %q: %w", col, record[col], err)
		}
		ints[col] = n
	}

	return Entry{
		Timestamp:        ts,
		Sources:          record[colSources],
		Rows:             ints[colRows],
		Suppliers:        ints[colSuppliers],
		Clients:          ints[colClients],
		FlaggedSuppliers: ints[colFlaggedSuppliers],
		FlaggedClients:   ints[colFlaggedClients],
	}, nil
}

// Append writes entries to <dir>/import-log.csv, creating the file and
// header if needed.
func Append(dir string, entries []Entry) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	path := filepath.Join(dir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <dir>/import-log.csv. Returns an empty
// slice if the file does not exist.
func Read(dir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dir, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
