// Package ingest reads tabular legacy-ledger sources into ordered
// RawRow sequences. A Source is one spreadsheet export plus its origin
// tag; row-to-field binding is positional and fixed by contract.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/club19-dev/ledgerlift/internal/model"
	"github.com/club19-dev/ledgerlift/internal/parse"
)

// Source exposes one ledger export as an ordered sequence of cell rows.
type Source interface {
	Tag() model.Source
	Rows() ([][]parse.Value, error)
}

// Opener constructs a Source for a file path and origin tag.
type Opener func(path string, tag model.Source) Source

// Registry maps file extensions to source openers.
type Registry struct {
	openers map[string]Opener
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{openers: make(map[string]Opener)}
}

// Register adds an opener for an extension like ".xlsx". Panics on
// duplicate registration.
func (r *Registry) Register(ext string, open Opener) {
	key := strings.ToLower(ext)
	if _, ok := r.openers[key]; ok {
		panic("duplicate source extension: " + key)
	}
	r.openers[key] = open
}

// Open returns a Source for the file, chosen by extension.
func (r *Registry) Open(path string, tag model.Source) (Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	open, ok := r.openers[ext]
	if !ok {
		return nil, fmt.Errorf("no source reader for %q files", ext)
	}
	return open(path, tag), nil
}

// DefaultRegistry returns a registry with all built-in source formats.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(".xlsx", func(path string, tag model.Source) Source { return NewXLSX(path, tag) })
	r.Register(".csv", func(path string, tag model.Source) Source { return NewCSV(path, tag) })
	return r
}
