// Package pipeline runs the full normalization pass: ingest every
// source, aggregate entities, assemble the final tables. Each phase
// fully consumes its input before the next begins; a run either
// completes deterministically or fails outright on an unreadable
// source.
package pipeline

import (
	"github.com/club19-dev/ledgerlift/internal/assemble"
	"github.com/club19-dev/ledgerlift/internal/audit"
	"github.com/club19-dev/ledgerlift/internal/config"
	"github.com/club19-dev/ledgerlift/internal/id"
	"github.com/club19-dev/ledgerlift/internal/ingest"
	"github.com/club19-dev/ledgerlift/internal/model"
	"github.com/club19-dev/ledgerlift/internal/normalize"
)

// Result holds the six output collections of one run, plus per-source
// row counts for reporting.
type Result struct {
	SupplierMap    map[string]normalize.Result // raw variant -> normalization verdict
	SupplierAudits []model.EntityAudit
	Suppliers      []model.LegacySupplier
	Clients        []model.LegacyClient
	Trades         []model.LegacyTrade
	SupplierSeed   []model.SupplierSeed
	SourceCounts   map[model.Source]int
}

// Run executes the pipeline over the given sources.
func Run(cfg *config.Config, gen id.Generator, sources ...ingest.Source) (*Result, error) {
	var rows []model.RawRow
	counts := make(map[model.Source]int, len(sources))
	for _, src := range sources {
		srcRows, err := ingest.ReadRows(src)
		if err != nil {
			return nil, err
		}
		rows = append(rows, srcRows...)
		counts[src.Tag()] += len(srcRows)
	}

	supplierAudits, supplierMap := audit.Suppliers(cfg.Suppliers, rows)
	clientAudits := audit.Clients(rows)

	tables, err := assemble.Build(cfg, gen, rows, supplierAudits, clientAudits)
	if err != nil {
		return nil, err
	}

	return &Result{
		SupplierMap:    supplierMap,
		SupplierAudits: supplierAudits,
		Suppliers:      tables.Suppliers,
		Clients:        tables.Clients,
		Trades:         tables.Trades,
		SupplierSeed:   tables.Seed,
		SourceCounts:   counts,
	}, nil
}

// DateRange returns the earliest and latest trade dates observed, or
// zero dates if no trade had one.
func (r *Result) DateRange() (first, last model.Date) {
	for _, t := range r.Trades {
		if t.TradeDate.IsZero() {
			continue
		}
		if first.IsZero() || t.TradeDate.Before(first.Time) {
			first = t.TradeDate
		}
		if last.IsZero() || t.TradeDate.After(last.Time) {
			last = t.TradeDate
		}
	}
	return first, last
}

// ReviewCounts returns how many suppliers and clients are flagged.
func (r *Result) ReviewCounts() (suppliers, clients int) {
	for _, s := range r.Suppliers {
		if s.RequiresReview {
			suppliers++
		}
	}
	for _, c := range r.Clients {
		if c.RequiresReview {
			clients++
		}
	}
	return suppliers, clients
}
